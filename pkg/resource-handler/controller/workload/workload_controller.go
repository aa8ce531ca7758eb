package workload

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/catalog"
	"github.com/platformkit/workload-operator/pkg/monitoring"
	"github.com/platformkit/workload-operator/pkg/resolver"
)

const (
	finalizerName = "workload.platformkit.io/finalizer"

	// ConditionReady reports whether the rendered Deployment has all
	// replicas ready.
	ConditionReady = "Ready"
	// ConditionConfigurationValid reports whether the layered configuration
	// resolved without conflicts and every image was found in the catalog.
	ConditionConfigurationValid = "ConfigurationValid"
)

// WorkloadReconciler reconciles a Workload object.
type WorkloadReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder

	// OperatorNamespace is where PlatformConfig objects are looked up.
	OperatorNamespace string

	// Build controls platform-dependent manifest rendering.
	Build BuildOptions
}

// +kubebuilder:rbac:groups=platformkit.io,resources=workloads,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=platformkit.io,resources=workloads/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=platformkit.io,resources=workloads/finalizers,verbs=update
// +kubebuilder:rbac:groups=platformkit.io,resources=platformconfigs,verbs=get;list;watch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=services;configmaps,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch
// +kubebuilder:rbac:groups=networking.k8s.io,resources=ingresses;networkpolicies,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=rbac.authorization.k8s.io,resources=rolebindings,verbs=get;list;watch;create;update;patch;delete

// Reconcile handles Workload resource reconciliation.
func (r *WorkloadReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	w := &platformv1alpha1.Workload{}
	if err := r.Get(ctx, req.NamespacedName, w); err != nil {
		if apierrors.IsNotFound(err) {
			logger.Info("Workload resource not found, ignoring")
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get Workload")
		return ctrl.Result{}, err
	}

	ctx, span := monitoring.StartReconcileSpan(ctx, "Workload.Reconcile", w.Name, w.Namespace, "Workload")
	defer span.End()

	// Handle deletion
	if !w.DeletionTimestamp.IsZero() {
		return r.handleDeletion(ctx, w)
	}

	// Add finalizer if not present
	if !slices.Contains(w.Finalizers, finalizerName) {
		w.Finalizers = append(w.Finalizers, finalizerName)
		if err := r.Update(ctx, w); err != nil {
			logger.Error(err, "Failed to add finalizer")
			monitoring.RecordSpanError(span, err)
			return ctrl.Result{}, err
		}
	}

	desc, terminal, err := r.resolveConfiguration(ctx, w)
	if err != nil {
		monitoring.RecordSpanError(span, err)
		if terminal {
			// Invalid configuration will not fix itself; do not requeue.
			// A spec or referenced-object change triggers the next attempt.
			logger.Info("Workload configuration invalid", "reason", err.Error())
			return ctrl.Result{}, r.markConfigurationInvalid(ctx, w, err)
		}
		return ctrl.Result{}, err
	}

	if err := r.markConfigurationValid(ctx, w); err != nil {
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	if err := r.reconcileResources(ctx, w, desc); err != nil {
		logger.Error(err, "Failed to reconcile resources")
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, w); err != nil {
		logger.Error(err, "Failed to update status")
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	monitoring.SetWorkloadInfo(w.Name, w.Namespace, w.Status.Ready)
	monitoring.SetWorkloadImages(w.Name, w.Namespace, len(desc.Images))

	return ctrl.Result{}, nil
}

// handleDeletion handles cleanup when a Workload is being deleted.
func (r *WorkloadReconciler) handleDeletion(ctx context.Context, w *platformv1alpha1.Workload) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if slices.Contains(w.Finalizers, finalizerName) {
		// Owner references handle child resource deletion; only the
		// metric series needs explicit cleanup.
		monitoring.SetWorkloadInfo(w.Name, w.Namespace, false)

		w.Finalizers = slices.DeleteFunc(w.Finalizers, func(s string) bool {
			return s == finalizerName
		})
		if err := r.Update(ctx, w); err != nil {
			logger.Error(err, "Failed to remove finalizer")
			return ctrl.Result{}, err
		}
	}

	return ctrl.Result{}, nil
}

// resolveConfiguration gathers the configuration layers and the product
// catalog and runs them through the resolver. The second return value is
// true when the error is a configuration error that requeuing cannot fix.
func (r *WorkloadReconciler) resolveConfiguration(
	ctx context.Context,
	w *platformv1alpha1.Workload,
) (*resolver.ResolvedDescriptor, bool, error) {
	ctx, span := monitoring.StartChildSpan(ctx, "Resolve")
	defer span.End()
	start := time.Now()

	global, err := r.globalLayer(ctx, w)
	if err != nil {
		monitoring.RecordResolve(w.Name, w.Namespace, "invalid_input", time.Since(start))
		return nil, true, err
	}

	cat, err := r.productCatalog(ctx, w)
	if err != nil {
		monitoring.RecordResolve(w.Name, w.Namespace, "invalid_input", time.Since(start))
		return nil, true, err
	}

	desc, err := resolver.Resolve(resolver.Input{
		Global:  global,
		Service: w.Spec.Config,
		Images:  w.Spec.Images,
		Catalog: cat,
	})
	if err != nil {
		monitoring.RecordResolve(w.Name, w.Namespace, resolveResult(err), time.Since(start))
		monitoring.RecordSpanError(span, err)
		return nil, true, err
	}

	monitoring.RecordResolve(w.Name, w.Namespace, "success", time.Since(start))
	return desc, false, nil
}

// globalLayer fetches the PlatformConfig providing the tenant-wide layer.
// An explicitly referenced PlatformConfig must exist; the implicit default
// one may be absent, in which case built-in defaults apply.
func (r *WorkloadReconciler) globalLayer(
	ctx context.Context,
	w *platformv1alpha1.Workload,
) (*platformv1alpha1.DeploymentConfig, error) {
	name := w.Spec.PlatformConfigRef
	explicit := name != ""
	if !explicit {
		name = resolver.FallbackPlatformConfig
	}

	pc := &platformv1alpha1.PlatformConfig{}
	err := r.Get(ctx, client.ObjectKey{Namespace: r.OperatorNamespace, Name: name}, pc)
	if err != nil {
		if apierrors.IsNotFound(err) && !explicit {
			return nil, nil
		}
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("platformconfig %q not found in namespace %q", name, r.OperatorNamespace)
		}
		return nil, fmt.Errorf("failed to get PlatformConfig: %w", err)
	}

	return &pc.Spec.Config, nil
}

// productCatalog loads the catalog ConfigMap referenced by the Workload.
func (r *WorkloadReconciler) productCatalog(
	ctx context.Context,
	w *platformv1alpha1.Workload,
) (catalog.Catalog, error) {
	cm := &corev1.ConfigMap{}
	key := client.ObjectKey{Namespace: w.Namespace, Name: w.Spec.ProductCatalogRef.Name}
	if err := r.Get(ctx, key, cm); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("product catalog configmap %q not found", key.Name)
		}
		return nil, fmt.Errorf("failed to get product catalog: %w", err)
	}

	cat, err := catalog.FromConfigMap(cm, catalog.DefaultKey)
	if err != nil {
		return nil, fmt.Errorf("invalid product catalog %q: %w", key.Name, err)
	}
	return cat, nil
}

// resolveResult maps resolver errors to a metric result label.
func resolveResult(err error) string {
	var conflict *resolver.ConflictError
	if errors.As(err, &conflict) {
		return "conflict"
	}
	var missing *resolver.MissingImageError
	if errors.As(err, &missing) {
		return "missing_image"
	}
	return "invalid_input"
}

// markConfigurationInvalid records the terminal configuration failure on
// the Workload status and emits a warning event.
func (r *WorkloadReconciler) markConfigurationInvalid(
	ctx context.Context,
	w *platformv1alpha1.Workload,
	cause error,
) error {
	r.Recorder.Event(w, corev1.EventTypeWarning, "InvalidConfiguration", cause.Error())

	apimeta.SetStatusCondition(&w.Status.Conditions, metav1.Condition{
		Type:               ConditionConfigurationValid,
		Status:             metav1.ConditionFalse,
		Reason:             "ResolutionFailed",
		Message:            cause.Error(),
		ObservedGeneration: w.Generation,
	})
	w.Status.Ready = false
	w.Status.ObservedGeneration = w.Generation

	if err := r.Status().Update(ctx, w); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	monitoring.SetWorkloadInfo(w.Name, w.Namespace, false)
	return nil
}

// markConfigurationValid clears a previous configuration failure, if any.
func (r *WorkloadReconciler) markConfigurationValid(ctx context.Context, w *platformv1alpha1.Workload) error {
	changed := apimeta.SetStatusCondition(&w.Status.Conditions, metav1.Condition{
		Type:               ConditionConfigurationValid,
		Status:             metav1.ConditionTrue,
		Reason:             "Resolved",
		Message:            "Configuration layers resolved successfully",
		ObservedGeneration: w.Generation,
	})
	if !changed {
		return nil
	}
	if err := r.Status().Update(ctx, w); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// reconcileResources renders and applies all child resources.
func (r *WorkloadReconciler) reconcileResources(
	ctx context.Context,
	w *platformv1alpha1.Workload,
	desc *resolver.ResolvedDescriptor,
) error {
	if err := r.reconcileDeployment(ctx, w, desc); err != nil {
		return err
	}
	if err := r.reconcileService(ctx, w); err != nil {
		return err
	}
	if err := r.reconcileIngress(ctx, w); err != nil {
		return err
	}
	if err := r.reconcileNetworkPolicy(ctx, w); err != nil {
		return err
	}
	if err := r.reconcileRoleBinding(ctx, w); err != nil {
		return err
	}
	return nil
}

// reconcileDeployment creates or updates the Deployment for a Workload.
func (r *WorkloadReconciler) reconcileDeployment(
	ctx context.Context,
	w *platformv1alpha1.Workload,
	desc *resolver.ResolvedDescriptor,
) error {
	desired, err := BuildDeployment(w, desc, r.Build, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build Deployment: %w", err)
	}

	existing := &appsv1.Deployment{}
	err = r.Get(ctx, client.ObjectKey{Namespace: w.Namespace, Name: w.Name}, existing)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create Deployment: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get Deployment: %w", err)
	}

	existing.Spec = desired.Spec
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update Deployment: %w", err)
	}
	return nil
}

// reconcileService creates or updates the Service for a Workload.
func (r *WorkloadReconciler) reconcileService(ctx context.Context, w *platformv1alpha1.Workload) error {
	desired, err := BuildService(w, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build Service: %w", err)
	}

	existing := &corev1.Service{}
	err = r.Get(ctx, client.ObjectKey{Namespace: w.Namespace, Name: w.Name}, existing)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create Service: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get Service: %w", err)
	}

	existing.Spec.Ports = desired.Spec.Ports
	existing.Spec.Selector = desired.Spec.Selector
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update Service: %w", err)
	}
	return nil
}

// reconcileIngress creates, updates, or removes the Ingress for a Workload.
func (r *WorkloadReconciler) reconcileIngress(ctx context.Context, w *platformv1alpha1.Workload) error {
	desired, err := BuildIngress(w, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build Ingress: %w", err)
	}

	existing := &networkingv1.Ingress{}
	err = r.Get(ctx, client.ObjectKey{Namespace: w.Namespace, Name: w.Name}, existing)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if desired == nil {
				return nil
			}
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create Ingress: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get Ingress: %w", err)
	}

	if desired == nil {
		if err := r.Delete(ctx, existing); err != nil && !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete Ingress: %w", err)
		}
		return nil
	}

	existing.Spec = desired.Spec
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update Ingress: %w", err)
	}
	return nil
}

// reconcileNetworkPolicy creates, updates, or removes the NetworkPolicy.
func (r *WorkloadReconciler) reconcileNetworkPolicy(ctx context.Context, w *platformv1alpha1.Workload) error {
	desired, err := BuildNetworkPolicy(w, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build NetworkPolicy: %w", err)
	}

	existing := &networkingv1.NetworkPolicy{}
	err = r.Get(ctx, client.ObjectKey{Namespace: w.Namespace, Name: w.Name}, existing)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if desired == nil {
				return nil
			}
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create NetworkPolicy: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get NetworkPolicy: %w", err)
	}

	if desired == nil {
		if err := r.Delete(ctx, existing); err != nil && !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete NetworkPolicy: %w", err)
		}
		return nil
	}

	existing.Spec = desired.Spec
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update NetworkPolicy: %w", err)
	}
	return nil
}

// reconcileRoleBinding creates, updates, or removes the RoleBinding.
func (r *WorkloadReconciler) reconcileRoleBinding(ctx context.Context, w *platformv1alpha1.Workload) error {
	desired, err := BuildRoleBinding(w, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build RoleBinding: %w", err)
	}

	existing := &rbacv1.RoleBinding{}
	err = r.Get(ctx, client.ObjectKey{Namespace: w.Namespace, Name: w.Name}, existing)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if desired == nil {
				return nil
			}
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create RoleBinding: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get RoleBinding: %w", err)
	}

	if desired == nil {
		if err := r.Delete(ctx, existing); err != nil && !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete RoleBinding: %w", err)
		}
		return nil
	}

	// RoleRef is immutable; recreate when the referenced Role changed.
	if existing.RoleRef.Name != desired.RoleRef.Name {
		if err := r.Delete(ctx, existing); err != nil && !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete RoleBinding: %w", err)
		}
		if err := r.Create(ctx, desired); err != nil {
			return fmt.Errorf("failed to recreate RoleBinding: %w", err)
		}
		return nil
	}

	existing.Subjects = desired.Subjects
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update RoleBinding: %w", err)
	}
	return nil
}

// updateStatus updates the Workload status based on observed Deployment state.
func (r *WorkloadReconciler) updateStatus(ctx context.Context, w *platformv1alpha1.Workload) error {
	deploy := &appsv1.Deployment{}
	err := r.Get(ctx, client.ObjectKey{Namespace: w.Namespace, Name: w.Name}, deploy)
	if err != nil {
		if apierrors.IsNotFound(err) {
			// Deployment not created yet
			return nil
		}
		return fmt.Errorf("failed to get Deployment for status: %w", err)
	}

	w.Status.Replicas = deploy.Status.Replicas
	w.Status.ReadyReplicas = deploy.Status.ReadyReplicas
	w.Status.Ready = deploy.Status.ReadyReplicas == deploy.Status.Replicas && deploy.Status.Replicas > 0
	w.Status.ObservedGeneration = w.Generation

	readyCondition := metav1.Condition{
		Type:               ConditionReady,
		ObservedGeneration: w.Generation,
	}
	if w.Status.Ready {
		readyCondition.Status = metav1.ConditionTrue
		readyCondition.Reason = "AllReplicasReady"
		readyCondition.Message = fmt.Sprintf("All %d replicas are ready", deploy.Status.ReadyReplicas)
	} else {
		readyCondition.Status = metav1.ConditionFalse
		readyCondition.Reason = "NotAllReplicasReady"
		readyCondition.Message = fmt.Sprintf("%d/%d replicas ready", deploy.Status.ReadyReplicas, deploy.Status.Replicas)
	}
	apimeta.SetStatusCondition(&w.Status.Conditions, readyCondition)

	if err := r.Status().Update(ctx, w); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *WorkloadReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&platformv1alpha1.Workload{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&networkingv1.Ingress{}).
		Owns(&networkingv1.NetworkPolicy{}).
		Owns(&rbacv1.RoleBinding{}).
		Complete(r)
}
