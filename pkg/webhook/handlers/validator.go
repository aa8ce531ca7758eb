package handlers

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/catalog"
	"github.com/platformkit/workload-operator/pkg/monitoring"
	"github.com/platformkit/workload-operator/pkg/resolver"
)

// ============================================================================
// Workload Validator
// ============================================================================

// +kubebuilder:webhook:path=/validate-platformkit-io-v1alpha1-workload,mutating=false,failurePolicy=fail,sideEffects=None,groups=platformkit.io,resources=workloads,verbs=create;update,versions=v1alpha1,name=vworkload.kb.io,admissionReviewVersions=v1

// WorkloadValidator validates Create and Update events for Workloads.
type WorkloadValidator struct {
	Client client.Client
	// OperatorNamespace is where PlatformConfigs live.
	OperatorNamespace string
}

var _ webhook.CustomValidator = &WorkloadValidator{}

// NewWorkloadValidator creates a new validator for Workloads.
func NewWorkloadValidator(c client.Client, operatorNamespace string) *WorkloadValidator {
	return &WorkloadValidator{Client: c, OperatorNamespace: operatorNamespace}
}

func (v *WorkloadValidator) ValidateCreate(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(ctx, obj)
}

func (v *WorkloadValidator) ValidateUpdate(
	ctx context.Context,
	oldObj, newObj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(ctx, newObj)
}

func (v *WorkloadValidator) ValidateDelete(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *WorkloadValidator) validate(
	ctx context.Context,
	obj runtime.Object,
) (warnings admission.Warnings, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordWebhookRequest("validate", "workload", err, time.Since(start))
	}()

	w, ok := obj.(*platformv1alpha1.Workload)
	if !ok {
		return nil, fmt.Errorf("expected Workload, got %T", obj)
	}

	// 1. Structural rules the CRD schema cannot express.
	if err := validateImages(w); err != nil {
		return nil, err
	}
	warnings = append(warnings, seccompWarnings(w.Spec.Config)...)

	// 2. Referential integrity: the global layer.
	global, err := v.globalLayer(ctx, w)
	if err != nil {
		return warnings, err
	}

	// 3. Cross-layer consistency. A node selector conflict is fatal at
	// reconcile time, so reject it at admission where the user can see it.
	var serviceSelector map[string]string
	if w.Spec.Config != nil {
		serviceSelector = w.Spec.Config.NodeSelector
	}
	var globalSelector map[string]string
	if global != nil {
		globalSelector = global.NodeSelector
	}
	if _, err := resolver.MergeNodeSelectors(globalSelector, serviceSelector); err != nil {
		return warnings, err
	}

	// 4. Catalog resolution. The catalog ConfigMap may legitimately be
	// created after the Workload, so its absence is a warning rather than
	// a rejection. When it is present, the full resolution must succeed.
	cat, catalogWarnings, err := v.productCatalog(ctx, w)
	warnings = append(warnings, catalogWarnings...)
	if err != nil {
		return warnings, err
	}
	if cat != nil {
		if _, err := resolver.Resolve(resolver.Input{
			Global:  global,
			Service: w.Spec.Config,
			Images:  w.Spec.Images,
			Catalog: cat,
		}); err != nil {
			return warnings, err
		}
	}

	return warnings, nil
}

func validateImages(w *platformv1alpha1.Workload) error {
	if len(w.Spec.Images) == 0 {
		return fmt.Errorf("spec.images must list at least one image")
	}
	seen := make(map[string]struct{}, len(w.Spec.Images))
	for _, img := range w.Spec.Images {
		if img.ID == "" {
			return fmt.Errorf("spec.images entries must have a non-empty id")
		}
		if _, ok := seen[img.ID]; ok {
			return &resolver.DuplicateImageError{ID: img.ID}
		}
		seen[img.ID] = struct{}{}
	}
	if w.Spec.ProductCatalogRef.Name == "" {
		return fmt.Errorf("spec.productCatalogRef.name must not be empty")
	}
	return nil
}

// seccompWarnings flags a Localhost seccomp profile without a profile path.
// The resolver silently renders no seccomp block for it, which is surprising
// enough to surface at admission time.
func seccompWarnings(cfg *platformv1alpha1.DeploymentConfig) admission.Warnings {
	if cfg == nil || cfg.PodSecurity == nil || cfg.PodSecurity.Seccomp == nil {
		return nil
	}
	seccomp := cfg.PodSecurity.Seccomp
	if seccomp.Type == nil || *seccomp.Type != corev1.SeccompProfileTypeLocalhost {
		return nil
	}
	if seccomp.LocalhostProfile == nil || *seccomp.LocalhostProfile == "" {
		return admission.Warnings{
			"seccomp type Localhost has no localhostProfile; no seccomp profile will be rendered",
		}
	}
	return nil
}

// globalLayer fetches the referenced PlatformConfig. Mirrors the reconciler:
// an explicit reference must resolve, the implicit default may be absent.
func (v *WorkloadValidator) globalLayer(
	ctx context.Context,
	w *platformv1alpha1.Workload,
) (*platformv1alpha1.DeploymentConfig, error) {
	name := w.Spec.PlatformConfigRef
	explicit := name != ""
	if !explicit {
		name = resolver.FallbackPlatformConfig
	}

	pc := &platformv1alpha1.PlatformConfig{}
	err := v.Client.Get(ctx, client.ObjectKey{Namespace: v.OperatorNamespace, Name: name}, pc)
	if err != nil {
		if apierrors.IsNotFound(err) && !explicit {
			return nil, nil
		}
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf(
				"spec.platformConfigRef: platformconfig %q not found in namespace %q",
				name, v.OperatorNamespace,
			)
		}
		return nil, fmt.Errorf("failed to get PlatformConfig: %w", err)
	}

	return &pc.Spec.Config, nil
}

func (v *WorkloadValidator) productCatalog(
	ctx context.Context,
	w *platformv1alpha1.Workload,
) (catalog.Catalog, admission.Warnings, error) {
	cm := &corev1.ConfigMap{}
	key := client.ObjectKey{Namespace: w.Namespace, Name: w.Spec.ProductCatalogRef.Name}
	if err := v.Client.Get(ctx, key, cm); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, admission.Warnings{fmt.Sprintf(
				"product catalog configmap %q not found; image references cannot be validated yet",
				key.Name,
			)}, nil
		}
		return nil, nil, fmt.Errorf("failed to get product catalog: %w", err)
	}

	cat, err := catalog.FromConfigMap(cm, catalog.DefaultKey)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid product catalog %q: %w", key.Name, err)
	}
	return cat, nil, nil
}

// ============================================================================
// PlatformConfig Validator (In-Use Protection)
// ============================================================================

// +kubebuilder:webhook:path=/validate-platformkit-io-v1alpha1-platformconfig,mutating=false,failurePolicy=fail,sideEffects=None,groups=platformkit.io,resources=platformconfigs,verbs=delete,versions=v1alpha1,name=vplatformconfig.kb.io,admissionReviewVersions=v1

// PlatformConfigValidator validates Delete events to ensure a PlatformConfig
// is not in use by any Workload.
type PlatformConfigValidator struct {
	Client client.Client
}

var _ webhook.CustomValidator = &PlatformConfigValidator{}

func NewPlatformConfigValidator(c client.Client) *PlatformConfigValidator {
	return &PlatformConfigValidator{Client: c}
}

func (v *PlatformConfigValidator) ValidateCreate(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *PlatformConfigValidator) ValidateUpdate(
	ctx context.Context,
	oldObj, newObj runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *PlatformConfigValidator) ValidateDelete(
	ctx context.Context,
	obj runtime.Object,
) (warnings admission.Warnings, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordWebhookRequest("validate", "platformconfig", err, time.Since(start))
	}()

	pc, ok := obj.(*platformv1alpha1.PlatformConfig)
	if !ok {
		return nil, fmt.Errorf("expected PlatformConfig, got %T", obj)
	}

	workloads := &platformv1alpha1.WorkloadList{}
	if err := v.Client.List(ctx, workloads); err != nil {
		return nil, fmt.Errorf("failed to list workloads for validation: %w", err)
	}

	for _, w := range workloads.Items {
		if referencesPlatformConfig(&w, pc.Name) {
			return nil, fmt.Errorf(
				"cannot delete PlatformConfig '%s' because it is in use by Workload '%s/%s'",
				pc.Name, w.Namespace, w.Name,
			)
		}
	}

	return nil, nil
}

// referencesPlatformConfig reports whether the Workload resolves against the
// named PlatformConfig. An empty reference means the implicit default.
func referencesPlatformConfig(w *platformv1alpha1.Workload, name string) bool {
	ref := w.Spec.PlatformConfigRef
	if ref == "" {
		ref = resolver.FallbackPlatformConfig
	}
	return ref == name
}
