package handlers

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/monitoring"
	"github.com/platformkit/workload-operator/pkg/resolver"
)

// +kubebuilder:webhook:path=/mutate-platformkit-io-v1alpha1-workload,mutating=true,failurePolicy=fail,sideEffects=None,groups=platformkit.io,resources=workloads,verbs=create;update,versions=v1alpha1,name=mworkload.kb.io,admissionReviewVersions=v1

// WorkloadDefaulter handles the mutation of Workload resources.
type WorkloadDefaulter struct {
	Client client.Client
	// OperatorNamespace is where PlatformConfigs live.
	OperatorNamespace string
}

var _ webhook.CustomDefaulter = &WorkloadDefaulter{}

// NewWorkloadDefaulter creates a new defaulter handler.
func NewWorkloadDefaulter(c client.Client, operatorNamespace string) *WorkloadDefaulter {
	return &WorkloadDefaulter{
		Client:            c,
		OperatorNamespace: operatorNamespace,
	}
}

// Default implements webhook.CustomDefaulter.
func (d *WorkloadDefaulter) Default(ctx context.Context, obj runtime.Object) error {
	start := time.Now()
	err := d.applyDefaults(ctx, obj)
	monitoring.RecordWebhookRequest("mutate", "workload", err, time.Since(start))
	return err
}

func (d *WorkloadDefaulter) applyDefaults(ctx context.Context, obj runtime.Object) error {
	if d.Client == nil {
		return fmt.Errorf("defaulter not initialized: client is nil")
	}

	w, ok := obj.(*platformv1alpha1.Workload)
	if !ok {
		return fmt.Errorf("expected Workload, got %T", obj)
	}

	// 1. Static defaulting. The CRD schema defaults these too; repeating
	// them here keeps dry-run output complete even without the schema.
	if w.Spec.Replicas == nil {
		w.Spec.Replicas = ptr.To(int32(1))
	}
	if w.Spec.HTTPPort == 0 {
		w.Spec.HTTPPort = 8080
	}
	if w.Spec.Ingress != nil && w.Spec.Ingress.Path == "" {
		w.Spec.Ingress.Path = "/"
	}

	// 2. Promote the implicit default to explicit. If the user has not
	// referenced a PlatformConfig but a "default" one exists, set it in
	// the Spec so the user KNOWS a global layer is being applied instead
	// of it happening magically behind the scenes.
	if w.Spec.PlatformConfigRef == "" {
		exists, err := d.platformConfigExists(ctx, resolver.FallbackPlatformConfig)
		if err != nil {
			return fmt.Errorf("failed to check for default platformconfig: %w", err)
		}
		if exists {
			w.Spec.PlatformConfigRef = resolver.FallbackPlatformConfig
		}
	}

	return nil
}

func (d *WorkloadDefaulter) platformConfigExists(ctx context.Context, name string) (bool, error) {
	pc := &platformv1alpha1.PlatformConfig{}
	err := d.Client.Get(ctx, client.ObjectKey{Namespace: d.OperatorNamespace, Name: name}, pc)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
