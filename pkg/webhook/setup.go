package webhook

import (
	"context"
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/webhook/cert"
	"github.com/platformkit/workload-operator/pkg/webhook/handlers"
)

// Options contains the configuration required to set up the webhook server.
type Options struct {
	// Enable indicates whether to start the webhook server.
	Enable bool
	// CertStrategy defines how certificates are managed ("external" or "self-signed").
	CertStrategy string
	// CertDir is the directory where certificates should be read/written.
	CertDir string
	// Namespace is the operator's namespace, where PlatformConfigs live and
	// where the self-signed strategy looks for the webhook Service.
	Namespace string
}

// Setup configures the webhook server, handles certificate generation (if
// requested), and registers the admission handlers with the manager.
func Setup(mgr ctrl.Manager, opts Options) error {
	if !opts.Enable {
		return nil
	}

	logger := mgr.GetLogger().WithName("webhook-setup")
	logger.Info("Setting up webhook server", "strategy", opts.CertStrategy)

	// 1. Certificate Management
	// If using self-signed certs, we must ensure they exist and patch the
	// WebhookConfigurations *before* the manager starts the server.
	if opts.CertStrategy == "self-signed" {
		certMgr := cert.NewManager(mgr.GetClient(), cert.Options{
			Namespace: opts.Namespace,
			CertDir:   opts.CertDir,
		})

		// Use a temporary context as the manager's context isn't started yet
		if err := certMgr.EnsureCerts(context.Background()); err != nil {
			return fmt.Errorf("failed to bootstrap self-signed certificates: %w", err)
		}
	}

	// 2. Register Webhooks
	server := mgr.GetWebhookServer()

	// -- Mutating Webhook (Defaulter) --
	// The path MUST match the +kubebuilder:webhook annotation on the handler.
	server.Register(
		"/mutate-platformkit-io-v1alpha1-workload",
		admission.WithCustomDefaulter(
			mgr.GetScheme(),
			&platformv1alpha1.Workload{},
			handlers.NewWorkloadDefaulter(mgr.GetClient(), opts.Namespace),
		),
	)

	// -- Validating Webhook (Workload) --
	server.Register(
		"/validate-platformkit-io-v1alpha1-workload",
		admission.WithCustomValidator(
			mgr.GetScheme(),
			&platformv1alpha1.Workload{},
			handlers.NewWorkloadValidator(mgr.GetClient(), opts.Namespace),
		),
	)

	// -- Validating Webhook (PlatformConfig in-use protection) --
	server.Register(
		"/validate-platformkit-io-v1alpha1-platformconfig",
		admission.WithCustomValidator(
			mgr.GetScheme(),
			&platformv1alpha1.PlatformConfig{},
			handlers.NewPlatformConfigValidator(mgr.GetClient()),
		),
	)

	return nil
}
