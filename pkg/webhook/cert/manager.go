package cert

// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch
// +kubebuilder:rbac:groups=admissionregistration.k8s.io,resources=mutatingwebhookconfigurations,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=admissionregistration.k8s.io,resources=validatingwebhookconfigurations,verbs=get;list;watch;update;patch

import (
	"context"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// SecretName is the Secret where generated certs are stored.
	SecretName = "workload-operator-webhook-certs" //nolint:gosec // resource name, not a credential

	// CertFileName is the certificate file name expected by controller-runtime.
	CertFileName = "tls.crt"
	// KeyFileName is the key file name expected by controller-runtime.
	KeyFileName = "tls.key"

	// RotationThreshold is the buffer before expiration when certs rotate.
	RotationThreshold = 30 * 24 * time.Hour

	// OperatorPodLabelKey identifies the controller manager pod/service.
	OperatorPodLabelKey = "control-plane"
	// OperatorPodLabelValue identifies the controller manager pod/service.
	OperatorPodLabelValue = "controller-manager"
)

// Options configures the certificate manager.
type Options struct {
	// Namespace is where the operator and its Service run.
	Namespace string
	// CertDir is where certificates are written for the webhook server.
	CertDir string
}

// Manager handles the lifecycle of the webhook certificates.
type Manager struct {
	Client  client.Client
	Options Options
	// rng is the source of randomness. Defaults to crypto/rand.Reader.
	rng io.Reader
}

// NewManager creates a new certificate manager.
func NewManager(c client.Client, opts Options) *Manager {
	return &Manager{
		Client:  c,
		Options: opts,
		rng:     rand.Reader,
	}
}

// EnsureCerts checks for existing certificates, generates them if missing or
// near expiry, writes them to disk, and injects the CA bundle into the
// webhook configurations.
func (m *Manager) EnsureCerts(ctx context.Context) error {
	logger := log.FromContext(ctx).WithName("webhook-cert-manager")
	logger.Info("ensuring webhook certificates exist and are valid")

	serviceName, err := m.findMyService(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover webhook service: %w", err)
	}
	logger.Info("discovered webhook service", "name", serviceName)

	artifacts, err := m.ensureSecret(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to ensure cert secret: %w", err)
	}

	if err := m.writeCertsToDisk(ctx, artifacts); err != nil {
		return fmt.Errorf("failed to write certs to disk: %w", err)
	}

	if err := m.patchWebhookConfigurations(ctx, serviceName, artifacts.CACertPEM); err != nil {
		return fmt.Errorf("failed to patch webhook configurations: %w", err)
	}

	logger.Info("webhook certificates successfully configured")
	return nil
}

// findMyService looks for a Service in the operator's namespace selecting the
// operator's pods on the webhook port. The metrics Service selects the same
// pods but targets a different port, so the port check disambiguates.
func (m *Manager) findMyService(ctx context.Context) (string, error) {
	svcList := &corev1.ServiceList{}
	if err := m.Client.List(ctx, svcList, client.InNamespace(m.Options.Namespace)); err != nil {
		return "", err
	}

	for _, svc := range svcList.Items {
		if val, ok := svc.Spec.Selector[OperatorPodLabelKey]; ok && val == OperatorPodLabelValue {
			for _, port := range svc.Spec.Ports {
				if port.TargetPort.IntVal == 9443 || port.Port == 443 {
					return svc.Name, nil
				}
			}
		}
	}

	return "", fmt.Errorf(
		"no webhook service found in namespace %s with selector %s=%s targeting port 9443",
		m.Options.Namespace,
		OperatorPodLabelKey,
		OperatorPodLabelValue,
	)
}

// ensureSecret fetches the cert secret and validates expiration. Missing or
// expiring material is regenerated and the Secret created or updated.
func (m *Manager) ensureSecret(ctx context.Context, serviceName string) (*Artifacts, error) {
	logger := log.FromContext(ctx)
	secret := &corev1.Secret{}
	err := m.Client.Get(
		ctx,
		types.NamespacedName{Name: SecretName, Namespace: m.Options.Namespace},
		secret,
	)

	secretFound := false
	if err == nil {
		secretFound = true
		artifacts := &Artifacts{
			CACertPEM:     secret.Data["ca.crt"],
			CAKeyPEM:      secret.Data["ca.key"],
			ServerCertPEM: secret.Data["tls.crt"],
			ServerKeyPEM:  secret.Data["tls.key"],
		}

		if m.isValid(artifacts, serviceName) {
			logger.Info("existing webhook certificates are valid")
			return artifacts, nil
		}

		logger.Info("existing webhook certificates are missing, expired, or invalid for current service; rotating")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	commonName := fmt.Sprintf("%s.%s.svc", serviceName, m.Options.Namespace)
	dnsNames := []string{
		serviceName,
		fmt.Sprintf("%s.%s", serviceName, m.Options.Namespace),
		commonName,
		commonName + ".cluster.local",
	}

	logger.Info("generating new self-signed certificates", "commonName", commonName)
	artifacts, genErr := GenerateSelfSignedArtifacts(m.rng, commonName, dnsNames)
	if genErr != nil {
		return nil, genErr
	}

	secret.ObjectMeta = metav1.ObjectMeta{
		Name:      SecretName,
		Namespace: m.Options.Namespace,
	}
	secret.Type = corev1.SecretTypeTLS
	secret.Data = map[string][]byte{
		"tls.crt": artifacts.ServerCertPEM,
		"tls.key": artifacts.ServerKeyPEM,
		"ca.crt":  artifacts.CACertPEM,
		"ca.key":  artifacts.CAKeyPEM,
	}

	if secretFound {
		if updateErr := m.Client.Update(ctx, secret); updateErr != nil {
			return nil, fmt.Errorf("failed to update cert secret: %w", updateErr)
		}
	} else {
		if createErr := m.Client.Create(ctx, secret); createErr != nil {
			return nil, fmt.Errorf("failed to create cert secret: %w", createErr)
		}
	}

	return artifacts, nil
}

// isValid checks presence, expiration, and that the cert was issued for the
// discovered service name.
func (m *Manager) isValid(a *Artifacts, expectedServiceName string) bool {
	if len(a.ServerCertPEM) == 0 || len(a.ServerKeyPEM) == 0 {
		return false
	}

	block, _ := pem.Decode(a.ServerCertPEM)
	if block == nil {
		return false
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return false
	}

	if time.Now().Add(RotationThreshold).After(cert.NotAfter) {
		return false
	}

	if len(cert.DNSNames) > 0 && cert.DNSNames[0] != expectedServiceName {
		return false
	}

	return true
}

func (m *Manager) writeCertsToDisk(ctx context.Context, artifacts *Artifacts) error {
	logger := log.FromContext(ctx)

	if err := os.MkdirAll(m.Options.CertDir, 0o755); err != nil {
		return err
	}

	certPath := filepath.Join(m.Options.CertDir, CertFileName)
	keyPath := filepath.Join(m.Options.CertDir, KeyFileName)

	logger.Info("writing certificates to disk", "dir", m.Options.CertDir)

	if err := os.WriteFile(certPath, artifacts.ServerCertPEM, 0o644); err != nil { //nolint:gosec // cert is public
		return err
	}

	if err := os.WriteFile(keyPath, artifacts.ServerKeyPEM, 0o600); err != nil {
		return err
	}

	return nil
}

func (m *Manager) patchWebhookConfigurations(
	ctx context.Context,
	serviceName string,
	caCert []byte,
) error {
	logger := log.FromContext(ctx)

	mutatingList := &admissionregistrationv1.MutatingWebhookConfigurationList{}
	if err := m.Client.List(ctx, mutatingList); err != nil {
		return err
	}

	for _, cfg := range mutatingList.Items {
		if m.targetsService(mutatingClientConfigs(cfg.Webhooks), serviceName) {
			if err := m.patchObject(ctx, &cfg, caCert); err != nil {
				return err
			}
			logger.Info("patched CA bundle", "kind", "MutatingWebhookConfiguration", "name", cfg.Name)
		}
	}

	validatingList := &admissionregistrationv1.ValidatingWebhookConfigurationList{}
	if err := m.Client.List(ctx, validatingList); err != nil {
		return err
	}

	for _, cfg := range validatingList.Items {
		if m.targetsService(validatingClientConfigs(cfg.Webhooks), serviceName) {
			if err := m.patchObject(ctx, &cfg, caCert); err != nil {
				return err
			}
			logger.Info("patched CA bundle", "kind", "ValidatingWebhookConfiguration", "name", cfg.Name)
		}
	}

	return nil
}

func mutatingClientConfigs(webhooks []admissionregistrationv1.MutatingWebhook) []admissionregistrationv1.WebhookClientConfig {
	configs := make([]admissionregistrationv1.WebhookClientConfig, len(webhooks))
	for i, w := range webhooks {
		configs[i] = w.ClientConfig
	}
	return configs
}

func validatingClientConfigs(webhooks []admissionregistrationv1.ValidatingWebhook) []admissionregistrationv1.WebhookClientConfig {
	configs := make([]admissionregistrationv1.WebhookClientConfig, len(webhooks))
	for i, w := range webhooks {
		configs[i] = w.ClientConfig
	}
	return configs
}

func (m *Manager) targetsService(configs []admissionregistrationv1.WebhookClientConfig, serviceName string) bool {
	for _, cc := range configs {
		if cc.Service != nil &&
			cc.Service.Name == serviceName &&
			cc.Service.Namespace == m.Options.Namespace {
			return true
		}
	}
	return false
}

func (m *Manager) patchObject(ctx context.Context, obj client.Object, caBundle []byte) error {
	base := obj.DeepCopyObject().(client.Object)
	updated := false

	switch r := obj.(type) {
	case *admissionregistrationv1.MutatingWebhookConfiguration:
		for i := range r.Webhooks {
			if string(r.Webhooks[i].ClientConfig.CABundle) != string(caBundle) {
				r.Webhooks[i].ClientConfig.CABundle = caBundle
				updated = true
			}
		}
	case *admissionregistrationv1.ValidatingWebhookConfiguration:
		for i := range r.Webhooks {
			if string(r.Webhooks[i].ClientConfig.CABundle) != string(caBundle) {
				r.Webhooks[i].ClientConfig.CABundle = caBundle
				updated = true
			}
		}
	}

	if updated {
		return m.Client.Patch(ctx, obj, client.MergeFrom(base))
	}
	return nil
}
