package cert

import (
	"context"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func certScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := corev1.AddToScheme(scheme); err != nil {
		t.Fatalf("AddToScheme: %v", err)
	}
	if err := admissionregistrationv1.AddToScheme(scheme); err != nil {
		t.Fatalf("AddToScheme: %v", err)
	}
	return scheme
}

func webhookService(name, namespace string) *corev1.Service {
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{
				OperatorPodLabelKey: OperatorPodLabelValue,
			},
			Ports: []corev1.ServicePort{
				{Port: 443, TargetPort: intstr.FromInt32(9443)},
			},
		},
	}
}

func TestManager_EnsureCerts(t *testing.T) {
	scheme := certScheme(t)
	namespace := "platform-system"

	sideEffects := admissionregistrationv1.SideEffectClassNone
	mutatingCfg := &admissionregistrationv1.MutatingWebhookConfiguration{
		ObjectMeta: metav1.ObjectMeta{
			Name: "workload-operator-mutating-webhook-configuration",
		},
		Webhooks: []admissionregistrationv1.MutatingWebhook{
			{
				Name:                    "mworkload.platformkit.io",
				AdmissionReviewVersions: []string{"v1"},
				SideEffects:             &sideEffects,
				ClientConfig: admissionregistrationv1.WebhookClientConfig{
					Service: &admissionregistrationv1.ServiceReference{
						Name:      "webhook-service",
						Namespace: namespace,
					},
				},
			},
		},
	}

	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(webhookService("webhook-service", namespace), mutatingCfg).
		Build()

	certDir := t.TempDir()
	mgr := NewManager(fakeClient, Options{
		Namespace: namespace,
		CertDir:   certDir,
	})

	if err := mgr.EnsureCerts(context.Background()); err != nil {
		t.Fatalf("EnsureCerts() error = %v", err)
	}

	// Secret created with all four artifacts.
	secret := &corev1.Secret{}
	if err := fakeClient.Get(context.Background(), types.NamespacedName{Name: SecretName, Namespace: namespace}, secret); err != nil {
		t.Fatalf("cert secret should exist: %v", err)
	}
	for _, key := range []string{"tls.crt", "tls.key", "ca.crt", "ca.key"} {
		if len(secret.Data[key]) == 0 {
			t.Errorf("secret missing %q", key)
		}
	}

	// Certs written to disk.
	for _, name := range []string{CertFileName, KeyFileName} {
		if _, err := os.Stat(filepath.Join(certDir, name)); err != nil {
			t.Errorf("%s not written to disk: %v", name, err)
		}
	}

	// CA bundle injected into the webhook configuration.
	got := &admissionregistrationv1.MutatingWebhookConfiguration{}
	if err := fakeClient.Get(context.Background(), types.NamespacedName{Name: mutatingCfg.Name}, got); err != nil {
		t.Fatalf("failed to get webhook config: %v", err)
	}
	if len(got.Webhooks[0].ClientConfig.CABundle) == 0 {
		t.Error("CA bundle should have been injected")
	}

	// Second run reuses the existing valid certificates.
	if err := mgr.EnsureCerts(context.Background()); err != nil {
		t.Fatalf("EnsureCerts() second run error = %v", err)
	}
	again := &corev1.Secret{}
	if err := fakeClient.Get(context.Background(), types.NamespacedName{Name: SecretName, Namespace: namespace}, again); err != nil {
		t.Fatalf("cert secret should still exist: %v", err)
	}
	if string(again.Data["tls.crt"]) != string(secret.Data["tls.crt"]) {
		t.Error("valid certificates should not have been rotated")
	}
}

func TestManager_EnsureCerts_NoService(t *testing.T) {
	scheme := certScheme(t)

	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		Build()

	mgr := NewManager(fakeClient, Options{
		Namespace: "platform-system",
		CertDir:   t.TempDir(),
	})

	if err := mgr.EnsureCerts(context.Background()); err == nil {
		t.Fatal("expected error when no webhook service exists")
	}
}

func TestManager_IsValid(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}

	tests := map[string]struct {
		artifacts *Artifacts
		service   string
		want      bool
	}{
		"empty artifacts": {
			artifacts: &Artifacts{},
			service:   "svc",
			want:      false,
		},
		"garbage PEM": {
			artifacts: &Artifacts{
				ServerCertPEM: []byte("not a cert"),
				ServerKeyPEM:  []byte("not a key"),
			},
			service: "svc",
			want:    false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := mgr.isValid(tc.artifacts, tc.service); got != tc.want {
				t.Errorf("isValid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestManager_IsValid_FreshAndWrongService(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	artifacts, err := GenerateSelfSignedArtifacts(
		rand.Reader,
		"webhook-service.ns.svc",
		[]string{"webhook-service", "webhook-service.ns.svc"},
	)
	if err != nil {
		t.Fatalf("GenerateSelfSignedArtifacts() error = %v", err)
	}

	if !mgr.isValid(artifacts, "webhook-service") {
		t.Error("fresh cert for the right service should be valid")
	}
	if mgr.isValid(artifacts, "other-service") {
		t.Error("cert issued for a different service should be invalid")
	}
}
