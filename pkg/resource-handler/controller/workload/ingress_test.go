package workload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	networkingv1 "k8s.io/api/networking/v1"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
)

func TestBuildIngress(t *testing.T) {
	t.Parallel()
	scheme := testScheme(t)

	tests := map[string]struct {
		ingress  *platformv1alpha1.IngressConfig
		wantNil  bool
		wantPath string
		wantTLS  []networkingv1.IngressTLS
	}{
		"no ingress configured": {
			ingress: nil,
			wantNil: true,
		},
		"host with default path": {
			ingress: &platformv1alpha1.IngressConfig{
				Host: "orders.example.com",
			},
			wantPath: "/",
		},
		"explicit path": {
			ingress: &platformv1alpha1.IngressConfig{
				Host: "orders.example.com",
				Path: "/api",
			},
			wantPath: "/api",
		},
		"with TLS": {
			ingress: &platformv1alpha1.IngressConfig{
				Host:          "orders.example.com",
				TLSSecretName: "orders-tls",
			},
			wantPath: "/",
			wantTLS: []networkingv1.IngressTLS{
				{Hosts: []string{"orders.example.com"}, SecretName: "orders-tls"},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w := testWorkload()
			w.Spec.Ingress = tc.ingress

			ing, err := BuildIngress(w, scheme)
			if err != nil {
				t.Fatalf("BuildIngress() error = %v", err)
			}

			if tc.wantNil {
				if ing != nil {
					t.Fatalf("expected nil Ingress, got %v", ing)
				}
				return
			}
			if ing == nil {
				t.Fatal("expected Ingress, got nil")
			}

			if len(ing.Spec.Rules) != 1 {
				t.Fatalf("expected 1 rule, got %d", len(ing.Spec.Rules))
			}
			rule := ing.Spec.Rules[0]
			if rule.Host != tc.ingress.Host {
				t.Errorf("host = %q, want %q", rule.Host, tc.ingress.Host)
			}

			paths := rule.HTTP.Paths
			if len(paths) != 1 {
				t.Fatalf("expected 1 path, got %d", len(paths))
			}
			if paths[0].Path != tc.wantPath {
				t.Errorf("path = %q, want %q", paths[0].Path, tc.wantPath)
			}
			if *paths[0].PathType != networkingv1.PathTypePrefix {
				t.Errorf("pathType = %q, want Prefix", *paths[0].PathType)
			}

			backend := paths[0].Backend.Service
			if backend == nil || backend.Name != w.Name || backend.Port.Name != "http" {
				t.Errorf("backend = %v, want service %s port http", backend, w.Name)
			}

			if diff := cmp.Diff(tc.wantTLS, ing.Spec.TLS); diff != "" {
				t.Errorf("TLS mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
