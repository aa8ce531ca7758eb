package workload

import (
	"fmt"

	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/util/metadata"
)

// BuildIngress renders the Ingress for a Workload. Returns nil when the
// Workload does not configure an ingress surface.
func BuildIngress(
	w *platformv1alpha1.Workload,
	scheme *runtime.Scheme,
) (*networkingv1.Ingress, error) {
	cfg := w.Spec.Ingress
	if cfg == nil {
		return nil, nil
	}

	path := cfg.Path
	if path == "" {
		path = "/"
	}
	pathType := networkingv1.PathTypePrefix

	ingress := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name,
			Namespace: w.Namespace,
			Labels:    metadata.BuildStandardLabels(w.Name, ComponentName),
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{
				{
					Host: cfg.Host,
					IngressRuleValue: networkingv1.IngressRuleValue{
						HTTP: &networkingv1.HTTPIngressRuleValue{
							Paths: []networkingv1.HTTPIngressPath{
								{
									Path:     path,
									PathType: &pathType,
									Backend: networkingv1.IngressBackend{
										Service: &networkingv1.IngressServiceBackend{
											Name: w.Name,
											Port: networkingv1.ServiceBackendPort{Name: "http"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	if cfg.TLSSecretName != "" {
		ingress.Spec.TLS = []networkingv1.IngressTLS{
			{Hosts: []string{cfg.Host}, SecretName: cfg.TLSSecretName},
		}
	}

	if err := ctrl.SetControllerReference(w, ingress, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return ingress, nil
}
