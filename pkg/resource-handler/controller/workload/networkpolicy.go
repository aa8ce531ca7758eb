package workload

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	ctrl "sigs.k8s.io/controller-runtime"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/util/metadata"
)

// BuildNetworkPolicy renders the ingress NetworkPolicy for a Workload.
// Returns nil when the Workload does not configure one. Traffic to the
// serving port is only admitted from the configured peers; an empty peer
// list admits same-namespace traffic to the port and nothing else.
func BuildNetworkPolicy(
	w *platformv1alpha1.Workload,
	scheme *runtime.Scheme,
) (*networkingv1.NetworkPolicy, error) {
	cfg := w.Spec.NetworkPolicy
	if cfg == nil {
		return nil, nil
	}

	labels := metadata.BuildStandardLabels(w.Name, ComponentName)
	port := intstr.FromInt32(httpPort(w))
	protocol := corev1.ProtocolTCP

	policy := &networkingv1.NetworkPolicy{
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name,
			Namespace: w.Namespace,
			Labels:    labels,
		},
		Spec: networkingv1.NetworkPolicySpec{
			PodSelector: metav1.LabelSelector{
				MatchLabels: metadata.GetSelectorLabels(labels),
			},
			PolicyTypes: []networkingv1.PolicyType{networkingv1.PolicyTypeIngress},
			Ingress: []networkingv1.NetworkPolicyIngressRule{
				{
					From: cfg.IngressPeers,
					Ports: []networkingv1.NetworkPolicyPort{
						{Port: &port, Protocol: &protocol},
					},
				},
			},
		},
	}

	if err := ctrl.SetControllerReference(w, policy, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return policy, nil
}
