package workload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
)

func TestBuildNetworkPolicy(t *testing.T) {
	t.Parallel()
	scheme := testScheme(t)

	peers := []networkingv1.NetworkPolicyPeer{
		{
			PodSelector: &metav1.LabelSelector{
				MatchLabels: map[string]string{"role": "frontend"},
			},
		},
	}

	tests := map[string]struct {
		policy    *platformv1alpha1.NetworkPolicyConfig
		wantNil   bool
		wantPeers []networkingv1.NetworkPolicyPeer
	}{
		"no policy configured": {
			policy:  nil,
			wantNil: true,
		},
		"policy with peers": {
			policy:    &platformv1alpha1.NetworkPolicyConfig{IngressPeers: peers},
			wantPeers: peers,
		},
		"policy with empty peers": {
			policy:    &platformv1alpha1.NetworkPolicyConfig{},
			wantPeers: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w := testWorkload()
			w.Spec.NetworkPolicy = tc.policy
			w.Spec.HTTPPort = 9090

			np, err := BuildNetworkPolicy(w, scheme)
			if err != nil {
				t.Fatalf("BuildNetworkPolicy() error = %v", err)
			}

			if tc.wantNil {
				if np != nil {
					t.Fatalf("expected nil NetworkPolicy, got %v", np)
				}
				return
			}
			if np == nil {
				t.Fatal("expected NetworkPolicy, got nil")
			}

			wantTypes := []networkingv1.PolicyType{networkingv1.PolicyTypeIngress}
			if diff := cmp.Diff(wantTypes, np.Spec.PolicyTypes); diff != "" {
				t.Errorf("policy types mismatch (-want +got):\n%s", diff)
			}

			if len(np.Spec.Ingress) != 1 {
				t.Fatalf("expected 1 ingress rule, got %d", len(np.Spec.Ingress))
			}
			rule := np.Spec.Ingress[0]
			if diff := cmp.Diff(tc.wantPeers, rule.From); diff != "" {
				t.Errorf("peers mismatch (-want +got):\n%s", diff)
			}

			if len(rule.Ports) != 1 {
				t.Fatalf("expected 1 port, got %d", len(rule.Ports))
			}
			if rule.Ports[0].Port.IntValue() != 9090 {
				t.Errorf("port = %v, want 9090", rule.Ports[0].Port)
			}

			if np.Spec.PodSelector.MatchLabels["platformkit.io/workload"] != w.Name {
				t.Errorf("pod selector missing workload label, got %v", np.Spec.PodSelector.MatchLabels)
			}
		})
	}
}
