package workload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

func TestBuildService(t *testing.T) {
	t.Parallel()
	scheme := testScheme(t)

	tests := map[string]struct {
		httpPort  int32
		wantPort  int32
	}{
		"default port": {
			httpPort: 0,
			wantPort: DefaultHTTPPort,
		},
		"explicit port": {
			httpPort: 9090,
			wantPort: 9090,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w := testWorkload()
			w.Spec.HTTPPort = tc.httpPort

			svc, err := BuildService(w, scheme)
			if err != nil {
				t.Fatalf("BuildService() error = %v", err)
			}

			if svc.Spec.Type != corev1.ServiceTypeClusterIP {
				t.Errorf("service type = %q, want ClusterIP", svc.Spec.Type)
			}

			wantPorts := []corev1.ServicePort{
				{
					Name:       "http",
					Port:       tc.wantPort,
					TargetPort: intstr.FromString("http"),
					Protocol:   corev1.ProtocolTCP,
				},
			}
			if diff := cmp.Diff(wantPorts, svc.Spec.Ports); diff != "" {
				t.Errorf("ports mismatch (-want +got):\n%s", diff)
			}

			if svc.Spec.Selector["platformkit.io/workload"] != w.Name {
				t.Errorf("selector missing workload label, got %v", svc.Spec.Selector)
			}

			if len(svc.OwnerReferences) != 1 || svc.OwnerReferences[0].Name != w.Name {
				t.Errorf("owner references = %v, want owned by %s", svc.OwnerReferences, w.Name)
			}
		})
	}
}
