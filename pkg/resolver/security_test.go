package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
)

func securityLayer(sec platformv1alpha1.PodSecurityConfig) *platformv1alpha1.DeploymentConfig {
	return &platformv1alpha1.DeploymentConfig{PodSecurity: &sec}
}

func TestResolveFSGroup(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		global *platformv1alpha1.DeploymentConfig
		want   *int64 // nil means "omit the field"
	}{
		"manual value set": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				FSGroup: &platformv1alpha1.FSGroupConfig{Manual: ptr.To(int64(2000))},
			}),
			want: ptr.To(int64(2000)),
		},
		"manual value wins over namespace default flag": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				FSGroup: &platformv1alpha1.FSGroupConfig{
					Manual:              ptr.To(int64(2000)),
					UseNamespaceDefault: ptr.To(true),
				},
			}),
			want: ptr.To(int64(2000)),
		},
		"namespace default flag omits the field": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				FSGroup: &platformv1alpha1.FSGroupConfig{UseNamespaceDefault: ptr.To(true)},
			}),
			want: nil,
		},
		"namespace default flag false falls back": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				FSGroup: &platformv1alpha1.FSGroupConfig{UseNamespaceDefault: ptr.To(false)},
			}),
			want: ptr.To(DefaultFSGroup),
		},
		"nothing configured falls back": {
			global: nil,
			want:   ptr.To(DefaultFSGroup),
		},
		"empty fsGroup block falls back": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				FSGroup: &platformv1alpha1.FSGroupConfig{},
			}),
			want: ptr.To(DefaultFSGroup),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := ResolveFSGroup(tc.global)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ResolveFSGroup() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveAppArmor(t *testing.T) {
	t.Parallel()

	unconfined := platformv1alpha1.AppArmorUnconfined

	tests := map[string]struct {
		global  *platformv1alpha1.DeploymentConfig
		service *platformv1alpha1.DeploymentConfig
		want    platformv1alpha1.AppArmorProfileType
	}{
		"default is RuntimeDefault": {
			want: platformv1alpha1.AppArmorRuntimeDefault,
		},
		"global layer sets the type": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				AppArmor: &platformv1alpha1.AppArmorConfig{Type: &unconfined},
			}),
			want: platformv1alpha1.AppArmorUnconfined,
		},
		"service layer wins over global": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				AppArmor: &platformv1alpha1.AppArmorConfig{Type: &unconfined},
			}),
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				AppArmor: &platformv1alpha1.AppArmorConfig{
					Type: ptr.To(platformv1alpha1.AppArmorRuntimeDefault),
				},
			}),
			want: platformv1alpha1.AppArmorRuntimeDefault,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := ResolveAppArmor(tc.global, tc.service)
			if got.Type != tc.want {
				t.Errorf("ResolveAppArmor().Type = %q, want %q", got.Type, tc.want)
			}
		})
	}
}

func TestAppArmorProjections(t *testing.T) {
	t.Parallel()

	runtimeDefault := AppArmorProfile{Type: platformv1alpha1.AppArmorRuntimeDefault}
	if got, want := runtimeDefault.AnnotationValue(), "runtime/default"; got != want {
		t.Errorf("AnnotationValue() = %q, want %q", got, want)
	}
	if got, want := runtimeDefault.FieldProfile().Type, corev1.AppArmorProfileTypeRuntimeDefault; got != want {
		t.Errorf("FieldProfile().Type = %q, want %q", got, want)
	}

	unconfined := AppArmorProfile{Type: platformv1alpha1.AppArmorUnconfined}
	if got, want := unconfined.AnnotationValue(), "Unconfined"; got != want {
		t.Errorf("AnnotationValue() = %q, want %q", got, want)
	}
	if got, want := unconfined.FieldProfile().Type, corev1.AppArmorProfileTypeUnconfined; got != want {
		t.Errorf("FieldProfile().Type = %q, want %q", got, want)
	}
}

func TestResolveSeccomp(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		global  *platformv1alpha1.DeploymentConfig
		service *platformv1alpha1.DeploymentConfig
		want    *corev1.SeccompProfile
	}{
		"nothing configured emits no profile": {
			want: nil,
		},
		"explicit RuntimeDefault": {
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type: ptr.To(corev1.SeccompProfileTypeRuntimeDefault),
				},
			}),
			want: &corev1.SeccompProfile{Type: corev1.SeccompProfileTypeRuntimeDefault},
		},
		"localhost with profile path": {
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type:             ptr.To(corev1.SeccompProfileTypeLocalhost),
					LocalhostProfile: ptr.To("profiles/audit.json"),
				},
			}),
			want: &corev1.SeccompProfile{
				Type:             corev1.SeccompProfileTypeLocalhost,
				LocalhostProfile: ptr.To("profiles/audit.json"),
			},
		},
		"localhost without profile path suppresses the block": {
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type: ptr.To(corev1.SeccompProfileTypeLocalhost),
				},
			}),
			want: nil,
		},
		"localhost with empty profile path suppresses the block": {
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type:             ptr.To(corev1.SeccompProfileTypeLocalhost),
					LocalhostProfile: ptr.To(""),
				},
			}),
			want: nil,
		},
		"service type wins over global": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type: ptr.To(corev1.SeccompProfileTypeUnconfined),
				},
			}),
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type: ptr.To(corev1.SeccompProfileTypeRuntimeDefault),
				},
			}),
			want: &corev1.SeccompProfile{Type: corev1.SeccompProfileTypeRuntimeDefault},
		},
		"global profile path serves a service localhost type": {
			global: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					LocalhostProfile: ptr.To("profiles/base.json"),
				},
			}),
			service: securityLayer(platformv1alpha1.PodSecurityConfig{
				Seccomp: &platformv1alpha1.SeccompConfig{
					Type: ptr.To(corev1.SeccompProfileTypeLocalhost),
				},
			}),
			want: &corev1.SeccompProfile{
				Type:             corev1.SeccompProfileTypeLocalhost,
				LocalhostProfile: ptr.To("profiles/base.json"),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := ResolveSeccomp(tc.global, tc.service)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ResolveSeccomp() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
