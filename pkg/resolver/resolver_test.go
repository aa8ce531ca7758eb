package resolver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		"app": {RepoPath: "team", Name: "app", Tag: "1.0"},
		"sidecar": {
			Registry: "catalog.example.com",
			Name:     "sidecar",
			Tag:      "2.3",
		},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   Input
		want *ResolvedDescriptor
	}{
		"all defaults": {
			in: Input{
				Images:  []platformv1alpha1.ImageSpec{{ID: "sidecar"}},
				Catalog: testCatalog(),
			},
			want: &ResolvedDescriptor{
				Registry:     "",
				PullPolicy:   corev1.PullIfNotPresent,
				PullSecret:   "",
				Timezone:     "UTC",
				Images:       map[string]string{"sidecar": "catalog.example.com/sidecar:2.3"},
				NodeSelector: map[string]string{},
				FSGroup:      ptr.To(DefaultFSGroup),
				AppArmor:     AppArmorProfile{Type: platformv1alpha1.AppArmorRuntimeDefault},
			},
		},
		"global layer applies when service is silent": {
			in: Input{
				Global: &platformv1alpha1.DeploymentConfig{
					Registry:     ptr.To("reg.example.com"),
					PullPolicy:   ptr.To(corev1.PullAlways),
					PullSecret:   ptr.To("regcred"),
					Timezone:     ptr.To("Europe/Stockholm"),
					NodeSelector: map[string]string{"zone": "a"},
				},
				Images:  []platformv1alpha1.ImageSpec{{ID: "app"}},
				Catalog: testCatalog(),
			},
			want: &ResolvedDescriptor{
				Registry:     "reg.example.com",
				PullPolicy:   corev1.PullAlways,
				PullSecret:   "regcred",
				Timezone:     "Europe/Stockholm",
				Images:       map[string]string{"app": "reg.example.com/team/app:1.0"},
				NodeSelector: map[string]string{"zone": "a"},
				FSGroup:      ptr.To(DefaultFSGroup),
				AppArmor:     AppArmorProfile{Type: platformv1alpha1.AppArmorRuntimeDefault},
			},
		},
		"service layer wins over global": {
			in: Input{
				Global: &platformv1alpha1.DeploymentConfig{
					Registry:   ptr.To("reg.example.com"),
					PullSecret: ptr.To("regcred"),
				},
				Service: &platformv1alpha1.DeploymentConfig{
					Registry:   ptr.To("svc.example.com"),
					PullPolicy: ptr.To(corev1.PullNever),
				},
				Images:  []platformv1alpha1.ImageSpec{{ID: "app"}},
				Catalog: testCatalog(),
			},
			want: &ResolvedDescriptor{
				Registry:     "svc.example.com",
				PullPolicy:   corev1.PullNever,
				PullSecret:   "regcred",
				Timezone:     "UTC",
				Images:       map[string]string{"app": "svc.example.com/team/app:1.0"},
				NodeSelector: map[string]string{},
				FSGroup:      ptr.To(DefaultFSGroup),
				AppArmor:     AppArmorProfile{Type: platformv1alpha1.AppArmorRuntimeDefault},
			},
		},
		"per-image override applies to its image only": {
			in: Input{
				Global: &platformv1alpha1.DeploymentConfig{
					Registry: ptr.To("reg.example.com"),
				},
				Images: []platformv1alpha1.ImageSpec{
					{ID: "app", Overrides: &platformv1alpha1.ImageOverrideConfig{
						RepoPath: ptr.To(""),
					}},
					{ID: "sidecar"},
				},
				Catalog: testCatalog(),
			},
			want: &ResolvedDescriptor{
				Registry:   "reg.example.com",
				PullPolicy: corev1.PullIfNotPresent,
				Timezone:   "UTC",
				Images: map[string]string{
					"app":     "reg.example.com/app:1.0",
					"sidecar": "reg.example.com/sidecar:2.3",
				},
				NodeSelector: map[string]string{},
				FSGroup:      ptr.To(DefaultFSGroup),
				AppArmor:     AppArmorProfile{Type: platformv1alpha1.AppArmorRuntimeDefault},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tc.in)
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveNodeSelectorConflict(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Input{
		Global: &platformv1alpha1.DeploymentConfig{
			NodeSelector: map[string]string{"zone": "a"},
		},
		Service: &platformv1alpha1.DeploymentConfig{
			NodeSelector: map[string]string{"zone": "b"},
		},
		Images:  []platformv1alpha1.ImageSpec{{ID: "app"}},
		Catalog: testCatalog(),
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve() error = %v, want ConflictError", err)
	}
	if conflict.Key != "zone" {
		t.Errorf("ConflictError.Key = %q, want %q", conflict.Key, "zone")
	}
}

func TestResolveMissingImage(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Input{
		Images:  []platformv1alpha1.ImageSpec{{ID: "nonexistent"}},
		Catalog: testCatalog(),
	})

	var missing *MissingImageError
	if !errors.As(err, &missing) {
		t.Fatalf("Resolve() error = %v, want MissingImageError", err)
	}
	if missing.ID != "nonexistent" {
		t.Errorf("MissingImageError.ID = %q, want %q", missing.ID, "nonexistent")
	}
}

func TestResolveDuplicateImage(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Input{
		Images:  []platformv1alpha1.ImageSpec{{ID: "app"}, {ID: "app"}},
		Catalog: testCatalog(),
	})

	var dup *DuplicateImageError
	if !errors.As(err, &dup) {
		t.Fatalf("Resolve() error = %v, want DuplicateImageError", err)
	}
	if dup.ID != "app" {
		t.Errorf("DuplicateImageError.ID = %q, want %q", dup.ID, "app")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	in := Input{
		Global: &platformv1alpha1.DeploymentConfig{
			Registry:     ptr.To("reg.example.com"),
			NodeSelector: map[string]string{"zone": "a"},
		},
		Service: &platformv1alpha1.DeploymentConfig{
			NodeSelector: map[string]string{"tier": "fast"},
		},
		Images:  []platformv1alpha1.ImageSpec{{ID: "app"}, {ID: "sidecar"}},
		Catalog: testCatalog(),
	}

	first, err := Resolve(in)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	second, err := Resolve(in)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical inputs produced different descriptors (-first +second):\n%s", diff)
	}
}

func TestResolveDoesNotMutateLayers(t *testing.T) {
	t.Parallel()

	global := &platformv1alpha1.DeploymentConfig{
		Registry:     ptr.To("reg.example.com"),
		NodeSelector: map[string]string{"zone": "a"},
	}
	service := &platformv1alpha1.DeploymentConfig{
		NodeSelector: map[string]string{"tier": "fast"},
	}
	globalSnapshot := global.DeepCopy()
	serviceSnapshot := service.DeepCopy()

	desc, err := Resolve(Input{
		Global:  global,
		Service: service,
		Images:  []platformv1alpha1.ImageSpec{{ID: "app"}},
		Catalog: testCatalog(),
	})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	// Writing to the output must not leak into the input layers.
	desc.NodeSelector["extra"] = "value"

	if diff := cmp.Diff(globalSnapshot, global); diff != "" {
		t.Errorf("global layer mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(serviceSnapshot, service); diff != "" {
		t.Errorf("service layer mutated (-want +got):\n%s", diff)
	}
}
