package resolver

import (
	corev1 "k8s.io/api/core/v1"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/catalog"
)

// Input is one resolution's worth of configuration. All fields are
// immutable snapshots owned by the caller; Resolve only reads them.
type Input struct {
	// Global is the tenant-wide layer. May be nil.
	Global *platformv1alpha1.DeploymentConfig

	// Service is the workload's override layer. May be nil.
	Service *platformv1alpha1.DeploymentConfig

	// Images lists the images to compose, in container order, each with
	// its optional per-image override layer.
	Images []platformv1alpha1.ImageSpec

	// Catalog is the read-only product catalog.
	Catalog catalog.Catalog
}

// ResolvedDescriptor is the output of a resolution: every field fully
// determined, ready for manifest emission.
type ResolvedDescriptor struct {
	// Registry is the layer-resolved registry URL, empty when no layer
	// sets one (per-image references may still carry catalog registries).
	Registry string

	// PullPolicy is the image pull policy for all containers.
	PullPolicy corev1.PullPolicy

	// PullSecret is the image pull Secret name, empty when none is
	// configured.
	PullSecret string

	// Timezone is the TZ value for all containers.
	Timezone string

	// Images maps each image identifier to its fully qualified reference.
	Images map[string]string

	// NodeSelector is the merged node selector map.
	NodeSelector map[string]string

	// FSGroup is the pod fsGroup; nil means "omit the field so the
	// platform's namespace-level default applies".
	FSGroup *int64

	// AppArmor is the resolved AppArmor profile, projectable as either an
	// annotation or a structured field.
	AppArmor AppArmorProfile

	// Seccomp is the seccomp profile block, nil when none is configured.
	Seccomp *corev1.SeccompProfile
}

// Resolve collapses the configuration layers into a fully determined
// descriptor. It fails only on a node selector conflict, a duplicate image
// identifier, or an image identifier missing from the catalog; every other
// absence resolves via defaulting.
func Resolve(in Input) (*ResolvedDescriptor, error) {
	nodeSelector, err := MergeNodeSelectors(
		nodeSelectorOf(in.Global),
		nodeSelectorOf(in.Service),
	)
	if err != nil {
		return nil, err
	}

	images := make(map[string]string, len(in.Images))
	for _, img := range in.Images {
		if _, ok := images[img.ID]; ok {
			return nil, &DuplicateImageError{ID: img.ID}
		}
		entry, ok := in.Catalog.Lookup(img.ID)
		if !ok {
			return nil, &MissingImageError{ID: img.ID}
		}
		images[img.ID] = ComposeImageRef(entry, in.Global, in.Service, img.Overrides)
	}

	return &ResolvedDescriptor{
		Registry: firstSet("",
			field(in.Global, registryOf),
			field(in.Service, registryOf),
		),
		PullPolicy: firstSet(DefaultPullPolicy,
			field(in.Global, pullPolicyOf),
			field(in.Service, pullPolicyOf),
		),
		PullSecret: firstSet("",
			field(in.Global, pullSecretOf),
			field(in.Service, pullSecretOf),
		),
		Timezone: firstSet(DefaultTimezone,
			field(in.Global, timezoneOf),
			field(in.Service, timezoneOf),
		),
		Images:       images,
		NodeSelector: nodeSelector,
		FSGroup:      ResolveFSGroup(in.Global),
		AppArmor:     ResolveAppArmor(in.Global, in.Service),
		Seccomp:      ResolveSeccomp(in.Global, in.Service),
	}, nil
}

func pullPolicyOf(c platformv1alpha1.DeploymentConfig) *corev1.PullPolicy { return c.PullPolicy }
func pullSecretOf(c platformv1alpha1.DeploymentConfig) *string            { return c.PullSecret }
func timezoneOf(c platformv1alpha1.DeploymentConfig) *string              { return c.Timezone }

func nodeSelectorOf(c *platformv1alpha1.DeploymentConfig) map[string]string {
	if c == nil {
		return nil
	}
	return c.NodeSelector
}
