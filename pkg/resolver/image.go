package resolver

import (
	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/catalog"
)

// ComposeImageRef builds the fully qualified reference for one image:
// registry/[repoPath/]name:tag.
//
// The registry starts from the catalog entry and is overridden by the
// global, service and per-image layers in that order. The repo path starts
// from the catalog entry and is overridden by the service and per-image
// layers; a present-but-empty override suppresses the path segment
// entirely, which is different from an unset override falling through to
// the catalog value. Name and tag always come from the catalog.
//
// The function is pure and carries no cross-image state; composing image A
// never reads anything used for image B.
func ComposeImageRef(
	entry catalog.Entry,
	global, service *platformv1alpha1.DeploymentConfig,
	override *platformv1alpha1.ImageOverrideConfig,
) string {
	var imageRegistry, imageRepoPath *string
	if override != nil {
		imageRegistry = override.Registry
		imageRepoPath = override.RepoPath
	}

	registry := firstSet(entry.Registry,
		field(global, registryOf),
		field(service, registryOf),
		imageRegistry,
	)

	// The global layer is intentionally absent here: only the service and
	// per-image layers may override the catalog's repo path.
	repoPath := firstSet(entry.RepoPath,
		field(service, repoPathOf),
		imageRepoPath,
	)

	ref := entry.Name + ":" + entry.Tag
	if repoPath != "" {
		ref = repoPath + "/" + ref
	}
	if registry != "" {
		ref = registry + "/" + ref
	}
	return ref
}

func registryOf(c platformv1alpha1.DeploymentConfig) *string { return c.Registry }
func repoPathOf(c platformv1alpha1.DeploymentConfig) *string { return c.RepoPath }
