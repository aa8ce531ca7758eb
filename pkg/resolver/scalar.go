package resolver

import (
	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
)

// firstSet returns the value from the most specific layer that defines the
// field, falling back to def when no layer does. Layers are ordered least
// to most specific; a nil pointer means the layer leaves the field unset.
//
// This is the single override primitive for every scalar field (registry,
// pull policy, pull secret, repo path, timezone, AppArmor type). Absence is
// always resolvable via def, so there is no error path.
func firstSet[T any](def T, layers ...*T) T {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] != nil {
			return *layers[i]
		}
	}
	return def
}

// field plucks one optional field out of a possibly nil layer, so layers
// can be fed to firstSet without nil checks at every call site.
func field[T any](layer *platformv1alpha1.DeploymentConfig, get func(platformv1alpha1.DeploymentConfig) *T) *T {
	if layer == nil {
		return nil
	}
	return get(*layer)
}

// securityField plucks one optional field out of a layer's pod security
// block, tolerating a nil layer and a nil block.
func securityField[T any](layer *platformv1alpha1.DeploymentConfig, get func(platformv1alpha1.PodSecurityConfig) *T) *T {
	if layer == nil || layer.PodSecurity == nil {
		return nil
	}
	return get(*layer.PodSecurity)
}
