package resolver

import (
	corev1 "k8s.io/api/core/v1"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
)

const (
	// DefaultPullPolicy is the image pull policy used when no layer sets one.
	DefaultPullPolicy = corev1.PullIfNotPresent

	// DefaultTimezone is the TZ value used when no layer sets one.
	DefaultTimezone = "UTC"

	// DefaultFSGroup is the fsGroup GID used when no layer configures
	// fsGroup at all. Distinct from the namespace-default case, which
	// omits the field entirely.
	DefaultFSGroup int64 = 10000

	// DefaultAppArmorType is the AppArmor profile type used when no layer
	// sets one.
	DefaultAppArmorType = platformv1alpha1.AppArmorRuntimeDefault

	// AppArmorAnnotationRuntimeDefault is the legacy annotation value for
	// the RuntimeDefault profile type.
	AppArmorAnnotationRuntimeDefault = "runtime/default"

	// AppArmorAnnotationPrefix is the per-container key prefix of the
	// legacy AppArmor annotation mechanism.
	AppArmorAnnotationPrefix = "container.apparmor.security.beta.kubernetes.io/"

	// FallbackPlatformConfig is the name of the PlatformConfig to look for
	// when a Workload does not reference one explicitly.
	FallbackPlatformConfig = "default"
)
