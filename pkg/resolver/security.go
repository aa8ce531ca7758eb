package resolver

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
)

// ResolveFSGroup resolves the pod fsGroup from the global layer.
//
// This is a three-way branch, not an override chain: an explicit manual
// value wins; an explicit "use the namespace default" request returns nil,
// meaning the field is omitted so the platform's policy default applies;
// no configuration at all falls back to DefaultFSGroup. "Defer to the
// platform" and "nothing configured" are distinct states.
func ResolveFSGroup(global *platformv1alpha1.DeploymentConfig) *int64 {
	var cfg *platformv1alpha1.FSGroupConfig
	if global != nil && global.PodSecurity != nil {
		cfg = global.PodSecurity.FSGroup
	}

	switch {
	case cfg != nil && cfg.Manual != nil:
		return ptr.To(*cfg.Manual)
	case cfg != nil && cfg.UseNamespaceDefault != nil && *cfg.UseNamespaceDefault:
		return nil
	default:
		return ptr.To(DefaultFSGroup)
	}
}

// AppArmorProfile is the resolved AppArmor setting. The annotation-based
// and structured-field mechanisms are mutually exclusive depending on the
// target platform, so the profile exposes both projections and the caller
// picks one based on an externally supplied capability flag. The resolver
// itself stays platform-version-agnostic.
type AppArmorProfile struct {
	// Type is the resolved profile type.
	Type platformv1alpha1.AppArmorProfileType
}

// AnnotationValue renders the legacy per-container annotation projection.
func (p AppArmorProfile) AnnotationValue() string {
	if p.Type == platformv1alpha1.AppArmorRuntimeDefault {
		return AppArmorAnnotationRuntimeDefault
	}
	return string(p.Type)
}

// FieldProfile renders the structured securityContext projection.
func (p AppArmorProfile) FieldProfile() *corev1.AppArmorProfile {
	return &corev1.AppArmorProfile{
		Type: corev1.AppArmorProfileType(p.Type),
	}
}

// ResolveAppArmor resolves the AppArmor profile type through the standard
// override chain, defaulting to RuntimeDefault.
func ResolveAppArmor(global, service *platformv1alpha1.DeploymentConfig) AppArmorProfile {
	profileType := firstSet(DefaultAppArmorType,
		securityField(global, appArmorTypeOf),
		securityField(service, appArmorTypeOf),
	)
	return AppArmorProfile{Type: profileType}
}

// ResolveSeccomp resolves the seccomp profile block. The block is only
// emitted when a profile type is explicitly configured on some layer. A
// Localhost type without a localhost profile path suppresses the whole
// block rather than emitting an invalid reference.
func ResolveSeccomp(global, service *platformv1alpha1.DeploymentConfig) *corev1.SeccompProfile {
	profileType := firstSet(nil,
		wrap(securityField(global, seccompTypeOf)),
		wrap(securityField(service, seccompTypeOf)),
	)
	if profileType == nil {
		return nil
	}

	localhostProfile := firstSet(nil,
		wrap(securityField(global, seccompProfileOf)),
		wrap(securityField(service, seccompProfileOf)),
	)

	if *profileType == corev1.SeccompProfileTypeLocalhost {
		if localhostProfile == nil || *localhostProfile == "" {
			return nil
		}
		return &corev1.SeccompProfile{
			Type:             corev1.SeccompProfileTypeLocalhost,
			LocalhostProfile: ptr.To(*localhostProfile),
		}
	}

	return &corev1.SeccompProfile{Type: *profileType}
}

func appArmorTypeOf(s platformv1alpha1.PodSecurityConfig) *platformv1alpha1.AppArmorProfileType {
	if s.AppArmor == nil {
		return nil
	}
	return s.AppArmor.Type
}

func seccompTypeOf(s platformv1alpha1.PodSecurityConfig) *corev1.SeccompProfileType {
	if s.Seccomp == nil {
		return nil
	}
	return s.Seccomp.Type
}

func seccompProfileOf(s platformv1alpha1.PodSecurityConfig) *string {
	if s.Seccomp == nil {
		return nil
	}
	return s.Seccomp.LocalhostProfile
}

// wrap lifts an optional value into a double pointer so firstSet can fold
// layers whose field is itself a pointer, keeping "layer unset" (nil outer)
// distinct from "layer set" (non-nil outer).
func wrap[T any](v *T) **T {
	if v == nil {
		return nil
	}
	return &v
}
