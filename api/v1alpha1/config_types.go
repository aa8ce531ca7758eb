/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
)

// ============================================================================
// Shared Configuration Structs
// ============================================================================
//
// These structs model one configuration layer. The same shape is used for
// the global layer (PlatformConfig) and the service layer (Workload.spec.config)
// so that the resolver can fold them uniformly.

// DeploymentConfig is one layer of deployment configuration. Every field is
// optional; a nil field defers to the next, less specific layer. The
// distinction between "not set" (nil) and "set to the empty value" is
// meaningful for RepoPath and must be preserved by clients.
type DeploymentConfig struct {
	// Registry is the container registry URL used as the base of every
	// image reference, e.g. "registry.example.com".
	// +kubebuilder:validation:MinLength=1
	// +optional
	Registry *string `json:"registry,omitempty"`

	// PullPolicy is the image pull policy applied to all containers.
	// +kubebuilder:validation:Enum=Always;Never;IfNotPresent
	// +optional
	PullPolicy *corev1.PullPolicy `json:"pullPolicy,omitempty"`

	// PullSecret is the name of the image pull Secret in the workload's
	// namespace.
	// +kubebuilder:validation:MinLength=1
	// +optional
	PullSecret *string `json:"pullSecret,omitempty"`

	// RepoPath is the path segment inserted between the registry and the
	// image name. An explicitly empty string suppresses the path segment
	// entirely, which is different from leaving the field unset.
	// +optional
	RepoPath *string `json:"repoPath,omitempty"`

	// NodeSelector constrains which nodes the workload's pods may be
	// scheduled on. Keys shared between layers must carry identical
	// values; a disagreement is a configuration error, not an override.
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`

	// Timezone is the TZ value exported to every container.
	// +kubebuilder:validation:MinLength=1
	// +optional
	Timezone *string `json:"timezone,omitempty"`

	// PodSecurity configures the pod-level security profiles.
	// +optional
	PodSecurity *PodSecurityConfig `json:"podSecurity,omitempty"`
}

// PodSecurityConfig groups the pod security profile settings of a layer.
type PodSecurityConfig struct {
	// FSGroup controls the pod fsGroup resolution.
	// +optional
	FSGroup *FSGroupConfig `json:"fsGroup,omitempty"`

	// AppArmor selects the AppArmor profile type.
	// +optional
	AppArmor *AppArmorConfig `json:"appArmor,omitempty"`

	// Seccomp selects the seccomp profile. The profile is only rendered
	// when a type is explicitly configured here.
	// +optional
	Seccomp *SeccompConfig `json:"seccomp,omitempty"`
}

// FSGroupConfig resolves the pod fsGroup. "Defer to the namespace default"
// is a distinct state from "no configuration given": the former omits the
// field so the platform policy applies, the latter falls back to a fixed
// constant.
type FSGroupConfig struct {
	// Manual is an explicit fsGroup GID. Takes precedence over
	// UseNamespaceDefault.
	// +kubebuilder:validation:Minimum=0
	// +optional
	Manual *int64 `json:"manual,omitempty"`

	// UseNamespaceDefault requests that the fsGroup field be omitted from
	// the rendered pod spec so the namespace-level default applies.
	// +optional
	UseNamespaceDefault *bool `json:"useNamespaceDefault,omitempty"`
}

// AppArmorProfileType is the resolved AppArmor profile kind.
// +kubebuilder:validation:Enum=RuntimeDefault;Unconfined
type AppArmorProfileType string

const (
	// AppArmorRuntimeDefault applies the container runtime's default profile.
	AppArmorRuntimeDefault AppArmorProfileType = "RuntimeDefault"

	// AppArmorUnconfined disables AppArmor confinement.
	AppArmorUnconfined AppArmorProfileType = "Unconfined"
)

// AppArmorConfig selects the AppArmor profile type for the workload's pods.
type AppArmorConfig struct {
	// Type is the AppArmor profile type.
	// +optional
	Type *AppArmorProfileType `json:"type,omitempty"`
}

// SeccompConfig selects the seccomp profile for the workload's pods.
type SeccompConfig struct {
	// Type is the seccomp profile type. When set to Localhost,
	// LocalhostProfile is mandatory; without it no seccomp profile is
	// rendered at all.
	// +kubebuilder:validation:Enum=RuntimeDefault;Unconfined;Localhost
	// +optional
	Type *corev1.SeccompProfileType `json:"type,omitempty"`

	// LocalhostProfile is the node-local profile path, relative to the
	// kubelet's seccomp profile root. Only meaningful for type Localhost.
	// +optional
	LocalhostProfile *string `json:"localhostProfile,omitempty"`
}

// ImageOverrideConfig is the per-image override layer. Only registry and
// repo path are overridable per image; name and tag always come from the
// product catalog.
type ImageOverrideConfig struct {
	// Registry overrides the resolved registry URL for this image only.
	// +kubebuilder:validation:MinLength=1
	// +optional
	Registry *string `json:"registry,omitempty"`

	// RepoPath overrides the resolved repo path for this image only. An
	// explicitly empty string removes the path segment.
	// +optional
	RepoPath *string `json:"repoPath,omitempty"`
}
