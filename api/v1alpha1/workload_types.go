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
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NOTE: json tags are required.  Any new fields you add must have json tags for
// the fields to be serialized.

// ImageSpec names one container image of the workload and carries its
// optional per-image override layer.
type ImageSpec struct {
	// ID is the image identifier in the product catalog.
	// +kubebuilder:validation:MinLength=1
	// +required
	ID string `json:"id"`

	// Overrides is the per-image configuration layer.
	// +optional
	Overrides *ImageOverrideConfig `json:"overrides,omitempty"`
}

// IngressConfig describes the HTTP ingress surface of the workload.
type IngressConfig struct {
	// Host is the fully qualified domain name routed to the workload.
	// +kubebuilder:validation:MinLength=1
	// +required
	Host string `json:"host"`

	// Path is the HTTP path prefix. Defaults to "/".
	// +kubebuilder:default="/"
	// +optional
	Path string `json:"path,omitempty"`

	// TLSSecretName is the name of the Secret holding the serving
	// certificate. Certificate provisioning itself is external.
	// +optional
	TLSSecretName string `json:"tlsSecretName,omitempty"`
}

// NetworkPolicyConfig describes the ingress network policy rendered for the
// workload. Traffic is only admitted from pods matching the listed peers.
type NetworkPolicyConfig struct {
	// IngressPeers are the peers allowed to reach the workload's pods.
	// +optional
	IngressPeers []networkingv1.NetworkPolicyPeer `json:"ingressPeers,omitempty"`
}

// WorkloadSpec defines the desired state of Workload.
type WorkloadSpec struct {
	// Images lists the container images to render, in container order.
	// The first image is the main container.
	// +kubebuilder:validation:MinItems=1
	// +required
	Images []ImageSpec `json:"images"`

	// ProductCatalogRef names the ConfigMap holding the product catalog
	// document under the "catalog.yaml" key.
	// +required
	ProductCatalogRef corev1.LocalObjectReference `json:"productCatalogRef"`

	// PlatformConfigRef names the PlatformConfig supplying the global
	// configuration layer. When empty, a PlatformConfig named "default"
	// in the operator namespace is used if it exists.
	// +optional
	PlatformConfigRef string `json:"platformConfigRef,omitempty"`

	// Config is the service-scoped configuration layer.
	// +optional
	Config *DeploymentConfig `json:"config,omitempty"`

	// Replicas is the desired number of pods.
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:default=1
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// HTTPPort is the port the main container serves traffic on.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +kubebuilder:default=8080
	// +optional
	HTTPPort int32 `json:"httpPort,omitempty"`

	// ServiceAccountName is the ServiceAccount the pods run as and the
	// subject of the rendered RoleBinding.
	// +optional
	ServiceAccountName string `json:"serviceAccountName,omitempty"`

	// RoleName is the name of an existing Role to bind
	// ServiceAccountName to. No RoleBinding is rendered when empty.
	// +optional
	RoleName string `json:"roleName,omitempty"`

	// Resources defines the compute resource requirements of the main
	// container.
	// +optional
	Resources corev1.ResourceRequirements `json:"resources,omitempty"`

	// Ingress configures the rendered Ingress. No Ingress is rendered
	// when nil.
	// +optional
	Ingress *IngressConfig `json:"ingress,omitempty"`

	// NetworkPolicy configures the rendered NetworkPolicy. No
	// NetworkPolicy is rendered when nil.
	// +optional
	NetworkPolicy *NetworkPolicyConfig `json:"networkPolicy,omitempty"`

	// PodAnnotations are annotations to add to the pods.
	// +optional
	PodAnnotations map[string]string `json:"podAnnotations,omitempty"`

	// PodLabels are additional labels to add to the pods.
	// +optional
	PodLabels map[string]string `json:"podLabels,omitempty"`
}

// WorkloadStatus defines the observed state of Workload.
type WorkloadStatus struct {
	// Ready indicates whether the workload is healthy and available.
	Ready bool `json:"ready"`

	// Replicas is the desired number of replicas.
	Replicas int32 `json:"replicas"`

	// ReadyReplicas is the number of ready replicas.
	ReadyReplicas int32 `json:"readyReplicas"`

	// ObservedGeneration reflects the generation of the most recently
	// observed Workload spec.
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the latest available observations of the
	// Workload's state.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="Replicas",type=string,JSONPath=`.status.readyReplicas`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Workload is the Schema for the workloads API
type Workload struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is a standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty,omitzero"`

	// spec defines the desired state of Workload
	// +required
	Spec WorkloadSpec `json:"spec"`

	// status defines the observed state of Workload
	// +optional
	Status WorkloadStatus `json:"status,omitempty,omitzero"`
}

// +kubebuilder:object:root=true

// WorkloadList contains a list of Workload
type WorkloadList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Workload `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Workload{}, &WorkloadList{})
}
