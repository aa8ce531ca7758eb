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

// Package v1alpha1 defines the API types for the Workload Operator.
//
// This package contains the Go type definitions for all Custom Resources in
// the platformkit.io API group. These types are used by kubebuilder to
// generate:
//   - CustomResourceDefinitions (CRDs)
//   - DeepCopy methods
//   - Client code
//
// # Custom Resources
//
// User-Facing Resources:
//   - Workload: a deployable application unit. Its spec carries the
//     service-scoped configuration layer, the list of container images to
//     render (each with an optional per-image override layer), and the
//     outward surfaces of the workload (service ports, ingress, network
//     policy, role binding).
//   - PlatformConfig: the tenant-wide configuration layer owned by the
//     platform operator. A PlatformConfig named "default" in the operator
//     namespace acts as the implicit global layer for every Workload that
//     does not reference one explicitly.
//
// # Configuration Layering
//
// Every field of DeploymentConfig is optional. During rendering the
// operator collapses the layers with most-specific-wins precedence:
//
//	built-in default < PlatformConfig < Workload.spec.config < per-image override
//
// The collapse itself lives in pkg/resolver; the types here only model the
// layers.
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
package v1alpha1
