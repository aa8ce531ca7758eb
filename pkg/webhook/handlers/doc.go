// Package handlers implements the admission control logic for the Workload
// Operator.
//
// It contains implementations of the controller-runtime CustomDefaulter and
// CustomValidator interfaces for two purposes:
//
//  1. Mutation (Defaulters):
//     These handlers intercept CREATE and UPDATE requests to apply default
//     values to Workload resources. Defaults that depend on cluster state,
//     such as promoting the implicit "default" PlatformConfig reference to
//     an explicit one, are resolved here so the stored object shows the
//     operator's actual behavior instead of it happening invisibly at
//     reconcile time. (See: WorkloadDefaulter).
//
//  2. Validation (Validators):
//     These handlers enforce semantic rules that cannot be expressed in
//     OpenAPI schemas or CEL. This includes stateful checks requiring
//     lookups of other objects: a referenced PlatformConfig must exist, the
//     requested images must resolve against the product catalog, node
//     selector layers must not conflict, and a PlatformConfig still in use
//     by Workloads must not be deleted. (See: WorkloadValidator,
//     PlatformConfigValidator).
package handlers
