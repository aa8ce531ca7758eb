// Package resolver collapses the layered deployment configuration of a
// Workload into a single fully determined descriptor.
//
// A Workload's configuration can come from up to three layers plus the
// product catalog:
//  1. PlatformConfig (the tenant-wide layer owned by the platform operator).
//  2. Workload.spec.config (the service-scoped override layer).
//  3. Per-image overrides (Workload.spec.images[].overrides).
//
// The resolver is the single source of truth for how those layers combine.
// It ensures the reconciler and the admission webhook always agree on the
// final configuration.
//
// # Logic Hierarchy
//
// Scalar fields resolve with most-specific-wins precedence (highest to
// lowest):
//
//  1. Per-image override (image-scoped fields only).
//  2. Service layer (Workload.spec.config).
//  3. Global layer (PlatformConfig).
//  4. Hardcoded defaults.
//
// Node selectors are the one exception: the global and service maps have no
// precedence between them. Keys present in both must carry identical
// values, because node placement constraints come from two independent
// authorities and must not silently override one another. A disagreement
// aborts resolution with a ConflictError.
//
// # Purity
//
// Resolve performs no I/O and never mutates its inputs. Identical inputs
// always produce an identical descriptor, so a failed resolution is never
// retried: the caller fixes the configuration instead.
//
// Usage:
//
//	desc, err := resolver.Resolve(resolver.Input{
//	    Global:  &platformConfig.Spec.Config,
//	    Service: workload.Spec.Config,
//	    Images:  workload.Spec.Images,
//	    Catalog: cat,
//	})
//	if err != nil {
//	    // ConflictError or MissingImageError; fatal for this spec.
//	}
package resolver
