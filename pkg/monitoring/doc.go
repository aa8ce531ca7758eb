// Package monitoring centralizes the operator's observability surface:
// Prometheus collectors registered with the controller-runtime metrics
// registry and OpenTelemetry tracing helpers for reconciliation spans.
//
// Recording functions are package-level so callers never manage collector
// handles; all collectors are registered once at init.
package monitoring
