package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	workloadInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "workload_operator_workload_info",
			Help: "Info-style metric for Workload discovery and readiness tracking. Always 1.",
		},
		[]string{"name", "namespace", "ready"},
	)

	workloadImagesTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "workload_operator_workload_images_total",
			Help: "Number of images rendered for a Workload.",
		},
		[]string{"workload", "namespace"},
	)

	resolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workload_operator_resolve_total",
			Help: "Total number of configuration resolutions by result.",
		},
		[]string{"workload", "namespace", "result"},
	)

	resolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workload_operator_resolve_duration_seconds",
			Help:    "Latency of configuration resolution in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"workload", "namespace"},
	)

	webhookRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workload_operator_webhook_request_total",
			Help: "Total number of webhook admission requests.",
		},
		[]string{"operation", "resource", "result"},
	)

	webhookRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workload_operator_webhook_request_duration_seconds",
			Help:    "Latency of webhook admission handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "resource"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		workloadInfo,
		workloadImagesTotal,
		resolveTotal,
		resolveDuration,
		webhookRequestTotal,
		webhookRequestDuration,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		workloadInfo,
		workloadImagesTotal,
		resolveTotal,
		resolveDuration,
		webhookRequestTotal,
		webhookRequestDuration,
	}
}
