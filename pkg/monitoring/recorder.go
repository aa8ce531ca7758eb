package monitoring

import "time"

// SetWorkloadInfo sets the info-style gauge for a Workload.
// Old readiness labels are automatically cleaned up via DeletePartialMatch.
func SetWorkloadInfo(name, namespace string, ready bool) {
	workloadInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	readiness := "false"
	if ready {
		readiness = "true"
	}
	workloadInfo.WithLabelValues(name, namespace, readiness).Set(1)
}

// SetWorkloadImages sets the rendered image count gauge for a Workload.
func SetWorkloadImages(workload, namespace string, images int) {
	workloadImagesTotal.WithLabelValues(workload, namespace).Set(float64(images))
}

// RecordResolve records one configuration resolution's result and duration.
// result should be "success", "conflict", "missing_image" or "invalid_input".
func RecordResolve(workload, namespace, result string, duration time.Duration) {
	resolveTotal.WithLabelValues(workload, namespace, result).Inc()
	resolveDuration.WithLabelValues(workload, namespace).Observe(duration.Seconds())
}

// RecordWebhookRequest records a webhook admission request's result and duration.
func RecordWebhookRequest(operation, resource string, err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	webhookRequestTotal.WithLabelValues(operation, resource, result).Inc()
	webhookRequestDuration.WithLabelValues(operation, resource).Observe(duration.Seconds())
}
