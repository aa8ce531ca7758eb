package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestSetWorkloadInfo(t *testing.T) {
	t.Cleanup(func() { workloadInfo.Reset() })

	SetWorkloadInfo("test-workload", "default", false)

	val := gaugeValue(t, workloadInfo, "test-workload", "default", "false")
	if val != 1 {
		t.Errorf("expected workloadInfo gauge to be 1, got %f", val)
	}

	// Readiness flip should clean up the old label set
	SetWorkloadInfo("test-workload", "default", true)

	val = gaugeValue(t, workloadInfo, "test-workload", "default", "true")
	if val != 1 {
		t.Errorf("expected workloadInfo gauge for ready=true to be 1, got %f", val)
	}

	oldVal := gaugeValue(t, workloadInfo, "test-workload", "default", "false")
	if oldVal != 0 {
		t.Error("old readiness label set should have been cleaned up")
	}
}

func TestSetWorkloadImages(t *testing.T) {
	t.Cleanup(func() { workloadImagesTotal.Reset() })

	SetWorkloadImages("test-workload", "default", 3)

	images := gaugeValue(t, workloadImagesTotal, "test-workload", "default")
	if images != 3 {
		t.Errorf("expected images=3, got %f", images)
	}
}

func TestRecordResolve(t *testing.T) {
	t.Cleanup(func() {
		resolveTotal.Reset()
		resolveDuration.Reset()
	})

	RecordResolve("test-workload", "default", "success", 10*time.Millisecond)
	RecordResolve("test-workload", "default", "conflict", 5*time.Millisecond)

	successVal := counterValue(t, resolveTotal, "test-workload", "default", "success")
	if successVal != 1 {
		t.Errorf("expected success counter=1, got %f", successVal)
	}

	conflictVal := counterValue(t, resolveTotal, "test-workload", "default", "conflict")
	if conflictVal != 1 {
		t.Errorf("expected conflict counter=1, got %f", conflictVal)
	}
}

func TestRecordWebhookRequest(t *testing.T) {
	t.Cleanup(func() {
		webhookRequestTotal.Reset()
		webhookRequestDuration.Reset()
	})

	RecordWebhookRequest("CREATE", "Workload", nil, 50*time.Millisecond)
	RecordWebhookRequest(
		"UPDATE",
		"Workload",
		errors.New("validation failed"),
		100*time.Millisecond,
	)

	successVal := counterValue(t, webhookRequestTotal, "CREATE", "Workload", "success")
	if successVal != 1 {
		t.Errorf("expected success counter=1, got %f", successVal)
	}

	errorVal := counterValue(t, webhookRequestTotal, "UPDATE", "Workload", "error")
	if errorVal != 1 {
		t.Errorf("expected error counter=1, got %f", errorVal)
	}
}

// --- helpers ---

func gaugeValue(t *testing.T, vec *prometheus.GaugeVec, labels ...string) float64 {
	t.Helper()
	g, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}
	m := &dto.Metric{}
	if err := g.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}
