package metadata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildStandardLabels(t *testing.T) {
	t.Parallel()

	got := BuildStandardLabels("my-workload", "deployment")
	want := map[string]string{
		"app.kubernetes.io/name":       "platformkit",
		"app.kubernetes.io/instance":   "my-workload",
		"app.kubernetes.io/component":  "deployment",
		"app.kubernetes.io/part-of":    "platformkit",
		"app.kubernetes.io/managed-by": "workload-operator",
		"platformkit.io/workload":      "my-workload",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildStandardLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSelectorLabels(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		labels map[string]string
		want   map[string]string
	}{
		"identity labels pass through": {
			labels: map[string]string{
				LabelAppName:     "platformkit",
				LabelAppInstance: "my-workload",
				LabelWorkload:    "my-workload",
			},
			want: map[string]string{
				LabelAppName:     "platformkit",
				LabelAppInstance: "my-workload",
				LabelWorkload:    "my-workload",
			},
		},
		"mutable metadata filtered out": {
			labels: map[string]string{
				LabelAppName:        "platformkit",
				LabelAppVersion:     "1.2.3",
				LabelAppManagedBy:   "workload-operator",
				LabelPlatformConfig: "default",
			},
			want: map[string]string{
				LabelAppName: "platformkit",
			},
		},
		"empty input": {
			labels: map[string]string{},
			want:   map[string]string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, GetSelectorLabels(tc.labels)); diff != "" {
				t.Errorf("GetSelectorLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeLabels(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		standard map[string]string
		custom   map[string]string
		want     map[string]string
	}{
		"custom labels added": {
			standard: map[string]string{LabelAppName: "platformkit"},
			custom:   map[string]string{"team": "netdata"},
			want: map[string]string{
				LabelAppName: "platformkit",
				"team":       "netdata",
			},
		},
		"standard wins on duplicate keys": {
			standard: map[string]string{LabelAppName: "platformkit"},
			custom:   map[string]string{LabelAppName: "spoofed"},
			want:     map[string]string{LabelAppName: "platformkit"},
		},
		"nil custom labels": {
			standard: map[string]string{LabelAppName: "platformkit"},
			want:     map[string]string{LabelAppName: "platformkit"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, MergeLabels(tc.standard, tc.custom)); diff != "" {
				t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
