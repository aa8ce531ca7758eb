package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// IgnoreMetaRuntimeFields ignores the ObjectMeta fields populated by the
// API server at runtime (UID, resource version, timestamps, managed fields).
// Name, namespace, labels, and owner references still compare.
func IgnoreMetaRuntimeFields() cmp.Options {
	return cmp.Options{
		cmpopts.IgnoreFields(metav1.ObjectMeta{},
			"UID",
			"ResourceVersion",
			"Generation",
			"CreationTimestamp",
			"DeletionTimestamp",
			"DeletionGracePeriodSeconds",
			"ManagedFields",
		),
	}
}

// IgnoreStatus ignores any struct field named Status.
func IgnoreStatus() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		for _, step := range p {
			if sf, ok := step.(cmp.StructField); ok && sf.Name() == "Status" {
				return true
			}
		}
		return false
	}, cmp.Ignore())
}

// IgnoreObjectMetaCompletely ignores the whole ObjectMeta, comparing only
// the remaining fields (TypeMeta, Spec, and so on).
func IgnoreObjectMetaCompletely() cmp.Option {
	return cmpopts.IgnoreTypes(metav1.ObjectMeta{})
}

// CompareOptions combines the usual options for comparing a built object
// with one read back from a fake client.
func CompareOptions() cmp.Options {
	return cmp.Options{
		IgnoreMetaRuntimeFields(),
		IgnoreStatus(),
	}
}

// CompareSpecOnly compares only object specs, ignoring metadata and status.
func CompareSpecOnly() cmp.Options {
	return cmp.Options{
		IgnoreObjectMetaCompletely(),
		IgnoreStatus(),
	}
}
