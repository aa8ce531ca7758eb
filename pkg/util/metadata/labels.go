package metadata

import "maps"

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppVersion is the standard label key for the application version.
	LabelAppVersion = "app.kubernetes.io/version"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppPartOf is the standard label key for the name of a higher level
	// application this one is part of.
	LabelAppPartOf = "app.kubernetes.io/part-of"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNamePlatformkit is the fixed application name for all rendered resources.
	AppNamePlatformkit = "platformkit"

	// ManagedByOperator identifies the operator managing these resources.
	ManagedByOperator = "workload-operator"
)

const (
	// LabelWorkload identifies which Workload a rendered resource belongs to.
	LabelWorkload = "platformkit.io/workload"

	// LabelPlatformConfig identifies which PlatformConfig supplied the
	// global configuration layer of a rendered resource.
	LabelPlatformConfig = "platformkit.io/platform-config"
)

// BuildStandardLabels returns a map of standard kubernetes labels.
// workloadName should be the name of the Workload CR (used for instance label).
// component is the name of the rendered component (e.g. deployment, service).
func BuildStandardLabels(workloadName, component string) map[string]string {
	return map[string]string{
		LabelAppName:      AppNamePlatformkit,
		LabelAppInstance:  workloadName,
		LabelAppComponent: component,
		LabelAppPartOf:    AppNamePlatformkit,
		LabelAppManagedBy: ManagedByOperator,
		LabelWorkload:     workloadName,
	}
}

// selectorLabelsAllowList contains the keys that are allowed in label selectors.
// These must be stable identity labels, not mutable metadata.
var selectorLabelsAllowList = map[string]bool{
	LabelAppName:     true,
	LabelAppInstance: true,
	LabelWorkload:    true,
}

// GetSelectorLabels filters the provided labels map to return only those keys
// allowed in resource selectors (Identity Labels).
//
// This separates stable identity labels from mutable metadata labels like
// versions or location tags, ensuring that changes to mutable metadata do not
// trigger unnecessary recreation of resources with immutable selectors.
func GetSelectorLabels(labels map[string]string) map[string]string {
	selectorLabels := make(map[string]string)
	for k, v := range labels {
		if selectorLabelsAllowList[k] {
			selectorLabels[k] = v
		}
	}
	return selectorLabels
}

// MergeLabels merges custom labels with standard labels.
//
// Note that standard labels take precedence over custom labels to prevent users
// from overriding critical operator-managed labels.
func MergeLabels(standardLabels, customLabels map[string]string) map[string]string {
	merged := make(map[string]string)

	// Copy custom labels first (if provided)
	maps.Copy(merged, customLabels)

	// Copy standard labels (overwriting any duplicates from custom)
	maps.Copy(merged, standardLabels)

	return merged
}
