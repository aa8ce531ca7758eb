package workload

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/resolver"
	"github.com/platformkit/workload-operator/pkg/util/metadata"
)

const (
	// ComponentName is the component label value for rendered Workload resources.
	ComponentName = "server"

	// DefaultReplicas is the default number of Workload replicas.
	DefaultReplicas int32 = 1

	// DefaultHTTPPort is the default port the main container serves on.
	DefaultHTTPPort int32 = 8080
)

// BuildOptions carries externally supplied platform capabilities that
// select between equivalent manifest renderings.
type BuildOptions struct {
	// AppArmorStructuredFields selects the securityContext.appArmorProfile
	// field over the legacy per-container annotation. The two mechanisms
	// are mutually exclusive depending on the target platform version.
	AppArmorStructuredFields bool
}

// BuildDeployment renders the Deployment for a Workload from its resolved
// descriptor. Returns a deterministic Deployment; all configuration
// decisions were already made by the resolver.
func BuildDeployment(
	w *platformv1alpha1.Workload,
	desc *resolver.ResolvedDescriptor,
	opts BuildOptions,
	scheme *runtime.Scheme,
) (*appsv1.Deployment, error) {
	replicas := DefaultReplicas
	if w.Spec.Replicas != nil {
		replicas = *w.Spec.Replicas
	}

	labels := metadata.BuildStandardLabels(w.Name, ComponentName)
	selectorLabels := metadata.GetSelectorLabels(labels)
	podLabels := metadata.MergeLabels(labels, w.Spec.PodLabels)

	podAnnotations := make(map[string]string, len(w.Spec.PodAnnotations)+len(w.Spec.Images))
	for k, v := range w.Spec.PodAnnotations {
		podAnnotations[k] = v
	}

	containers := make([]corev1.Container, 0, len(w.Spec.Images))
	for i, img := range w.Spec.Images {
		ref, ok := desc.Images[img.ID]
		if !ok {
			return nil, fmt.Errorf("descriptor has no reference for image %q", img.ID)
		}

		container := corev1.Container{
			Name:            img.ID,
			Image:           ref,
			ImagePullPolicy: desc.PullPolicy,
			Env: []corev1.EnvVar{
				{Name: "TZ", Value: desc.Timezone},
			},
		}
		// The first image is the main container and owns the serving port.
		if i == 0 {
			container.Ports = []corev1.ContainerPort{
				{Name: "http", ContainerPort: httpPort(w), Protocol: corev1.ProtocolTCP},
			}
			container.Resources = w.Spec.Resources
		}
		containers = append(containers, container)

		if !opts.AppArmorStructuredFields {
			podAnnotations[resolver.AppArmorAnnotationPrefix+img.ID] = desc.AppArmor.AnnotationValue()
		}
	}

	podSecurity := &corev1.PodSecurityContext{
		FSGroup:        desc.FSGroup,
		SeccompProfile: desc.Seccomp,
	}
	if opts.AppArmorStructuredFields {
		podSecurity.AppArmorProfile = desc.AppArmor.FieldProfile()
	}

	var pullSecrets []corev1.LocalObjectReference
	if desc.PullSecret != "" {
		pullSecrets = []corev1.LocalObjectReference{{Name: desc.PullSecret}}
	}

	var nodeSelector map[string]string
	if len(desc.NodeSelector) > 0 {
		nodeSelector = desc.NodeSelector
	}

	if len(podAnnotations) == 0 {
		podAnnotations = nil
	}

	deployment := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name,
			Namespace: w.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: selectorLabels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: podAnnotations,
				},
				Spec: corev1.PodSpec{
					ServiceAccountName: w.Spec.ServiceAccountName,
					ImagePullSecrets:   pullSecrets,
					Containers:         containers,
					NodeSelector:       nodeSelector,
					SecurityContext:    podSecurity,
				},
			},
		},
	}

	if err := ctrl.SetControllerReference(w, deployment, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return deployment, nil
}

func httpPort(w *platformv1alpha1.Workload) int32 {
	if w.Spec.HTTPPort != 0 {
		return w.Spec.HTTPPort
	}
	return DefaultHTTPPort
}
