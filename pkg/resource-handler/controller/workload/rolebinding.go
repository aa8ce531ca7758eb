package workload

import (
	"fmt"

	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	platformv1alpha1 "github.com/platformkit/workload-operator/api/v1alpha1"
	"github.com/platformkit/workload-operator/pkg/util/metadata"
)

// BuildRoleBinding renders the RoleBinding granting the Workload's
// ServiceAccount the named Role. Returns nil when no role is configured.
// The Role itself must already exist; this operator only binds it.
func BuildRoleBinding(
	w *platformv1alpha1.Workload,
	scheme *runtime.Scheme,
) (*rbacv1.RoleBinding, error) {
	if w.Spec.RoleName == "" {
		return nil, nil
	}

	serviceAccount := w.Spec.ServiceAccountName
	if serviceAccount == "" {
		serviceAccount = "default"
	}

	binding := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name,
			Namespace: w.Namespace,
			Labels:    metadata.BuildStandardLabels(w.Name, ComponentName),
		},
		Subjects: []rbacv1.Subject{
			{
				Kind:      rbacv1.ServiceAccountKind,
				Name:      serviceAccount,
				Namespace: w.Namespace,
			},
		},
		RoleRef: rbacv1.RoleRef{
			APIGroup: rbacv1.GroupName,
			Kind:     "Role",
			Name:     w.Spec.RoleName,
		},
	}

	if err := ctrl.SetControllerReference(w, binding, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return binding, nil
}
