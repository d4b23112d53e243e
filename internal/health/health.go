package health

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
)

// severity orders health codes from best to worst. Aggregation picks the
// worst code across an application's resources.
var severity = map[v1alpha1.HealthStatusCode]int{
	v1alpha1.HealthStatusHealthy:     0,
	v1alpha1.HealthStatusSuspended:   1,
	v1alpha1.HealthStatusProgressing: 2,
	v1alpha1.HealthStatusMissing:     3,
	v1alpha1.HealthStatusDegraded:    4,
	v1alpha1.HealthStatusUnknown:     5,
}

// IsWorse reports whether current is a worse health code than best.
func IsWorse(best, current v1alpha1.HealthStatusCode) bool {
	return severity[current] > severity[best]
}

// Aggregate folds per-resource health into a single application health,
// keeping the message of the worst resource.
func Aggregate(statuses []v1alpha1.HealthStatus) v1alpha1.HealthStatus {
	agg := v1alpha1.HealthStatus{Status: v1alpha1.HealthStatusHealthy}
	for _, s := range statuses {
		if IsWorse(agg.Status, s.Status) {
			agg = s
		}
	}
	return agg
}

// ForResource assesses the health of a single live object. nil means the
// declared resource has no live counterpart.
func ForResource(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	if obj == nil {
		return v1alpha1.HealthStatus{
			Status:  v1alpha1.HealthStatusMissing,
			Message: "resource not found in cluster",
		}
	}

	gk := obj.GroupVersionKind().GroupKind()
	switch gk.Group {
	case "apps":
		switch gk.Kind {
		case "Deployment":
			return deploymentHealth(obj)
		case "StatefulSet":
			return statefulSetHealth(obj)
		case "DaemonSet":
			return daemonSetHealth(obj)
		case "ReplicaSet":
			return replicaSetHealth(obj)
		}
	case "":
		switch gk.Kind {
		case "Pod":
			return podHealth(obj)
		case "PersistentVolumeClaim":
			return pvcHealth(obj)
		case "Service":
			return serviceHealth(obj)
		}
	case "batch":
		switch gk.Kind {
		case "Job":
			return jobHealth(obj)
		case "CronJob":
			return cronJobHealth(obj)
		}
	}

	// Kinds without a checker are assumed healthy once they exist
	return v1alpha1.HealthStatus{Status: v1alpha1.HealthStatusHealthy}
}

func healthy() v1alpha1.HealthStatus {
	return v1alpha1.HealthStatus{Status: v1alpha1.HealthStatusHealthy}
}

func progressing(format string, args ...interface{}) v1alpha1.HealthStatus {
	return v1alpha1.HealthStatus{
		Status:  v1alpha1.HealthStatusProgressing,
		Message: fmt.Sprintf(format, args...),
	}
}

func degraded(format string, args ...interface{}) v1alpha1.HealthStatus {
	return v1alpha1.HealthStatus{
		Status:  v1alpha1.HealthStatusDegraded,
		Message: fmt.Sprintf(format, args...),
	}
}

func suspended(message string) v1alpha1.HealthStatus {
	return v1alpha1.HealthStatus{
		Status:  v1alpha1.HealthStatusSuspended,
		Message: message,
	}
}

func unknown(format string, args ...interface{}) v1alpha1.HealthStatus {
	return v1alpha1.HealthStatus{
		Status:  v1alpha1.HealthStatusUnknown,
		Message: fmt.Sprintf(format, args...),
	}
}

func deploymentHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var dep appsv1.Deployment
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &dep); err != nil {
		return unknown("failed to read Deployment: %s", err)
	}

	if dep.Spec.Paused {
		return suspended("deployment is paused")
	}
	for _, cond := range dep.Status.Conditions {
		if cond.Type == appsv1.DeploymentProgressing && cond.Reason == "ProgressDeadlineExceeded" {
			return degraded("deployment %q exceeded its progress deadline", dep.Name)
		}
	}
	if dep.Status.ObservedGeneration < dep.Generation {
		return progressing("waiting for rollout to be observed")
	}

	replicas := int32(1)
	if dep.Spec.Replicas != nil {
		replicas = *dep.Spec.Replicas
	}
	if dep.Status.UpdatedReplicas < replicas {
		return progressing("%d of %d replicas updated", dep.Status.UpdatedReplicas, replicas)
	}
	if dep.Status.Replicas > dep.Status.UpdatedReplicas {
		return progressing("%d old replicas pending termination", dep.Status.Replicas-dep.Status.UpdatedReplicas)
	}
	if dep.Status.AvailableReplicas < dep.Status.UpdatedReplicas {
		return progressing("%d of %d updated replicas available", dep.Status.AvailableReplicas, dep.Status.UpdatedReplicas)
	}

	return healthy()
}

func statefulSetHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var sts appsv1.StatefulSet
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &sts); err != nil {
		return unknown("failed to read StatefulSet: %s", err)
	}

	if sts.Status.ObservedGeneration < sts.Generation {
		return progressing("waiting for rollout to be observed")
	}

	replicas := int32(1)
	if sts.Spec.Replicas != nil {
		replicas = *sts.Spec.Replicas
	}
	if sts.Status.ReadyReplicas < replicas {
		return progressing("%d of %d replicas ready", sts.Status.ReadyReplicas, replicas)
	}
	if sts.Status.UpdateRevision != "" && sts.Status.CurrentRevision != sts.Status.UpdateRevision {
		return progressing("waiting for rollout of revision %s", sts.Status.UpdateRevision)
	}

	return healthy()
}

func daemonSetHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var ds appsv1.DaemonSet
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &ds); err != nil {
		return unknown("failed to read DaemonSet: %s", err)
	}

	if ds.Status.ObservedGeneration < ds.Generation {
		return progressing("waiting for rollout to be observed")
	}
	if ds.Status.UpdatedNumberScheduled < ds.Status.DesiredNumberScheduled {
		return progressing("%d of %d pods updated", ds.Status.UpdatedNumberScheduled, ds.Status.DesiredNumberScheduled)
	}
	if ds.Status.NumberAvailable < ds.Status.DesiredNumberScheduled {
		return progressing("%d of %d pods available", ds.Status.NumberAvailable, ds.Status.DesiredNumberScheduled)
	}

	return healthy()
}

func replicaSetHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var rs appsv1.ReplicaSet
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &rs); err != nil {
		return unknown("failed to read ReplicaSet: %s", err)
	}

	for _, cond := range rs.Status.Conditions {
		if cond.Type == appsv1.ReplicaSetReplicaFailure && cond.Status == corev1.ConditionTrue {
			return degraded("replica failure: %s", cond.Message)
		}
	}

	replicas := int32(1)
	if rs.Spec.Replicas != nil {
		replicas = *rs.Spec.Replicas
	}
	if rs.Status.AvailableReplicas < replicas {
		return progressing("%d of %d replicas available", rs.Status.AvailableReplicas, replicas)
	}

	return healthy()
}

func podHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var pod corev1.Pod
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &pod); err != nil {
		return unknown("failed to read Pod: %s", err)
	}

	// Waiting containers stuck in a crash loop degrade the pod even while
	// its phase still reads Running.
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason == "CrashLoopBackOff" {
			return degraded("container %q is in CrashLoopBackOff", cs.Name)
		}
	}

	switch pod.Status.Phase {
	case corev1.PodSucceeded:
		return healthy()
	case corev1.PodRunning:
		for _, cond := range pod.Status.Conditions {
			if cond.Type == corev1.PodReady && cond.Status == corev1.ConditionTrue {
				return healthy()
			}
		}
		return progressing("pod is running but not ready")
	case corev1.PodPending:
		return progressing("pod is pending")
	case corev1.PodFailed:
		return degraded("pod failed: %s", pod.Status.Message)
	default:
		return unknown("pod phase %q", pod.Status.Phase)
	}
}

func jobHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var job batchv1.Job
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &job); err != nil {
		return unknown("failed to read Job: %s", err)
	}

	for _, cond := range job.Status.Conditions {
		if cond.Type == batchv1.JobFailed && cond.Status == corev1.ConditionTrue {
			return degraded("job failed: %s", cond.Message)
		}
		if cond.Type == batchv1.JobComplete && cond.Status == corev1.ConditionTrue {
			return healthy()
		}
	}
	if job.Status.Active > 0 {
		return progressing("job has %d active pods", job.Status.Active)
	}

	return progressing("job has not completed")
}

func cronJobHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var cj batchv1.CronJob
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &cj); err != nil {
		return unknown("failed to read CronJob: %s", err)
	}

	if cj.Spec.Suspend != nil && *cj.Spec.Suspend {
		return suspended("cronjob is suspended")
	}

	return healthy()
}

func pvcHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var pvc corev1.PersistentVolumeClaim
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &pvc); err != nil {
		return unknown("failed to read PersistentVolumeClaim: %s", err)
	}

	switch pvc.Status.Phase {
	case corev1.ClaimBound:
		return healthy()
	case corev1.ClaimPending:
		return progressing("claim is pending")
	case corev1.ClaimLost:
		return degraded("claim lost its volume")
	default:
		return unknown("claim phase %q", pvc.Status.Phase)
	}
}

func serviceHealth(obj *unstructured.Unstructured) v1alpha1.HealthStatus {
	var svc corev1.Service
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, &svc); err != nil {
		return unknown("failed to read Service: %s", err)
	}

	if svc.Spec.Type == corev1.ServiceTypeLoadBalancer && len(svc.Status.LoadBalancer.Ingress) == 0 {
		return progressing("load balancer is being provisioned")
	}

	return healthy()
}
