package reconcile

import (
	"strings"

	"golang.org/x/exp/slices"
	"k8s.io/apimachinery/pkg/api/equality"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/coxswain-io/coxswain/internal/health"
	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
)

// ResourceKey identifies a resource independently of its API version.
type ResourceKey struct {
	Group     string
	Kind      string
	Namespace string
	Name      string
}

func (k ResourceKey) String() string {
	return k.Group + "/" + k.Kind + "/" + k.Namespace + "/" + k.Name
}

// ResourceState pairs one declared resource with its live counterpart.
type ResourceState struct {
	Key     ResourceKey
	Desired *unstructured.Unstructured
	Live    *unstructured.Unstructured
	// InSync is true when every field declared in the source is present
	// and equal in the live object.
	InSync bool
	// RequiresPruning marks live resources with no declared counterpart.
	RequiresPruning bool
}

// ComparisonResult is the outcome of one desired-vs-live comparison. It is
// recomputed from scratch every pass; previously recorded status never
// feeds back into it.
type ComparisonResult struct {
	SyncStatus v1alpha1.SyncStatusCode
	Resources  []ResourceState
}

// clusterScopedKinds is the set of kinds this engine treats as
// cluster-scoped when keying resources that carry no namespace.
var clusterScopedKinds = map[string]bool{
	"Namespace":                true,
	"CustomResourceDefinition": true,
	"ClusterRole":              true,
	"ClusterRoleBinding":       true,
	"StorageClass":             true,
	"PriorityClass":            true,
	"IngressClass":             true,
	"PersistentVolume":         true,
}

func keyFor(obj *unstructured.Unstructured, destNamespace string) ResourceKey {
	gvk := obj.GroupVersionKind()
	ns := obj.GetNamespace()
	if ns == "" && !clusterScopedKinds[gvk.Kind] {
		// Mirror the applier's namespace defaulting so a declared object and
		// the live copy it produced always land on the same key.
		ns = destNamespace
		if ns == "" {
			ns = metav1.NamespaceDefault
		}
	}
	return ResourceKey{Group: gvk.Group, Kind: gvk.Kind, Namespace: ns, Name: obj.GetName()}
}

// Compare matches declared resources against live ones and classifies each
// pair. Declared objects without a namespace are keyed into destNamespace
// unless their kind is cluster-scoped.
func Compare(desired, live []*unstructured.Unstructured, destNamespace string) *ComparisonResult {
	liveByKey := make(map[ResourceKey]*unstructured.Unstructured, len(live))
	for _, l := range live {
		liveByKey[keyFor(l, destNamespace)] = l
	}

	result := &ComparisonResult{SyncStatus: v1alpha1.SyncStatusCodeSynced}

	seen := make(map[ResourceKey]bool, len(desired))
	for _, d := range desired {
		key := keyFor(d, destNamespace)
		seen[key] = true

		state := ResourceState{Key: key, Desired: d}
		if l, ok := liveByKey[key]; ok {
			state.Live = l
			state.InSync = subsetEqual(normalize(d).Object, normalize(l).Object)
		}
		if !state.InSync {
			result.SyncStatus = v1alpha1.SyncStatusCodeOutOfSync
		}
		result.Resources = append(result.Resources, state)
	}

	// Live resources with no declared counterpart are prune candidates
	for _, l := range live {
		key := keyFor(l, destNamespace)
		if seen[key] {
			continue
		}
		result.Resources = append(result.Resources, ResourceState{
			Key:             key,
			Live:            l,
			RequiresPruning: true,
		})
		result.SyncStatus = v1alpha1.SyncStatusCodeOutOfSync
	}

	slices.SortFunc(result.Resources, func(a, b ResourceState) int {
		return strings.Compare(a.Key.String(), b.Key.String())
	})

	return result
}

// ResourceStatuses flattens the comparison into the per-resource records
// kept on the Application status, with health read from the live objects.
func (r *ComparisonResult) ResourceStatuses() []v1alpha1.ResourceStatus {
	out := make([]v1alpha1.ResourceStatus, 0, len(r.Resources))
	for _, state := range r.Resources {
		rs := v1alpha1.ResourceStatus{
			Group:           state.Key.Group,
			Kind:            state.Key.Kind,
			Namespace:       state.Key.Namespace,
			Name:            state.Key.Name,
			Status:          v1alpha1.SyncStatusCodeSynced,
			RequiresPruning: state.RequiresPruning,
		}
		if state.Desired != nil {
			rs.Version = state.Desired.GroupVersionKind().Version
		} else if state.Live != nil {
			rs.Version = state.Live.GroupVersionKind().Version
		}
		if !state.InSync || state.RequiresPruning {
			rs.Status = v1alpha1.SyncStatusCodeOutOfSync
		}
		h := health.ForResource(state.Live)
		rs.Health = &h
		out = append(out, rs)
	}
	return out
}

// AggregateHealth folds live health across the comparison, counting
// declared resources without a live object as Missing.
func (r *ComparisonResult) AggregateHealth() v1alpha1.HealthStatus {
	statuses := make([]v1alpha1.HealthStatus, 0, len(r.Resources))
	for _, state := range r.Resources {
		if state.RequiresPruning {
			// Orphaned resources do not gate application health
			continue
		}
		statuses = append(statuses, health.ForResource(state.Live))
	}
	return health.Aggregate(statuses)
}

// droppedAnnotations are written by the machinery, not the operator.
var droppedAnnotations = []string{
	"kubectl.kubernetes.io/last-applied-configuration",
	"deployment.kubernetes.io/revision",
}

// normalize strips server-populated fields so the comparison only sees
// operator intent.
func normalize(obj *unstructured.Unstructured) *unstructured.Unstructured {
	o := obj.DeepCopy()

	unstructured.RemoveNestedField(o.Object, "status")
	for _, f := range []string{
		"creationTimestamp", "resourceVersion", "uid", "generation",
		"managedFields", "selfLink", "ownerReferences", "finalizers",
	} {
		unstructured.RemoveNestedField(o.Object, "metadata", f)
	}

	annotations := o.GetAnnotations()
	for _, a := range droppedAnnotations {
		delete(annotations, a)
	}
	if len(annotations) == 0 {
		unstructured.RemoveNestedField(o.Object, "metadata", "annotations")
	} else {
		o.SetAnnotations(annotations)
	}
	if len(o.GetLabels()) == 0 {
		unstructured.RemoveNestedField(o.Object, "metadata", "labels")
	}

	return o
}

// subsetEqual reports whether every field in want exists with an equal
// value in have. Fields only present in have, typically server defaults,
// are ignored. A field removed from the source is therefore not seen as
// drift; it disappears when the next sync rewrites the object.
func subsetEqual(want, have map[string]interface{}) bool {
	for k, wv := range want {
		hv, ok := have[k]
		if !ok {
			return false
		}
		if !valueEqual(wv, hv) {
			return false
		}
	}
	return true
}

func valueEqual(want, have interface{}) bool {
	switch w := want.(type) {
	case map[string]interface{}:
		h, ok := have.(map[string]interface{})
		if !ok {
			return false
		}
		return subsetEqual(w, h)
	case []interface{}:
		h, ok := have.([]interface{})
		if !ok || len(h) != len(w) {
			return false
		}
		for i := range w {
			if !valueEqual(w[i], h[i]) {
				return false
			}
		}
		return true
	default:
		return equality.Semantic.DeepEqual(want, have)
	}
}
