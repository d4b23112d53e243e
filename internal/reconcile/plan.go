package reconcile

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// kindPriority orders apply bands so that infrastructure a workload depends
// on lands first. Kinds not listed here, custom resources included, go last.
var kindPriority = map[string]int{
	"Namespace":                0,
	"CustomResourceDefinition": 1,
	"StorageClass":             2,
	"PriorityClass":            2,
	"IngressClass":             2,
	"ServiceAccount":           3,
	"Role":                     3,
	"ClusterRole":              3,
	"RoleBinding":              4,
	"ClusterRoleBinding":       4,
	"ConfigMap":                5,
	"Secret":                   5,
	"PersistentVolume":         5,
	"PersistentVolumeClaim":    5,
	"LimitRange":               5,
	"ResourceQuota":            5,
	"NetworkPolicy":            5,
	"Service":                  6,
	"Deployment":               7,
	"StatefulSet":              7,
	"DaemonSet":                7,
	"ReplicaSet":               7,
	"Pod":                      7,
	"Job":                      7,
	"CronJob":                  7,
}

const defaultPriority = 8

func priorityOf(kind string) int {
	if p, ok := kindPriority[kind]; ok {
		return p
	}
	return defaultPriority
}

// SyncTask is one resource write within a plan.
type SyncTask struct {
	State ResourceState
	// Prune is set when the task deletes an orphaned live resource. A
	// prune candidate with Prune false is reported but left in place.
	Prune bool
}

// Plan is the ordered work for one sync pass. Bands run in order and tasks
// within a band may run concurrently. Prunes run strictly after every band
// succeeded, in reverse priority order so dependents go before their
// dependencies.
type Plan struct {
	Bands  [][]SyncTask
	Prunes []SyncTask
}

func (p *Plan) Empty() bool {
	return len(p.Bands) == 0 && len(p.Prunes) == 0
}

// BuildPlan turns a comparison into executable work. Resources already in
// sync are skipped. prune gates whether orphaned live resources will be
// deleted; they stay in the plan either way so the outcome is recorded.
func BuildPlan(result *ComparisonResult, prune bool) *Plan {
	byPriority := make(map[int][]SyncTask)
	var prunes []SyncTask

	for _, state := range result.Resources {
		switch {
		case state.RequiresPruning:
			prunes = append(prunes, SyncTask{State: state, Prune: prune})
		case !state.InSync:
			p := priorityOf(state.Key.Kind)
			byPriority[p] = append(byPriority[p], SyncTask{State: state})
		}
	}

	plan := &Plan{}

	priorities := maps.Keys(byPriority)
	slices.Sort(priorities)
	for _, p := range priorities {
		band := byPriority[p]
		slices.SortFunc(band, func(a, b SyncTask) int {
			return strings.Compare(a.State.Key.String(), b.State.Key.String())
		})
		plan.Bands = append(plan.Bands, band)
	}

	slices.SortFunc(prunes, func(a, b SyncTask) int {
		if d := priorityOf(b.State.Key.Kind) - priorityOf(a.State.Key.Kind); d != 0 {
			return d
		}
		return strings.Compare(a.State.Key.String(), b.State.Key.String())
	})
	plan.Prunes = prunes

	return plan
}
