package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
)

var (
	reconcileTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coxswain_app_reconcile_total",
			Help: "Total number of reconciliation passes by outcome",
		},
		[]string{"result"},
	)

	syncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coxswain_sync_total",
			Help: "Total number of finished sync operations by terminal phase",
		},
		[]string{"result"},
	)

	syncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coxswain_sync_duration_seconds",
			Help:    "Wall time of finished sync operations in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	gitFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coxswain_git_fetch_total",
			Help: "Total number of desired-state fetches by outcome",
		},
		[]string{"result"},
	)

	resourceApplyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coxswain_resource_apply_total",
			Help: "Total number of per-resource sync results by result code",
		},
		[]string{"result"},
	)

	appSyncStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coxswain_app_sync_status",
			Help: "Current sync status per application, 1 on the active status",
		},
		[]string{"name", "status"},
	)

	appHealthStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coxswain_app_health_status",
			Help: "Current health status per application, 1 on the active status",
		},
		[]string{"name", "status"},
	)
)

const (
	ResultSucceeded = "succeeded"
	ResultFailed    = "failed"
)

var syncStatusValues = []v1alpha1.SyncStatusCode{
	v1alpha1.SyncStatusCodeSynced,
	v1alpha1.SyncStatusCodeOutOfSync,
	v1alpha1.SyncStatusCodeUnknown,
}

var healthStatusValues = []v1alpha1.HealthStatusCode{
	v1alpha1.HealthStatusHealthy,
	v1alpha1.HealthStatusSuspended,
	v1alpha1.HealthStatusProgressing,
	v1alpha1.HealthStatusMissing,
	v1alpha1.HealthStatusDegraded,
	v1alpha1.HealthStatusUnknown,
}

func ObserveReconcile(result string) {
	reconcileTotal.WithLabelValues(result).Inc()
}

func ObserveSync(phase v1alpha1.OperationPhase, seconds float64) {
	syncTotal.WithLabelValues(strings.ToLower(string(phase))).Inc()
	syncDuration.Observe(seconds)
}

func ObserveGitFetch(err error) {
	result := ResultSucceeded
	if err != nil {
		result = ResultFailed
	}
	gitFetchTotal.WithLabelValues(result).Inc()
}

func ObserveResourceResults(results []*v1alpha1.ResourceResult) {
	for _, r := range results {
		resourceApplyTotal.WithLabelValues(strings.ToLower(string(r.Status))).Inc()
	}
}

// SetAppStatus pins the status gauges for one application: exactly one sync
// status and one health status series carry 1, the rest drop to 0.
func SetAppStatus(name string, sync v1alpha1.SyncStatusCode, health v1alpha1.HealthStatusCode) {
	for _, s := range syncStatusValues {
		v := 0.0
		if s == sync {
			v = 1
		}
		appSyncStatus.WithLabelValues(name, string(s)).Set(v)
	}
	for _, h := range healthStatusValues {
		v := 0.0
		if h == health {
			v = 1
		}
		appHealthStatus.WithLabelValues(name, string(h)).Set(v)
	}
}

// ForgetApp drops the per-application gauge series after a deletion so
// stale names do not linger on the endpoint.
func ForgetApp(name string) {
	appSyncStatus.DeletePartialMatch(prometheus.Labels{"name": name})
	appHealthStatus.DeletePartialMatch(prometheus.Labels{"name": name})
}
