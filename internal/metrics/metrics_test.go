package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
)

func TestObserveSync(t *testing.T) {
	before := testutil.ToFloat64(syncTotal.WithLabelValues("succeeded"))

	ObserveSync(v1alpha1.OperationSucceeded, 12.5)

	after := testutil.ToFloat64(syncTotal.WithLabelValues("succeeded"))
	assert.Equal(t, 1.0, after-before)
}

func TestObserveGitFetch(t *testing.T) {
	okBefore := testutil.ToFloat64(gitFetchTotal.WithLabelValues(ResultSucceeded))
	failBefore := testutil.ToFloat64(gitFetchTotal.WithLabelValues(ResultFailed))

	ObserveGitFetch(nil)
	ObserveGitFetch(assert.AnError)

	assert.Equal(t, 1.0, testutil.ToFloat64(gitFetchTotal.WithLabelValues(ResultSucceeded))-okBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(gitFetchTotal.WithLabelValues(ResultFailed))-failBefore)
}

func TestObserveResourceResults(t *testing.T) {
	syncedBefore := testutil.ToFloat64(resourceApplyTotal.WithLabelValues("synced"))
	prunedBefore := testutil.ToFloat64(resourceApplyTotal.WithLabelValues("pruned"))

	ObserveResourceResults([]*v1alpha1.ResourceResult{
		{Status: v1alpha1.ResultCodeSynced},
		{Status: v1alpha1.ResultCodeSynced},
		{Status: v1alpha1.ResultCodePruned},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(resourceApplyTotal.WithLabelValues("synced"))-syncedBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(resourceApplyTotal.WithLabelValues("pruned"))-prunedBefore)
}

func TestSetAppStatus(t *testing.T) {
	SetAppStatus("demo", v1alpha1.SyncStatusCodeOutOfSync, v1alpha1.HealthStatusProgressing)

	assert.Equal(t, 1.0, testutil.ToFloat64(appSyncStatus.WithLabelValues("demo", "OutOfSync")))
	assert.Equal(t, 0.0, testutil.ToFloat64(appSyncStatus.WithLabelValues("demo", "Synced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(appHealthStatus.WithLabelValues("demo", "Progressing")))

	// Moving status flips the active series
	SetAppStatus("demo", v1alpha1.SyncStatusCodeSynced, v1alpha1.HealthStatusHealthy)

	assert.Equal(t, 0.0, testutil.ToFloat64(appSyncStatus.WithLabelValues("demo", "OutOfSync")))
	assert.Equal(t, 1.0, testutil.ToFloat64(appSyncStatus.WithLabelValues("demo", "Synced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(appHealthStatus.WithLabelValues("demo", "Healthy")))

	ForgetApp("demo")

	assert.Equal(t, 0, testutil.CollectAndCount(appSyncStatus))
	assert.Equal(t, 0, testutil.CollectAndCount(appHealthStatus))
}

func TestServerEndpoints(t *testing.T) {
	srv := NewServer(":0")

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok\n", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		ObserveReconcile(ResultSucceeded)

		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "coxswain_app_reconcile_total")
	})
}
