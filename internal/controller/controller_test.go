package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	k8syaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/coxswain-io/coxswain/common"
	"github.com/coxswain-io/coxswain/internal/reconcile"
	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
	appclientset "github.com/coxswain-io/coxswain/pkg/clientset/versioned/fake"
	appinformers "github.com/coxswain-io/coxswain/pkg/informers/externalversions"
	gitmock "github.com/coxswain-io/coxswain/utils/git/mock"
	kubemock "github.com/coxswain-io/coxswain/utils/kube/mock"
)

func newFakeApp(appString string) *v1alpha1.Application {
	var app v1alpha1.Application
	dec := k8syaml.NewYAMLOrJSONDecoder(bytes.NewReader([]byte(appString)), 1000)
	if err := dec.Decode(&app); err != nil {
		return nil
	}

	return &app
}

type fixture struct {
	controller *Controller
	gitClient  *gitmock.MockClient
	kubeClient *kubemock.MockClient
}

func newFakeController(t *testing.T, apps ...runtime.Object) *fixture {
	ctrl := gomock.NewController(t)
	gitClient := gitmock.NewMockClient(ctrl)
	kubeClient := kubemock.NewMockClient(ctrl)

	kubeClientSet := fake.NewSimpleClientset()
	appClientSet := appclientset.NewSimpleClientset(apps...)
	appInformerFactory := appinformers.NewSharedInformerFactory(appClientSet, time.Second*30)

	c := NewController(
		kubeClientSet,
		appClientSet,
		appInformerFactory.Coxswain().V1alpha1().Applications(),
		gitClient,
		kubeClient,
		Options{
			RepoRoot:     t.TempDir(),
			SyncTimeout:  10 * time.Second,
			ApplyTimeout: time.Second,
		},
	)

	return &fixture{
		controller: c,
		gitClient:  gitClient,
		kubeClient: kubeClient,
	}
}

func fakeManifest(name, value string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "v1",
		"kind":       "ConfigMap",
		"metadata": map[string]interface{}{
			"name":      name,
			"namespace": "default",
		},
		"data": map[string]interface{}{"key": value},
	}}
}

func appLabel(name string) map[string]string {
	return map[string]string{common.LabelKeyAppInstance: name}
}

const automatedApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: demo
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/demo.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
  syncPolicy:
    automated: {}
`

func Test_ReconcileApp_InitialAutomatedSync(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(automatedApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("demo")).
		Return(nil)
	// Empty cluster before the sync, the applied object after it
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return(nil, nil)
	f.kubeClient.EXPECT().
		ApplyResource(gomock.Any(), gomock.Any(), "default", gomock.Any()).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResource(gomock.Any(), gomock.Any(), "default").
		Return(fakeManifest("app-config", "v1"), nil).
		AnyTimes()
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return([]*unstructured.Unstructured{fakeManifest("app-config", "v1")}, nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.SyncStatusCodeSynced, queryApp.Status.Sync.Status)
	assert.Equal(t, "abc123", queryApp.Status.Sync.Revision)
	assert.Equal(t, v1alpha1.HealthStatusHealthy, queryApp.Status.Health.Status)
	assert.Empty(t, queryApp.Status.Conditions)
	assert.NotNil(t, queryApp.Status.ReconciledAt)

	require.NotNil(t, queryApp.Status.OperationState)
	assert.Equal(t, v1alpha1.OperationSucceeded, queryApp.Status.OperationState.Phase)
	assert.True(t, queryApp.Status.OperationState.Operation.InitiatedBy.Automated)

	require.Len(t, queryApp.Status.History, 1)
	assert.Equal(t, "abc123", queryApp.Status.History[0].Revision)
}

const driftedApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: demo
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/demo.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
  syncPolicy:
    automated: {}
status:
  sync:
    status: Synced
    revision: abc123
`

func Test_ReconcileApp_DriftWithoutSelfHeal(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(driftedApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")
	mutated := fakeManifest("app-config", "hand-edited")

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("demo")).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return([]*unstructured.Unstructured{mutated}, nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, queryApp.Status.Sync.Status)
	cond := queryApp.Status.GetCondition(v1alpha1.ApplicationConditionDriftDetected)
	require.NotNil(t, cond)
	assert.Contains(t, cond.Message, "self heal is disabled")
	assert.Nil(t, queryApp.Status.OperationState)
}

const selfHealApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: demo
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/demo.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
  syncPolicy:
    automated:
      selfHeal: true
status:
  sync:
    status: Synced
    revision: abc123
`

func Test_ReconcileApp_SelfHeal(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(selfHealApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")
	mutated := fakeManifest("app-config", "hand-edited")

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("demo")).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return([]*unstructured.Unstructured{mutated}, nil)
	f.kubeClient.EXPECT().
		ApplyResource(gomock.Any(), gomock.Any(), "default", gomock.Any()).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResource(gomock.Any(), gomock.Any(), "default").
		Return(fakeManifest("app-config", "v1"), nil).
		AnyTimes()
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return([]*unstructured.Unstructured{fakeManifest("app-config", "v1")}, nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.SyncStatusCodeSynced, queryApp.Status.Sync.Status)
	require.NotNil(t, queryApp.Status.OperationState)
	assert.Equal(t, v1alpha1.OperationSucceeded, queryApp.Status.OperationState.Phase)
	assert.Nil(t, queryApp.Status.GetCondition(v1alpha1.ApplicationConditionDriftDetected))
}

func Test_ReconcileApp_FailedSyncDegradesApp(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(automatedApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("demo")).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return(nil, nil)
	// Permanent rejection, so exactly one attempt
	f.kubeClient.EXPECT().
		ApplyResource(gomock.Any(), gomock.Any(), "default", gomock.Any()).
		Return(apierrors.NewBadRequest("field is immutable"))
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return(nil, nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, queryApp.Status.Sync.Status)
	assert.Equal(t, v1alpha1.HealthStatusDegraded, queryApp.Status.Health.Status)
	require.NotNil(t, queryApp.Status.OperationState)
	assert.Equal(t, v1alpha1.OperationFailed, queryApp.Status.OperationState.Phase)
	require.NotNil(t, queryApp.Status.GetCondition(v1alpha1.ApplicationConditionSyncError))
	assert.Empty(t, queryApp.Status.History)
}

const manualOpApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: manual
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/manual.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
operation:
  sync:
    revision: v1.2.3
    prune: true
`

func Test_ReconcileApp_ManualOperation(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(manualOpApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")
	orphan := fakeManifest("stale-config", "old")

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	// The operation revision wins over spec.source.targetRevision
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "v1.2.3").
		Return("def456", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("manual")).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("manual")).
		Return([]*unstructured.Unstructured{orphan}, nil)
	f.kubeClient.EXPECT().
		ApplyResource(gomock.Any(), gomock.Any(), "default", gomock.Any()).
		Return(nil)
	f.kubeClient.EXPECT().
		DeleteResource(gomock.Any(), gomock.Any(), "default").
		Return(nil)
	f.kubeClient.EXPECT().
		GetResource(gomock.Any(), gomock.Any(), "default").
		Return(fakeManifest("app-config", "v1"), nil).
		AnyTimes()
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("manual")).
		Return([]*unstructured.Unstructured{fakeManifest("app-config", "v1")}, nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "manual", metav1.GetOptions{})
	require.NoError(t, err)

	// The request was consumed
	assert.Nil(t, queryApp.Operation)

	require.NotNil(t, queryApp.Status.OperationState)
	assert.Equal(t, v1alpha1.OperationSucceeded, queryApp.Status.OperationState.Phase)
	assert.False(t, queryApp.Status.OperationState.Operation.InitiatedBy.Automated)
	require.NotNil(t, queryApp.Status.OperationState.SyncResult)
	assert.Equal(t, "def456", queryApp.Status.OperationState.SyncResult.Revision)
	assert.Equal(t, v1alpha1.SyncStatusCodeSynced, queryApp.Status.Sync.Status)
	require.Len(t, queryApp.Status.History, 1)
	assert.Equal(t, "def456", queryApp.Status.History[0].Revision)
}

const dryRunApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: rehearsal
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/rehearsal.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
operation:
  sync:
    dryRun: true
`

func Test_ReconcileApp_DryRun(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(dryRunApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("rehearsal")).
		Return(nil)
	// Only one live listing: a dry run changes nothing worth re-observing
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("rehearsal")).
		Return(nil, nil)
	f.kubeClient.EXPECT().
		ApplyResource(gomock.Any(), gomock.Any(), "default", gomock.Any()).
		Return(nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "rehearsal", metav1.GetOptions{})
	require.NoError(t, err)

	require.NotNil(t, queryApp.Status.OperationState)
	assert.Equal(t, v1alpha1.OperationSucceeded, queryApp.Status.OperationState.Phase)
	// Nothing was persisted to the cluster
	assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, queryApp.Status.Sync.Status)
	assert.Empty(t, queryApp.Status.History)
}

const fetchErrorApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: demo
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/demo.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
status:
  sync:
    status: Synced
    revision: abc123
`

func Test_ReconcileApp_FetchErrorKeepsStatus(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(fetchErrorApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(assert.AnError)

	err := f.controller.reconcileApp(ctx, app)
	require.Error(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	// The last known comparison survives the outage
	assert.Equal(t, v1alpha1.SyncStatusCodeSynced, queryApp.Status.Sync.Status)
	assert.Equal(t, "abc123", queryApp.Status.Sync.Revision)
	cond := queryApp.Status.GetCondition(v1alpha1.ApplicationConditionComparisonError)
	require.NotNil(t, cond)
	assert.Contains(t, cond.Message, "error fetching repository")
}

func Test_ReconcileApp_ValidationError(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(fetchErrorApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	f.gitClient.EXPECT().
		CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
		Return(nil)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return(nil, assert.AnError)

	// Broken manifests do not requeue aggressively
	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.SyncStatusCodeUnknown, queryApp.Status.Sync.Status)
	assert.Equal(t, v1alpha1.HealthStatusUnknown, queryApp.Status.Health.Status)
	require.NotNil(t, queryApp.Status.GetCondition(v1alpha1.ApplicationConditionComparisonError))
}

const refreshApp = `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: demo
  namespace: default
  annotations:
    coxswain.io/refresh: hard
spec:
  source:
    repoURL: https://git.example.com/team/demo.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
`

func Test_ReconcileApp_HardRefresh(t *testing.T) {
	ctx := context.Background()
	app := newFakeApp(refreshApp)
	require.NotNil(t, app)
	f := newFakeController(t, app)

	desired := fakeManifest("app-config", "v1")

	gomock.InOrder(
		// A hard refresh discards the cache before fetching
		f.gitClient.EXPECT().CleanUp(gomock.Any()).Return(nil),
		f.gitClient.EXPECT().
			CloneOrFetch(gomock.Any(), app.Spec.Source.RepoURL, gomock.Any()).
			Return(nil),
	)
	f.gitClient.EXPECT().
		Checkout(gomock.Any(), "main").
		Return("abc123", nil)
	f.kubeClient.EXPECT().
		LoadManifests(gomock.Any()).
		Return([]*unstructured.Unstructured{desired}, nil)
	f.kubeClient.EXPECT().
		SetLabelsForResources(gomock.Any(), appLabel("demo")).
		Return(nil)
	f.kubeClient.EXPECT().
		GetResourcesWithLabel(gomock.Any(), appLabel("demo")).
		Return([]*unstructured.Unstructured{fakeManifest("app-config", "v1")}, nil)

	err := f.controller.reconcileApp(ctx, app)
	require.NoError(t, err)

	queryApp, err := f.controller.appClientSet.CoxswainV1alpha1().Applications("default").Get(ctx, "demo", metav1.GetOptions{})
	require.NoError(t, err)

	_, hasAnnotation := queryApp.Annotations[common.AnnotationKeyRefresh]
	assert.False(t, hasAnnotation, "refresh annotation should be consumed")
	assert.Equal(t, v1alpha1.SyncStatusCodeSynced, queryApp.Status.Sync.Status)
}

var deleteResourcesTestCases = []struct {
	name        string
	app         string
	expectedErr string
}{
	{
		name: "Normal application",
		app: `
kind: Application
apiVersion: coxswain.io/v1alpha1
metadata:
  name: doomed
  namespace: default
spec:
  source:
    repoURL: https://git.example.com/team/doomed.git
    targetRevision: main
    path: deploy
  destination:
    namespace: default
`,
	},
	{
		name:        "Application without a name",
		app:         `{"kind":"Application","apiVersion":"coxswain.io/v1alpha1"}`,
		expectedErr: "application name is empty",
	},
}

func Test_DeleteResources(t *testing.T) {
	for _, tt := range deleteResourcesTestCases {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			app := newFakeApp(tt.app)
			require.NotNil(t, app)
			f := newFakeController(t, app)

			if tt.expectedErr == "" {
				live := fakeManifest("app-config", "v1")
				f.kubeClient.EXPECT().
					GetResourcesWithLabel(gomock.Any(), appLabel(app.Name)).
					Return([]*unstructured.Unstructured{live}, nil)
				f.kubeClient.EXPECT().
					DeleteResource(gomock.Any(), live, "default").
					Return(nil)
				f.gitClient.EXPECT().CleanUp(gomock.Any()).Return(nil)
			}

			err := f.controller.deleteResources(ctx, app)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_ShouldAutoSync(t *testing.T) {
	f := newFakeController(t)

	cases := []struct {
		name     string
		app      string
		status   v1alpha1.SyncStatusCode
		sha      string
		expected bool
	}{
		{
			name:     "synced app never auto-syncs",
			app:      automatedApp,
			status:   v1alpha1.SyncStatusCodeSynced,
			sha:      "abc123",
			expected: false,
		},
		{
			name:     "new revision triggers sync",
			app:      driftedApp,
			status:   v1alpha1.SyncStatusCodeOutOfSync,
			sha:      "def456",
			expected: true,
		},
		{
			name:     "same revision without self heal stays put",
			app:      driftedApp,
			status:   v1alpha1.SyncStatusCodeOutOfSync,
			sha:      "abc123",
			expected: false,
		},
		{
			name:     "same revision with self heal syncs",
			app:      selfHealApp,
			status:   v1alpha1.SyncStatusCodeOutOfSync,
			sha:      "abc123",
			expected: true,
		},
		{
			name:     "no automation never syncs",
			app:      fetchErrorApp,
			status:   v1alpha1.SyncStatusCodeOutOfSync,
			sha:      "def456",
			expected: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newFakeApp(tc.app)
			require.NotNil(t, app)

			result := &reconcile.ComparisonResult{SyncStatus: tc.status}
			assert.Equal(t, tc.expected, f.controller.shouldAutoSync(app, result, tc.sha))
		})
	}
}
