package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	typedcorev1 "k8s.io/client-go/kubernetes/typed/core/v1"
	"k8s.io/client-go/tools/cache"
	"k8s.io/client-go/tools/record"
	"k8s.io/client-go/util/retry"
	"k8s.io/client-go/util/workqueue"

	"github.com/coxswain-io/coxswain/common"
	"github.com/coxswain-io/coxswain/internal/apperrors"
	"github.com/coxswain-io/coxswain/internal/health"
	"github.com/coxswain-io/coxswain/internal/metrics"
	"github.com/coxswain-io/coxswain/internal/reconcile"
	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
	appclientset "github.com/coxswain-io/coxswain/pkg/clientset/versioned"
	"github.com/coxswain-io/coxswain/pkg/clientset/versioned/scheme"
	appinformers "github.com/coxswain-io/coxswain/pkg/informers/externalversions/application/v1alpha1"
	applisters "github.com/coxswain-io/coxswain/pkg/listers/application/v1alpha1"
	"github.com/coxswain-io/coxswain/utils/git"
	"github.com/coxswain-io/coxswain/utils/kube"
)

// Options tune controller timing. Zero values fall back to the defaults in
// the common package.
type Options struct {
	// RepoRoot is the directory repository caches live under.
	RepoRoot     string
	ResyncPeriod time.Duration
	SyncTimeout  time.Duration
	ApplyTimeout time.Duration
	HealthGrace  time.Duration
}

func (o Options) withDefaults() Options {
	if o.RepoRoot == "" {
		o.RepoRoot = os.TempDir()
	}
	if o.ResyncPeriod <= 0 {
		o.ResyncPeriod = common.DefaultAppResyncPeriod
	}
	if o.SyncTimeout <= 0 {
		o.SyncTimeout = common.DefaultSyncTimeout
	}
	if o.ApplyTimeout <= 0 {
		o.ApplyTimeout = common.DefaultApplyTimeout
	}
	if o.HealthGrace <= 0 {
		o.HealthGrace = common.DefaultHealthGracePeriod
	}
	return o
}

type Controller struct {
	clientSet kubernetes.Interface

	appClientSet appclientset.Interface

	appLister applisters.ApplicationLister

	// Notifies the controller when the cache is synced
	appCacheSync cache.InformerSynced

	// Watch events land here first; the worker decides between cleanup
	// on deletion and a refresh request.
	queue workqueue.RateLimitingInterface

	// appRefreshQueue drives the reconciliation passes, both event-driven
	// and on the periodic resync cadence.
	appRefreshQueue workqueue.RateLimitingInterface

	gitClient git.Client

	kubeClient kube.Client

	executor *reconcile.Executor

	eventRecorder record.EventRecorder

	opts Options
}

func NewController(
	clientSet kubernetes.Interface,
	appClientSet appclientset.Interface,
	informer appinformers.ApplicationInformer,
	gitClient git.Client,
	kubeClient kube.Client,
	opts Options,
) *Controller {
	log.Info("Creating event broadcaster")
	eventBroadcaster := record.NewBroadcaster()
	eventBroadcaster.StartLogging(log.Debugf)
	eventBroadcaster.StartRecordingToSink(&typedcorev1.EventSinkImpl{Interface: clientSet.CoreV1().Events("")})
	recorder := eventBroadcaster.NewRecorder(scheme.Scheme, corev1.EventSource{Component: common.ControllerName})

	c := &Controller{
		clientSet:    clientSet,
		appClientSet: appClientSet,
		appLister:    informer.Lister(),
		appCacheSync: informer.Informer().HasSynced,
		queue: workqueue.NewNamedRateLimitingQueue(
			workqueue.DefaultControllerRateLimiter(),
			"application",
		),
		appRefreshQueue: workqueue.NewNamedRateLimitingQueue(
			workqueue.DefaultControllerRateLimiter(),
			"application-refresh",
		),
		gitClient:     gitClient,
		kubeClient:    kubeClient,
		executor:      reconcile.NewExecutor(kubeClient),
		eventRecorder: recorder,
		opts:          opts.withDefaults(),
	}

	informer.Informer().AddEventHandler(
		cache.ResourceEventHandlerFuncs{
			AddFunc:    c.handleAdd,
			UpdateFunc: c.handleUpdate,
			DeleteFunc: c.handleDelete,
		},
	)

	return c
}

func (c *Controller) Run(numWorkers int, stopCh <-chan struct{}) error {
	log.Info("Starting controller")

	defer func() {
		log.Debug("Shutting down controller")
		c.queue.ShutDown()
		c.appRefreshQueue.ShutDown()
	}()

	// Wait for the caches to be synced before starting workers
	if !cache.WaitForCacheSync(stopCh, c.appCacheSync) {
		return fmt.Errorf("timed out waiting for caches to sync")
	}

	for i := 0; i < numWorkers; i++ {
		go wait.Until(c.worker, 1*time.Second, stopCh)
	}

	for i := 0; i < numWorkers; i++ {
		go wait.Until(c.applicationRefreshWorker, 1*time.Second, stopCh)
	}

	<-stopCh

	return nil
}

func (c *Controller) worker() {
	for c.processNextItem() {
	}
}

func (c *Controller) applicationRefreshWorker() {
	for c.processNextAppRefreshItem() {
	}
}

func (c *Controller) processNextItem() bool {
	ctx := context.Background()

	obj, shutdown := c.queue.Get()
	if shutdown {
		return false
	}

	// We wrap this block in a func so we can defer c.queue.Done.
	err := func(obj interface{}) error {
		defer c.queue.Done(obj)

		// Deleted objects may arrive wrapped in a tombstone
		key, err := cache.DeletionHandlingMetaNamespaceKeyFunc(obj)
		if err != nil {
			// Since we can't process the item, we stop processing it
			c.queue.Forget(obj)
			return fmt.Errorf("error getting key from item: %w", err)
		}

		ns, name, err := cache.SplitMetaNamespaceKey(key)
		if err != nil {
			c.queue.Forget(obj)
			return fmt.Errorf("error splitting key: %w", err)
		}

		// The informer event alone does not say whether the Application
		// still exists; the API server does.
		app, err := c.appClientSet.CoxswainV1alpha1().Applications(ns).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			if apierrors.IsNotFound(err) {
				deleted, derr := deletedApplication(obj)
				if derr != nil {
					c.queue.Forget(obj)
					return derr
				}
				if err := c.deleteResources(ctx, deleted); err != nil {
					c.queue.AddRateLimited(obj)
					return fmt.Errorf("error cleaning up resources: %w", err)
				}

				c.queue.Forget(obj)
				return nil
			}

			c.queue.AddRateLimited(obj)
			return fmt.Errorf("error getting application: %w", err)
		}

		c.requestAppRefresh(app.GetName(), app.GetNamespace())
		c.queue.Forget(obj)

		return nil
	}(obj)
	if err != nil {
		utilruntime.HandleError(err)
	}

	return true
}

func (c *Controller) processNextAppRefreshItem() bool {
	ctx := context.Background()

	appKey, shutdown := c.appRefreshQueue.Get()
	if shutdown {
		return false
	}

	log.Debugf("Processing application refresh %s", appKey.(string))

	// We wrap this block in a func so we can defer c.appRefreshQueue.Done.
	err := func(appKey string) error {
		defer c.appRefreshQueue.Done(appKey)

		ns, name, err := cache.SplitMetaNamespaceKey(appKey)
		if err != nil {
			c.appRefreshQueue.Forget(appKey)
			return fmt.Errorf("error splitting key: %w", err)
		}

		app, err := c.appClientSet.CoxswainV1alpha1().Applications(ns).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			// Deletion cleanup belongs to the watch queue
			if apierrors.IsNotFound(err) {
				c.appRefreshQueue.Forget(appKey)
				return nil
			}

			c.appRefreshQueue.AddRateLimited(appKey)
			return fmt.Errorf("error getting application: %w", err)
		}

		if err := c.reconcileApp(ctx, app); err != nil {
			metrics.ObserveReconcile(metrics.ResultFailed)
			c.appRefreshQueue.AddRateLimited(appKey)
			return fmt.Errorf("error reconciling application %s: %w", appKey, err)
		}

		metrics.ObserveReconcile(metrics.ResultSucceeded)
		c.appRefreshQueue.Forget(appKey)
		// Applications poll on a fixed cadence even without events
		c.appRefreshQueue.AddAfter(appKey, c.opts.ResyncPeriod)

		return nil
	}(appKey.(string))
	if err != nil {
		utilruntime.HandleError(err)
	}

	return true
}

// reconcileApp runs one full pass for an Application: fetch the desired
// revision, observe live state, compare, sync when warranted, observe
// again, and persist the outcome.
func (c *Controller) reconcileApp(ctx context.Context, app *v1alpha1.Application) error {
	logCtx := log.WithField("application", app.Name)

	refreshType, refreshRequested := app.RefreshRequested()
	if refreshRequested {
		// Consume the annotation first so a failing pass cannot wedge it
		if err := c.clearRefreshAnnotation(ctx, app); err != nil {
			return fmt.Errorf("error consuming refresh annotation: %w", err)
		}
		logCtx.WithField("type", string(refreshType)).Info("Refresh requested")

		if refreshType == v1alpha1.RefreshTypeHard {
			repoPath := git.RepoPath(c.opts.RepoRoot, app.Name, app.Spec.Source.RepoURL)
			if err := c.gitClient.CleanUp(repoPath); err != nil {
				logCtx.WithError(err).Warn("Error discarding repository cache")
			}
		}
	}

	opState, err := c.consumeOperation(ctx, app)
	if err != nil {
		return fmt.Errorf("error consuming sync operation: %w", err)
	}

	revision := app.Spec.Source.TargetRevision
	if opState != nil && opState.Operation.Sync.Revision != "" {
		revision = opState.Operation.Sync.Revision
	}

	sha, desired, err := c.fetchDesiredState(ctx, app, revision)
	if err != nil {
		return c.failComparison(ctx, app, opState, err)
	}

	label := map[string]string{common.LabelKeyAppInstance: app.Name}
	live, err := c.kubeClient.GetResourcesWithLabel(ctx, label)
	if err != nil {
		return c.failComparison(ctx, app, opState,
			apperrors.NewFetchError("error listing live resources", err))
	}

	result := reconcile.Compare(desired, live, app.Spec.Destination.Namespace)

	var execRes *reconcile.ExecuteResult
	switch {
	case opState != nil:
		execRes = c.runSync(ctx, app, result, opState, sha)
	case c.shouldAutoSync(app, result, sha):
		logCtx.WithField("revision", sha).Info("Automated sync triggered")
		opState = newAutomatedOperationState(app)
		execRes = c.runSync(ctx, app, result, opState, sha)
	}

	// A sync changed the cluster; observe again so the persisted status
	// reflects the world after the pass, not before it.
	if execRes != nil && !wasDryRun(opState) {
		live, err = c.kubeClient.GetResourcesWithLabel(ctx, label)
		if err != nil {
			return c.failComparison(ctx, app, opState,
				apperrors.NewFetchError("error listing live resources after sync", err))
		}
		result = reconcile.Compare(desired, live, app.Spec.Destination.Namespace)
	}

	return c.persistReconcileResult(ctx, app, result, opState, execRes, sha)
}

// fetchDesiredState clones or fetches the repository, pins the revision,
// and loads the labeled manifest set. Repository problems come back as
// fetch errors, broken manifests as validation errors.
func (c *Controller) fetchDesiredState(ctx context.Context, app *v1alpha1.Application, revision string) (string, []*unstructured.Unstructured, error) {
	if revision == "" {
		revision = "HEAD"
	}

	repoPath := git.RepoPath(c.opts.RepoRoot, app.Name, app.Spec.Source.RepoURL)

	err := c.gitClient.CloneOrFetch(ctx, app.Spec.Source.RepoURL, repoPath)
	metrics.ObserveGitFetch(err)
	if err != nil {
		return "", nil, apperrors.NewFetchError(
			fmt.Sprintf("error fetching repository %s", app.Spec.Source.RepoURL), err)
	}

	sha, err := c.gitClient.Checkout(repoPath, revision)
	if err != nil {
		return "", nil, apperrors.NewFetchError(
			fmt.Sprintf("error checking out revision %q", revision), err)
	}
	log.WithField("application", app.Name).
		WithField("revision", revision).
		WithField("sha", sha).
		Debug("Checked out revision")

	manifests, err := c.kubeClient.LoadManifests(filepath.Join(repoPath, app.Spec.Source.Path))
	if err != nil {
		return "", nil, apperrors.NewValidationError(
			fmt.Sprintf("error loading manifests from %q", app.Spec.Source.Path), err)
	}

	label := map[string]string{common.LabelKeyAppInstance: app.Name}
	if err := c.kubeClient.SetLabelsForResources(manifests, label); err != nil {
		return "", nil, apperrors.NewValidationError("error labeling manifests", err)
	}

	return sha, manifests, nil
}

// shouldAutoSync decides whether drift found at sha warrants a sync without
// a manual trigger. Drift at the already-compared revision means someone
// changed the cluster out of band, and only self heal corrects that.
func (c *Controller) shouldAutoSync(app *v1alpha1.Application, result *reconcile.ComparisonResult, sha string) bool {
	if result.SyncStatus != v1alpha1.SyncStatusCodeOutOfSync {
		return false
	}
	if !app.AutomatedSyncEnabled() {
		return false
	}
	if sha != app.Status.Sync.Revision {
		return true
	}
	return app.SelfHealEnabled()
}

// runSync executes the plan for one operation and folds the outcome into
// the operation state.
func (c *Controller) runSync(ctx context.Context, app *v1alpha1.Application, result *reconcile.ComparisonResult, opState *v1alpha1.OperationState, sha string) *reconcile.ExecuteResult {
	syncOp := opState.Operation.Sync

	retryStrategy := opState.Operation.Retry
	if retryStrategy == nil {
		retryStrategy = app.RetryStrategy()
	}

	plan := reconcile.BuildPlan(result, syncOp.Prune)

	log.WithField("application", app.Name).
		WithField("operation", opState.ID).
		WithField("dryRun", syncOp.DryRun).
		Info("Syncing application")

	execRes := c.executor.Execute(ctx, plan, reconcile.ExecuteOptions{
		AppName:         app.Name,
		DestNamespace:   app.Spec.Destination.Namespace,
		DryRun:          syncOp.DryRun,
		Validate:        !app.SyncOptions().HasOption(common.SyncOptionNoValidate),
		CreateNamespace: app.SyncOptions().HasOption(common.SyncOptionCreateNamespace),
		Retry:           retryStrategy,
		Timeout:         c.opts.SyncTimeout,
		ApplyTimeout:    c.opts.ApplyTimeout,
		HealthGrace:     c.opts.HealthGrace,
	})

	now := metav1.Now()
	opState.Phase = execRes.Phase
	opState.Message = execRes.Message
	opState.FinishedAt = &now
	opState.SyncResult = &v1alpha1.SyncOperationResult{
		Resources: execRes.Results,
		Revision:  sha,
	}
	opState.RetryCount = retryCount(execRes.Results)

	metrics.ObserveSync(execRes.Phase, time.Since(opState.StartedAt.Time).Seconds())
	metrics.ObserveResourceResults(execRes.Results)

	return execRes
}

// persistReconcileResult writes the final status for the pass: sync block,
// health, per-resource states, conditions, operation state, and history.
func (c *Controller) persistReconcileResult(ctx context.Context, app *v1alpha1.Application, result *reconcile.ComparisonResult, opState *v1alpha1.OperationState, execRes *reconcile.ExecuteResult, sha string) error {
	newStatus := app.Status.DeepCopy()
	now := metav1.Now()

	newStatus.Sync = v1alpha1.SyncStatus{
		Status:   result.SyncStatus,
		Revision: sha,
	}
	newStatus.Resources = result.ResourceStatuses()

	healthStatus := result.AggregateHealth()
	if execRes != nil && execRes.Health != nil && health.IsWorse(healthStatus.Status, execRes.Health.Status) {
		healthStatus = *execRes.Health
	}
	// A sync that exhausted its retries degrades the application even when
	// the missing resources alone would rank milder.
	if opState != nil && !opState.Phase.Successful() && !wasDryRun(opState) &&
		health.IsWorse(healthStatus.Status, v1alpha1.HealthStatusDegraded) {
		healthStatus = v1alpha1.HealthStatus{
			Status:  v1alpha1.HealthStatusDegraded,
			Message: opState.Message,
		}
	}
	newStatus.Health = healthStatus

	var conditions []v1alpha1.ApplicationCondition

	if opState != nil {
		newStatus.OperationState = opState

		if opState.Phase.Successful() && !wasDryRun(opState) {
			newStatus.AddHistory(v1alpha1.RevisionHistory{
				ID:              newStatus.NextHistoryID(),
				Revision:        sha,
				DeployStartedAt: &opState.StartedAt,
				DeployedAt:      now,
				Source:          app.Spec.Source,
			}, common.DefaultHistoryLimit)

			c.eventRecorder.Event(app, corev1.EventTypeNormal, common.SuccessSynced, common.MessageResourceSynced)
			if n := prunedCount(execRes.Results); n > 0 {
				c.eventRecorder.Eventf(app, corev1.EventTypeNormal, common.ReasonResourcesPruned,
					"Pruned %d orphaned resources", n)
			}
		} else if !opState.Phase.Successful() {
			conditions = append(conditions, v1alpha1.ApplicationCondition{
				Type:    v1alpha1.ApplicationConditionSyncError,
				Message: opState.Message,
			})
			c.eventRecorder.Event(app, corev1.EventTypeWarning, common.ReasonSyncFailed, opState.Message)
		}
	}

	if result.SyncStatus == v1alpha1.SyncStatusCodeOutOfSync && execRes == nil {
		// Drift we saw but chose not to correct
		msg := "live state has drifted from the desired revision"
		if app.AutomatedSyncEnabled() && !app.SelfHealEnabled() && sha == app.Status.Sync.Revision {
			msg = "out-of-band changes detected at the synced revision and self heal is disabled"
		}
		log.WithField("application", app.Name).
			WithError(apperrors.NewDriftError(msg)).
			Warn("Drift detected")
		conditions = append(conditions, v1alpha1.ApplicationCondition{
			Type:    v1alpha1.ApplicationConditionDriftDetected,
			Message: msg,
		})
		c.eventRecorder.Event(app, corev1.EventTypeNormal, common.ReasonOutOfSync, msg)
	}

	newStatus.SetConditions(conditions)
	newStatus.ReconciledAt = &now
	newStatus.ObservedGeneration = app.Generation

	metrics.SetAppStatus(app.Name, newStatus.Sync.Status, newStatus.Health.Status)

	if err := c.updateAppStatus(ctx, app, newStatus); err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	return nil
}

// failComparison records a pass that could not produce a comparison.
// Validation failures zero out sync confidence; fetch failures keep the
// previous status so a flapping remote does not erase what we know.
func (c *Controller) failComparison(ctx context.Context, app *v1alpha1.Application, opState *v1alpha1.OperationState, err error) error {
	log.WithField("application", app.Name).
		WithField("errorType", string(apperrors.TypeOf(err))).
		WithError(err).Error("Comparison failed")

	newStatus := app.Status.DeepCopy()
	now := metav1.Now()

	if apperrors.IsValidationError(err) {
		newStatus.Sync.Status = v1alpha1.SyncStatusCodeUnknown
		newStatus.Health = v1alpha1.HealthStatus{Status: v1alpha1.HealthStatusUnknown}
		newStatus.Resources = nil
	}

	newStatus.SetConditions([]v1alpha1.ApplicationCondition{{
		Type:    v1alpha1.ApplicationConditionComparisonError,
		Message: err.Error(),
	}})

	if opState != nil {
		opState.Phase = v1alpha1.OperationError
		opState.Message = err.Error()
		opState.FinishedAt = &now
		newStatus.OperationState = opState
		metrics.ObserveSync(opState.Phase, time.Since(opState.StartedAt.Time).Seconds())
	}

	newStatus.ReconciledAt = &now
	newStatus.ObservedGeneration = app.Generation

	c.eventRecorder.Event(app, corev1.EventTypeWarning, common.ReasonComparisonError, err.Error())
	metrics.SetAppStatus(app.Name, newStatus.Sync.Status, newStatus.Health.Status)

	if uerr := c.updateAppStatus(ctx, app, newStatus); uerr != nil {
		return fmt.Errorf("error updating application status: %w", uerr)
	}

	if apperrors.IsValidationError(err) {
		// Retrying immediately cannot fix broken manifests; wait for the
		// next push or resync.
		return nil
	}

	return err
}

// consumeOperation claims a requested sync: the operation field is cleared
// and a Running operation state is persisted before any work happens, so a
// crash cannot silently rerun or lose the request.
func (c *Controller) consumeOperation(ctx context.Context, app *v1alpha1.Application) (*v1alpha1.OperationState, error) {
	if app.Operation == nil || app.Operation.Sync == nil {
		return nil, nil
	}

	var state *v1alpha1.OperationState
	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		fresh, err := c.appClientSet.CoxswainV1alpha1().Applications(app.Namespace).Get(ctx, app.Name, metav1.GetOptions{})
		if err != nil {
			return err
		}
		if fresh.Operation == nil || fresh.Operation.Sync == nil {
			state = nil
			return nil
		}

		state = &v1alpha1.OperationState{
			ID:        uuid.New().String(),
			Operation: *fresh.Operation.DeepCopy(),
			Phase:     v1alpha1.OperationRunning,
			Message:   "sync operation started",
			StartedAt: metav1.Now(),
		}

		fresh.Operation = nil
		_, err = c.appClientSet.CoxswainV1alpha1().Applications(fresh.Namespace).Update(ctx, fresh, metav1.UpdateOptions{})
		return err
	})
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}

	runningStatus := app.Status.DeepCopy()
	runningStatus.OperationState = state
	if err := c.updateAppStatus(ctx, app, runningStatus); err != nil {
		return nil, err
	}

	return state, nil
}

func (c *Controller) clearRefreshAnnotation(ctx context.Context, app *v1alpha1.Application) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		fresh, err := c.appClientSet.CoxswainV1alpha1().Applications(app.Namespace).Get(ctx, app.Name, metav1.GetOptions{})
		if err != nil {
			return err
		}

		annotations := fresh.GetAnnotations()
		if _, ok := annotations[common.AnnotationKeyRefresh]; !ok {
			return nil
		}
		delete(annotations, common.AnnotationKeyRefresh)
		fresh.SetAnnotations(annotations)

		_, err = c.appClientSet.CoxswainV1alpha1().Applications(fresh.Namespace).Update(ctx, fresh, metav1.UpdateOptions{})
		return err
	})
}

// deleteResources cascades an Application deletion: every labeled live
// resource goes, then the repository cache.
func (c *Controller) deleteResources(ctx context.Context, app *v1alpha1.Application) error {
	if app.Name == "" {
		return fmt.Errorf("application name is empty")
	}

	label := map[string]string{
		common.LabelKeyAppInstance: app.Name,
	}
	resources, err := c.kubeClient.GetResourcesWithLabel(ctx, label)
	if err != nil {
		return fmt.Errorf("error getting resources with label %v: %w", label, err)
	}

	log.WithField("application", app.Name).Info("Deleting resources")
	for _, r := range resources {
		if err := c.kubeClient.DeleteResource(ctx, r, r.GetNamespace()); err != nil {
			return fmt.Errorf("error deleting resource %s %q: %w", r.GetKind(), r.GetName(), err)
		}
	}

	repoPath := git.RepoPath(c.opts.RepoRoot, app.Name, app.Spec.Source.RepoURL)
	if err := c.gitClient.CleanUp(repoPath); err != nil {
		return fmt.Errorf("error cleaning up repository cache: %w", err)
	}

	metrics.ForgetApp(app.Name)
	log.WithField("application", app.Name).Info("Resources deleted")

	return nil
}

func (c *Controller) handleAdd(obj interface{}) {
	log.Debug("Application added")

	c.queue.AddRateLimited(obj)
}

func (c *Controller) handleDelete(obj interface{}) {
	log.Debug("Application deleted")

	c.queue.AddRateLimited(obj)
}

func (c *Controller) handleUpdate(oldObj, newObj interface{}) {
	oldApp, oldOk := oldObj.(*v1alpha1.Application)
	newApp, newOk := newObj.(*v1alpha1.Application)
	if !oldOk || !newOk {
		log.Error("Error decoding object, invalid type")
		return
	}

	// Status writes come from this controller itself; reacting to them
	// would loop forever.
	if equality.Semantic.DeepEqual(oldApp.Spec, newApp.Spec) &&
		equality.Semantic.DeepEqual(oldApp.Operation, newApp.Operation) &&
		equality.Semantic.DeepEqual(oldApp.Annotations, newApp.Annotations) {
		return
	}

	log.Debugf("Application %s changed", newApp.Name)
	c.requestAppRefresh(newApp.GetName(), newApp.GetNamespace())
}

// updateAppStatus safely replaces the status of an application. We need
// this instead of a bare UpdateStatus() since the obj can be updated
// between the time we get and do the status modification.
func (c *Controller) updateAppStatus(ctx context.Context, app *v1alpha1.Application, status *v1alpha1.ApplicationStatus) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		queryApp, err := c.appClientSet.CoxswainV1alpha1().Applications(app.Namespace).Get(ctx, app.Name, metav1.GetOptions{})
		if err != nil {
			return err
		}

		queryApp.Status = *status
		_, err = c.appClientSet.CoxswainV1alpha1().Applications(queryApp.Namespace).UpdateStatus(ctx, queryApp, metav1.UpdateOptions{})
		return err
	})
}

func (c *Controller) requestAppRefresh(appName string, namespace string) {
	key := namespace + "/" + appName
	c.appRefreshQueue.AddRateLimited(key)
}

func newAutomatedOperationState(app *v1alpha1.Application) *v1alpha1.OperationState {
	return &v1alpha1.OperationState{
		ID: uuid.New().String(),
		Operation: v1alpha1.Operation{
			Sync:        &v1alpha1.SyncOperation{Prune: app.PruneEnabled()},
			InitiatedBy: v1alpha1.OperationInitiator{Automated: true},
		},
		Phase:     v1alpha1.OperationRunning,
		Message:   "automated sync started",
		StartedAt: metav1.Now(),
	}
}

func deletedApplication(obj interface{}) (*v1alpha1.Application, error) {
	if app, ok := obj.(*v1alpha1.Application); ok {
		return app, nil
	}
	tombstone, ok := obj.(cache.DeletedFinalStateUnknown)
	if !ok {
		return nil, fmt.Errorf("error decoding deleted object")
	}
	app, ok := tombstone.Obj.(*v1alpha1.Application)
	if !ok {
		return nil, fmt.Errorf("error decoding deleted object tombstone")
	}
	return app, nil
}

func wasDryRun(opState *v1alpha1.OperationState) bool {
	return opState != nil && opState.Operation.Sync != nil && opState.Operation.Sync.DryRun
}

func retryCount(results []*v1alpha1.ResourceResult) int64 {
	var n int64
	for _, r := range results {
		if r.Attempts > 1 {
			n += r.Attempts - 1
		}
	}
	return n
}

func prunedCount(results []*v1alpha1.ResourceResult) int {
	n := 0
	for _, r := range results {
		if r.Status == v1alpha1.ResultCodePruned {
			n++
		}
	}
	return n
}
