package reconcile

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/coxswain-io/coxswain/common"
	"github.com/coxswain-io/coxswain/internal/apperrors"
	"github.com/coxswain-io/coxswain/internal/health"
	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
	"github.com/coxswain-io/coxswain/utils/kube"
)

// ExecuteOptions carries the per-operation knobs for one sync pass.
type ExecuteOptions struct {
	AppName         string
	DestNamespace   string
	DryRun          bool
	Validate        bool
	CreateNamespace bool
	Retry           *v1alpha1.RetryStrategy
	// Timeout bounds the whole pass, ApplyTimeout a single API call.
	Timeout      time.Duration
	ApplyTimeout time.Duration
	// HealthGrace is how long applied resources may keep progressing
	// before the pass gives up waiting. Zero skips the wait.
	HealthGrace time.Duration
}

// ExecuteResult reports one finished pass. Results always contains an entry
// per attempted or skipped task, in a deterministic order.
type ExecuteResult struct {
	Phase   v1alpha1.OperationPhase
	Message string
	Results []*v1alpha1.ResourceResult
	// Health is the aggregate of the applied resources after the
	// post-sync wait, nil when no wait happened.
	Health *v1alpha1.HealthStatus
}

// Executor runs sync plans against the cluster.
type Executor struct {
	kubeClient kube.Client
}

func NewExecutor(kubeClient kube.Client) *Executor {
	return &Executor{kubeClient: kubeClient}
}

// Execute applies the plan band by band, then prunes. A failure anywhere in
// the apply phase fails the pass and leaves every prune untouched; a failed
// task never stops its band siblings from finishing.
func (e *Executor) Execute(ctx context.Context, plan *Plan, opts ExecuteOptions) *ExecuteResult {
	if opts.Timeout <= 0 {
		opts.Timeout = common.DefaultSyncTimeout
	}
	if opts.ApplyTimeout <= 0 {
		opts.ApplyTimeout = common.DefaultApplyTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	logCtx := log.WithField("application", opts.AppName)
	res := &ExecuteResult{Phase: v1alpha1.OperationSucceeded}

	if opts.CreateNamespace && !opts.DryRun && opts.DestNamespace != "" {
		if err := e.kubeClient.EnsureNamespace(ctx, opts.DestNamespace); err != nil {
			res.Phase = v1alpha1.OperationError
			res.Message = fmt.Sprintf("failed to ensure namespace %q: %s", opts.DestNamespace, err)
			return res
		}
	}

	backoff := backoffFor(opts.Retry)

	var (
		mu      sync.Mutex
		applied []*unstructured.Unstructured
		failed  bool
	)

	for _, band := range plan.Bands {
		var g errgroup.Group
		for _, task := range band {
			task := task
			g.Go(func() error {
				attempts, err := e.applyWithRetry(ctx, task.State.Desired, backoff, opts)
				rr := newResourceResult(task.State.Key, task.State.Desired)
				rr.Attempts = attempts

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					rr.Status = v1alpha1.ResultCodeSyncFailed
					rr.Message = err.Error()
					res.Results = append(res.Results, rr)
					return err
				}
				rr.Status = v1alpha1.ResultCodeSynced
				res.Results = append(res.Results, rr)
				applied = append(applied, task.State.Desired)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			logCtx.WithError(err).Error("sync pass failed, later work is skipped")
			failed = true
			res.Message = err.Error()
			break
		}
	}

	if failed {
		for _, task := range plan.Prunes {
			rr := newResourceResult(task.State.Key, task.State.Live)
			rr.Status = v1alpha1.ResultCodePruneSkipped
			rr.Message = "prune skipped: apply phase did not succeed"
			res.Results = append(res.Results, rr)
		}
		res.Phase = v1alpha1.OperationFailed
		sortResults(res.Results)
		return res
	}

	var pruneErr error
	for _, task := range plan.Prunes {
		rr := newResourceResult(task.State.Key, task.State.Live)
		switch {
		case !task.Prune:
			rr.Status = v1alpha1.ResultCodePruneSkipped
			rr.Message = "orphaned resource left in place (prune disabled)"
		case opts.DryRun:
			rr.Status = v1alpha1.ResultCodePruned
			rr.Message = "pruned (dry run)"
		default:
			delCtx, cancelDel := context.WithTimeout(ctx, opts.ApplyTimeout)
			err := e.kubeClient.DeleteResource(delCtx, task.State.Live, opts.DestNamespace)
			cancelDel()
			if err != nil {
				pruneErr = err
				rr.Status = v1alpha1.ResultCodeSyncFailed
				rr.Message = fmt.Sprintf("failed to prune: %s", err)
			} else {
				rr.Status = v1alpha1.ResultCodePruned
			}
		}
		res.Results = append(res.Results, rr)
	}
	if pruneErr != nil {
		res.Phase = v1alpha1.OperationFailed
		res.Message = fmt.Sprintf("prune failed: %s", pruneErr)
		sortResults(res.Results)
		return res
	}

	if !opts.DryRun && len(applied) > 0 && opts.HealthGrace > 0 {
		h := e.awaitHealthy(ctx, applied, opts)
		res.Health = &h
		if h.Status != v1alpha1.HealthStatusHealthy {
			res.Message = fmt.Sprintf("resources applied, health is %s: %s", h.Status, h.Message)
		}
	}

	if res.Message == "" {
		synced := 0
		for _, r := range res.Results {
			if r.Status == v1alpha1.ResultCodeSynced || r.Status == v1alpha1.ResultCodePruned {
				synced++
			}
		}
		res.Message = fmt.Sprintf("successfully synced %d of %d resources", synced, len(res.Results))
	}
	sortResults(res.Results)
	return res
}

// applyWithRetry applies one resource, retrying transient failures with the
// configured backoff. The returned attempt count includes the first try, so
// it tops out at backoff.Steps+1.
func (e *Executor) applyWithRetry(ctx context.Context, obj *unstructured.Unstructured, backoff wait.Backoff, opts ExecuteOptions) (int64, error) {
	applyOpts := kube.ApplyOptions{
		DryRun:   opts.DryRun,
		Validate: opts.Validate,
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		applyCtx, cancel := context.WithTimeout(ctx, opts.ApplyTimeout)
		lastErr = e.kubeClient.ApplyResource(applyCtx, obj, opts.DestNamespace, applyOpts)
		cancel()
		if lastErr == nil {
			return int64(attempt), nil
		}
		if apperrors.IsPermanent(lastErr) {
			return int64(attempt), apperrors.NewApplyError(
				fmt.Sprintf("failed to apply %s %q", obj.GetKind(), obj.GetName()), lastErr)
		}
		if attempt > backoff.Steps {
			return int64(attempt), apperrors.NewApplyError(
				fmt.Sprintf("failed to apply %s %q after %d attempts", obj.GetKind(), obj.GetName(), attempt), lastErr)
		}

		delay := delayFor(backoff, attempt)
		log.WithField("resource", obj.GetName()).
			WithField("delay", delay.String()).
			WithError(lastErr).
			Debug("retrying apply")
		select {
		case <-ctx.Done():
			return int64(attempt), apperrors.NewApplyError(
				fmt.Sprintf("sync aborted while applying %s %q", obj.GetKind(), obj.GetName()), ctx.Err())
		case <-time.After(delay):
		}
	}
}

// awaitHealthy polls the applied resources until they aggregate Healthy, a
// terminal state shows up, or the grace period runs out. Running out while
// still progressing is reported as Degraded.
func (e *Executor) awaitHealthy(ctx context.Context, applied []*unstructured.Unstructured, opts ExecuteOptions) v1alpha1.HealthStatus {
	var last v1alpha1.HealthStatus

	err := wait.PollUntilContextTimeout(ctx, common.HealthPollInterval, opts.HealthGrace, true,
		func(ctx context.Context) (bool, error) {
			last = e.observeHealth(ctx, applied, opts.DestNamespace)
			switch last.Status {
			case v1alpha1.HealthStatusHealthy, v1alpha1.HealthStatusSuspended, v1alpha1.HealthStatusDegraded:
				return true, nil
			}
			return false, nil
		})
	if err != nil {
		return v1alpha1.HealthStatus{
			Status:  v1alpha1.HealthStatusDegraded,
			Message: fmt.Sprintf("resources did not become healthy within %s: %s", opts.HealthGrace, last.Message),
		}
	}

	return last
}

func (e *Executor) observeHealth(ctx context.Context, applied []*unstructured.Unstructured, namespace string) v1alpha1.HealthStatus {
	statuses := make([]v1alpha1.HealthStatus, 0, len(applied))
	for _, obj := range applied {
		live, err := e.kubeClient.GetResource(ctx, obj, namespace)
		if err != nil {
			if apierrors.IsNotFound(err) {
				statuses = append(statuses, health.ForResource(nil))
				continue
			}
			statuses = append(statuses, v1alpha1.HealthStatus{
				Status:  v1alpha1.HealthStatusUnknown,
				Message: err.Error(),
			})
			continue
		}
		statuses = append(statuses, health.ForResource(live))
	}

	return health.Aggregate(statuses)
}

func newResourceResult(key ResourceKey, obj *unstructured.Unstructured) *v1alpha1.ResourceResult {
	rr := &v1alpha1.ResourceResult{
		Group:     key.Group,
		Kind:      key.Kind,
		Namespace: key.Namespace,
		Name:      key.Name,
	}
	if obj != nil {
		rr.Version = obj.GroupVersionKind().Version
	}
	return rr
}

func sortResults(results []*v1alpha1.ResourceResult) {
	slices.SortFunc(results, func(a, b *v1alpha1.ResourceResult) int {
		if d := strings.Compare(a.Kind, b.Kind); d != 0 {
			return d
		}
		if d := strings.Compare(a.Namespace, b.Namespace); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})
}
