package reconcile

import (
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/coxswain-io/coxswain/common"
	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
)

// backoffFor resolves a retry strategy into concrete wait.Backoff values,
// falling back to the controller defaults for anything unset. Steps holds
// the number of retries after the initial attempt.
func backoffFor(strategy *v1alpha1.RetryStrategy) wait.Backoff {
	b := wait.Backoff{
		Duration: common.DefaultRetryDuration,
		Factor:   float64(common.DefaultRetryFactor),
		Cap:      common.DefaultRetryMaxDuration,
		Steps:    common.DefaultRetryLimit,
	}
	if strategy == nil {
		return b
	}
	b.Steps = int(strategy.Limit)
	if b.Steps < 0 {
		b.Steps = 0
	}
	if strategy.Backoff != nil {
		b.Duration = strategy.Backoff.DurationOrDefault(common.DefaultRetryDuration)
		b.Factor = float64(strategy.Backoff.FactorOrDefault(common.DefaultRetryFactor))
		b.Cap = strategy.Backoff.MaxDurationOrDefault(common.DefaultRetryMaxDuration)
	}
	return b
}

// delayFor returns the wait before retry n, counting from 1:
// duration * factor^(n-1), capped at Cap.
func delayFor(b wait.Backoff, retry int) time.Duration {
	d := b.Duration
	for i := 1; i < retry; i++ {
		next := time.Duration(float64(d) * b.Factor)
		if b.Cap > 0 && next >= b.Cap {
			return b.Cap
		}
		d = next
	}
	if b.Cap > 0 && d > b.Cap {
		return b.Cap
	}
	return d
}
