package common

import "time"

// Defaults for controller timing and retry behavior. Flag values on the run
// command override the timing knobs; the retry values apply whenever an
// Application does not carry its own syncPolicy.retry.
const (
	// DefaultAppResyncPeriod is the polling interval between reconciliation
	// passes for each Application.
	DefaultAppResyncPeriod = 3 * time.Minute

	// DefaultSyncTimeout bounds one whole sync pass. When it expires the
	// pass is abandoned and partial progress is kept.
	DefaultSyncTimeout = 10 * time.Minute

	// DefaultApplyTimeout bounds a single resource apply or delete call.
	DefaultApplyTimeout = 60 * time.Second

	// DefaultHealthGracePeriod is how long a freshly synced resource may
	// stay Progressing before the Application is surfaced as Degraded.
	DefaultHealthGracePeriod = 2 * time.Minute

	// HealthPollInterval is how often resource health is re-read while
	// waiting out the grace period.
	HealthPollInterval = 3 * time.Second

	DefaultRetryLimit       = 5
	DefaultRetryDuration    = 5 * time.Second
	DefaultRetryFactor      = 2
	DefaultRetryMaxDuration = 3 * time.Minute

	// DefaultHistoryLimit caps status.history length per Application.
	DefaultHistoryLimit = 10

	// DefaultClientTimeout is applied to the rest.Config used for all
	// cluster calls.
	DefaultClientTimeout = 120 * time.Second

	// Client-side rate limits on the rest.Config.
	DefaultClientQPS   = 50.0
	DefaultClientBurst = 100

	// Discovery fan-out rate limits for live-state listing.
	DefaultListQPS   = 25.0
	DefaultListBurst = 50

	DefaultMetricsAddr = ":8081"
)
