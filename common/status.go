package common

// Event reasons and messages emitted on Applications.
const (
	// SuccessSynced is used as part of the Event 'reason' when an Application is synced
	SuccessSynced = "Synced"

	// ReasonSyncFailed is the Event 'reason' when a sync pass fails
	ReasonSyncFailed = "SyncFailed"

	// ReasonComparisonError is the Event 'reason' when desired state cannot
	// be fetched or parsed
	ReasonComparisonError = "ComparisonError"

	// ReasonOutOfSync is the Event 'reason' when drift is detected but
	// automated sync is disabled
	ReasonOutOfSync = "OutOfSync"

	// ReasonResourcesPruned is the Event 'reason' when orphaned resources
	// are deleted
	ReasonResourcesPruned = "ResourcesPruned"

	// MessageResourceSynced is the message used for an Event fired when an Application
	// is synced successfully
	MessageResourceSynced = "App synced successfully"
)
