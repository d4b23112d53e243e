package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +genclient
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="SyncStatus",type=string,JSONPath=`.status.sync.status`
// +kubebuilder:printcolumn:name="HealthStatus",type=string,JSONPath=`.status.health.status`
// +kubebuilder:printcolumn:name="Revision",type=string,JSONPath=`.status.sync.revision`
type Application struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ApplicationSpec `json:"spec,omitempty"`

	// Operation holds a requested sync. The controller consumes it, runs the
	// sync, records the outcome in status.operationState and clears the field.
	Operation *Operation `json:"operation,omitempty"`

	Status ApplicationStatus `json:"status,omitempty"`
}

type ApplicationSpec struct {
	Source      ApplicationSource      `json:"source"`
	Destination ApplicationDestination `json:"destination"`
	// SyncPolicy controls when and how drift is corrected. A nil policy
	// means compare-only: drift is surfaced but never acted on.
	SyncPolicy *SyncPolicy `json:"syncPolicy,omitempty"`
}

// ApplicationSource locates the desired-state manifest tree.
type ApplicationSource struct {
	RepoURL string `json:"repoURL"`
	// TargetRevision is a branch, tag, or commit SHA. Defaults to HEAD.
	TargetRevision string `json:"targetRevision,omitempty"`
	// Path is the directory within the repository holding the manifests.
	Path string `json:"path,omitempty"`
}

type ApplicationDestination struct {
	Server    string `json:"server,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

type SyncPolicy struct {
	// Automated enables sync without a manual trigger whenever the
	// comparison finds drift.
	Automated *SyncPolicyAutomated `json:"automated,omitempty"`
	// SyncOptions tune sync behavior, e.g. CreateNamespace=true,
	// Validate=false, PruneLast=true.
	SyncOptions SyncOptions `json:"syncOptions,omitempty"`
	// Retry controls failed apply retry behavior.
	Retry *RetryStrategy `json:"retry,omitempty"`
}

type SyncPolicyAutomated struct {
	// Prune deletes live resources no longer present in the source.
	Prune bool `json:"prune,omitempty"`
	// SelfHeal re-syncs immediately when live state is mutated out of band.
	SelfHeal bool `json:"selfHeal,omitempty"`
}

type SyncOptions []string

// RetryStrategy bounds per-resource apply retries within one sync pass.
type RetryStrategy struct {
	// Limit is the total number of attempts for a failing resource.
	// Zero or negative falls back to the controller default.
	Limit int64 `json:"limit,omitempty"`
	// Backoff shapes the delay between attempts.
	Backoff *Backoff `json:"backoff,omitempty"`
}

// Backoff is the delay growth between retries. Duration and MaxDuration
// accept either plain seconds ("5") or a Go duration string ("2m30s").
type Backoff struct {
	Duration    string `json:"duration,omitempty"`
	Factor      *int64 `json:"factor,omitempty"`
	MaxDuration string `json:"maxDuration,omitempty"`
}

// Operation is a requested sync for an Application.
type Operation struct {
	Sync        *SyncOperation     `json:"sync,omitempty"`
	InitiatedBy OperationInitiator `json:"initiatedBy,omitempty"`
	// Retry overrides the policy retry strategy for this operation only.
	Retry *RetryStrategy `json:"retry,omitempty"`
}

type SyncOperation struct {
	// Revision overrides spec.source.targetRevision for this sync.
	Revision string `json:"revision,omitempty"`
	Prune    bool   `json:"prune,omitempty"`
	// DryRun runs the whole plan against the API server without persisting.
	DryRun bool `json:"dryRun,omitempty"`
}

type OperationInitiator struct {
	Username string `json:"username,omitempty"`
	// Automated is true when the controller itself started the operation.
	Automated bool `json:"automated,omitempty"`
}

type ApplicationStatus struct {
	Sync      SyncStatus       `json:"sync,omitempty"`
	Health    HealthStatus     `json:"health,omitempty"`
	Resources []ResourceStatus `json:"resources,omitempty"`
	// Conditions surface fetch, validation, sync, and drift errors.
	Conditions     []ApplicationCondition `json:"conditions,omitempty"`
	OperationState *OperationState        `json:"operationState,omitempty"`
	History        RevisionHistories      `json:"history,omitempty"`
	// ReconciledAt is when the last comparison pass finished.
	ReconciledAt       *metav1.Time `json:"reconciledAt,omitempty"`
	ObservedGeneration int64        `json:"observedGeneration,omitempty"`
}

type SyncStatusCode string

const (
	SyncStatusCodeUnknown   SyncStatusCode = "Unknown"
	SyncStatusCodeSynced    SyncStatusCode = "Synced"
	SyncStatusCodeOutOfSync SyncStatusCode = "OutOfSync"
)

type SyncStatus struct {
	Status SyncStatusCode `json:"status"`
	// Revision is the resolved commit SHA the comparison ran against.
	Revision string `json:"revision,omitempty"`
}

type HealthStatusCode string

const (
	HealthStatusUnknown     HealthStatusCode = "Unknown"
	HealthStatusProgressing HealthStatusCode = "Progressing"
	HealthStatusHealthy     HealthStatusCode = "Healthy"
	HealthStatusSuspended   HealthStatusCode = "Suspended"
	HealthStatusDegraded    HealthStatusCode = "Degraded"
	HealthStatusMissing     HealthStatusCode = "Missing"
)

type HealthStatus struct {
	Status  HealthStatusCode `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

// ResourceStatus is the per-resource comparison outcome.
type ResourceStatus struct {
	Group           string         `json:"group,omitempty"`
	Version         string         `json:"version,omitempty"`
	Kind            string         `json:"kind,omitempty"`
	Namespace       string         `json:"namespace,omitempty"`
	Name            string         `json:"name,omitempty"`
	Status          SyncStatusCode `json:"status,omitempty"`
	Health          *HealthStatus  `json:"health,omitempty"`
	RequiresPruning bool           `json:"requiresPruning,omitempty"`
}

type ApplicationConditionType string

const (
	// ApplicationConditionComparisonError means desired state could not be
	// fetched or parsed.
	ApplicationConditionComparisonError ApplicationConditionType = "ComparisonError"
	// ApplicationConditionSyncError means one or more resource applies failed.
	ApplicationConditionSyncError ApplicationConditionType = "SyncError"
	// ApplicationConditionDriftDetected means live state diverged from the
	// last synced desired state and self-heal is disabled.
	ApplicationConditionDriftDetected ApplicationConditionType = "DriftDetected"
)

type ApplicationCondition struct {
	Type               ApplicationConditionType `json:"type"`
	Message            string                   `json:"message,omitempty"`
	LastTransitionTime *metav1.Time             `json:"lastTransitionTime,omitempty"`
}

type OperationPhase string

const (
	OperationRunning     OperationPhase = "Running"
	OperationSucceeded   OperationPhase = "Succeeded"
	OperationFailed      OperationPhase = "Failed"
	OperationError       OperationPhase = "Error"
	OperationTerminating OperationPhase = "Terminating"
)

// Completed reports whether the phase is terminal.
func (p OperationPhase) Completed() bool {
	switch p {
	case OperationSucceeded, OperationFailed, OperationError:
		return true
	}
	return false
}

func (p OperationPhase) Successful() bool {
	return p == OperationSucceeded
}

// OperationState records a running or finished sync operation.
type OperationState struct {
	// ID uniquely identifies one sync attempt across restarts.
	ID         string               `json:"id,omitempty"`
	Operation  Operation            `json:"operation,omitempty"`
	Phase      OperationPhase       `json:"phase"`
	Message    string               `json:"message,omitempty"`
	SyncResult *SyncOperationResult `json:"syncResult,omitempty"`
	StartedAt  metav1.Time          `json:"startedAt,omitempty"`
	FinishedAt *metav1.Time         `json:"finishedAt,omitempty"`
	RetryCount int64                `json:"retryCount,omitempty"`
}

type SyncOperationResult struct {
	Resources []*ResourceResult `json:"resources,omitempty"`
	Revision  string            `json:"revision,omitempty"`
}

type ResultCode string

const (
	ResultCodeSynced       ResultCode = "Synced"
	ResultCodeSyncFailed   ResultCode = "SyncFailed"
	ResultCodePruned       ResultCode = "Pruned"
	ResultCodePruneSkipped ResultCode = "PruneSkipped"
)

// ResourceResult is the outcome of one resource within a sync operation.
type ResourceResult struct {
	Group     string     `json:"group,omitempty"`
	Version   string     `json:"version,omitempty"`
	Kind      string     `json:"kind,omitempty"`
	Namespace string     `json:"namespace,omitempty"`
	Name      string     `json:"name,omitempty"`
	Status    ResultCode `json:"status,omitempty"`
	Message   string     `json:"message,omitempty"`
	// Attempts counts apply attempts including the successful one.
	Attempts int64 `json:"attempts,omitempty"`
}

// RevisionHistories is ordered oldest first, newest last.
type RevisionHistories []RevisionHistory

type RevisionHistory struct {
	ID              int64             `json:"id"`
	Revision        string            `json:"revision,omitempty"`
	DeployStartedAt *metav1.Time      `json:"deployStartedAt,omitempty"`
	DeployedAt      metav1.Time       `json:"deployedAt,omitempty"`
	Source          ApplicationSource `json:"source,omitempty"`
}

// RefreshType is the value of the refresh annotation.
type RefreshType string

const (
	RefreshTypeNormal RefreshType = "normal"
	RefreshTypeHard   RefreshType = "hard"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type ApplicationList struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []Application `json:"items"`
}
