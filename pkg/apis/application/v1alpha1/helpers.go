package v1alpha1

import (
	"strconv"
	"time"

	"github.com/coxswain-io/coxswain/common"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AutomatedSyncEnabled reports whether drift triggers a sync without a
// manual operation.
func (a *Application) AutomatedSyncEnabled() bool {
	return a.Spec.SyncPolicy != nil && a.Spec.SyncPolicy.Automated != nil
}

// SelfHealEnabled reports whether out-of-band drift re-enters sync
// immediately instead of waiting for the next poll.
func (a *Application) SelfHealEnabled() bool {
	return a.AutomatedSyncEnabled() && a.Spec.SyncPolicy.Automated.SelfHeal
}

// PruneEnabled reports whether automated syncs delete orphaned resources.
func (a *Application) PruneEnabled() bool {
	return a.AutomatedSyncEnabled() && a.Spec.SyncPolicy.Automated.Prune
}

func (a *Application) SyncOptions() SyncOptions {
	if a.Spec.SyncPolicy == nil {
		return nil
	}
	return a.Spec.SyncPolicy.SyncOptions
}

// RetryStrategy returns the effective retry strategy for a sync: the
// operation override when present, else the policy strategy, else nil.
func (a *Application) RetryStrategy() *RetryStrategy {
	if a.Operation != nil && a.Operation.Retry != nil {
		return a.Operation.Retry
	}
	if a.Spec.SyncPolicy != nil {
		return a.Spec.SyncPolicy.Retry
	}
	return nil
}

// RefreshRequested returns the refresh type requested via annotation.
func (a *Application) RefreshRequested() (RefreshType, bool) {
	v, ok := a.GetAnnotations()[common.AnnotationKeyRefresh]
	if !ok {
		return "", false
	}
	if RefreshType(v) == RefreshTypeHard {
		return RefreshTypeHard, true
	}
	return RefreshTypeNormal, true
}

func (o SyncOptions) HasOption(option string) bool {
	for _, i := range o {
		if i == option {
			return true
		}
	}
	return false
}

// DurationOrDefault parses Duration, accepting bare seconds ("5") or a Go
// duration string ("2m30s"). Unset or unparsable values yield def.
func (b *Backoff) DurationOrDefault(def time.Duration) time.Duration {
	return parseBackoffDuration(b.Duration, def)
}

func (b *Backoff) MaxDurationOrDefault(def time.Duration) time.Duration {
	return parseBackoffDuration(b.MaxDuration, def)
}

func (b *Backoff) FactorOrDefault(def int64) int64 {
	if b.Factor == nil || *b.Factor <= 0 {
		return def
	}
	return *b.Factor
}

func parseBackoffDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	if secs, err := strconv.Atoi(s); err == nil {
		if secs <= 0 {
			return def
		}
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// SetConditions replaces the condition set, keeping LastTransitionTime for
// conditions whose type and message did not change.
func (s *ApplicationStatus) SetConditions(conditions []ApplicationCondition) {
	now := metav1.Now()
	for i := range conditions {
		c := &conditions[i]
		if c.LastTransitionTime != nil {
			continue
		}
		if prev := s.findCondition(c.Type); prev != nil && prev.Message == c.Message {
			c.LastTransitionTime = prev.LastTransitionTime
			continue
		}
		c.LastTransitionTime = &now
	}
	s.Conditions = conditions
}

func (s *ApplicationStatus) findCondition(t ApplicationConditionType) *ApplicationCondition {
	for i := range s.Conditions {
		if s.Conditions[i].Type == t {
			return &s.Conditions[i]
		}
	}
	return nil
}

// GetCondition returns the condition of the given type, or nil.
func (s *ApplicationStatus) GetCondition(t ApplicationConditionType) *ApplicationCondition {
	return s.findCondition(t)
}

// LastSyncedRevision is the revision recorded by the most recent successful
// sync, or "" when the Application has never synced.
func (s *ApplicationStatus) LastSyncedRevision() string {
	if len(s.History) == 0 {
		return ""
	}
	return s.History[len(s.History)-1].Revision
}

// NextHistoryID returns the ID for the next history entry.
func (s *ApplicationStatus) NextHistoryID() int64 {
	if len(s.History) == 0 {
		return 0
	}
	return s.History[len(s.History)-1].ID + 1
}

// AddHistory appends an entry and trims to limit, oldest first.
func (s *ApplicationStatus) AddHistory(entry RevisionHistory, limit int) {
	s.History = append(s.History, entry)
	if limit > 0 && len(s.History) > limit {
		s.History = s.History[len(s.History)-limit:]
	}
}
