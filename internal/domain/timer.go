package domain

import (
	"time"
)

// State represents the lifecycle state of the timer slot.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// ActiveTimer represents the single open time-tracking session.
// This is a pure domain model without storage-specific concerns.
//
// The paused sub-state is carried by PausedAt: a nil PausedAt means the
// clock is accruing, a non-nil PausedAt marks the start of the current
// pause interval. A timer cannot be paused without being open, so the
// running/paused exclusion holds by construction.
type ActiveTimer struct {
	ID             string
	CustomerID     string
	ProjectID      string
	TaskID         string // optional
	Description    string
	StartTime      time.Time
	PausedAt       *time.Time
	PausedDuration time.Duration
	UserID         string
}

// NewActiveTimer creates a running timer started at startTime.
func NewActiveTimer(id, customerID, projectID, taskID, description, userID string, startTime time.Time) *ActiveTimer {
	return &ActiveTimer{
		ID:          id,
		CustomerID:  customerID,
		ProjectID:   projectID,
		TaskID:      taskID,
		Description: description,
		StartTime:   startTime,
		UserID:      userID,
	}
}

// State returns the timer's current state.
func (t *ActiveTimer) State() State {
	if t.PausedAt != nil {
		return StatePaused
	}
	return StateRunning
}

// IsPaused returns true if the timer is inside a pause interval.
func (t *ActiveTimer) IsPaused() bool {
	return t.PausedAt != nil
}

// PausedTotal returns cumulative paused time as of now, including the
// open pause interval if one is in progress.
func (t *ActiveTimer) PausedTotal(now time.Time) time.Duration {
	total := t.PausedDuration
	if t.PausedAt != nil {
		total += now.Sub(*t.PausedAt)
	}
	return total
}

// Elapsed returns billable elapsed time as of now. It is recomputed from
// wall-clock timestamps on every call rather than accumulated from tick
// deltas, so it stays correct across process restarts and suspensions.
func (t *ActiveTimer) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(t.StartTime) - t.PausedTotal(now)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Pause begins a pause interval at now. No-op if already paused.
func (t *ActiveTimer) Pause(now time.Time) {
	if t.PausedAt == nil {
		t.PausedAt = &now
	}
}

// Resume folds the open pause interval into PausedDuration and clears
// the pause mark. No-op if not paused.
func (t *ActiveTimer) Resume(now time.Time) {
	if t.PausedAt != nil {
		t.PausedDuration += now.Sub(*t.PausedAt)
		t.PausedAt = nil
	}
}

// Clone returns a deep copy, safe to hand to observers.
func (t *ActiveTimer) Clone() *ActiveTimer {
	if t == nil {
		return nil
	}
	copied := *t
	if t.PausedAt != nil {
		pausedAt := *t.PausedAt
		copied.PausedAt = &pausedAt
	}
	return &copied
}

// IsValid checks if the timer has valid data.
func (t *ActiveTimer) IsValid() bool {
	if t.ID == "" || t.CustomerID == "" || t.ProjectID == "" || t.UserID == "" {
		return false
	}
	if t.StartTime.IsZero() {
		return false
	}
	if t.PausedDuration < 0 {
		return false
	}
	return true
}
