package sqlite

import "time"

// activeTimerRow mirrors the active_timer table. The table holds at most
// one row, keyed by a fixed slot value.
type activeTimerRow struct {
	TimerID        string
	CustomerID     string
	ProjectID      string
	TaskID         string
	Description    string
	StartTime      time.Time
	PausedAt       *time.Time // NULL unless a pause is in progress
	PausedSeconds  int64
	UserID         string
}
