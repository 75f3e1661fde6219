package domain

import (
	"time"
)

// TimerLog is the immutable, finalized record produced when a session is
// stopped. Duration and Income are derived values; they are computed once
// here and never set independently.
type TimerLog struct {
	ID              string
	CustomerID      string
	ProjectID       string
	TaskID          string // optional
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
	HourlyRate      float64
	Income          float64
	UserID          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTimerLog finalizes a session into a TimerLog. The open pause interval,
// if any, must already be folded into the timer's PausedDuration; the billable
// duration is (end - start) - paused, clamped to zero.
func NewTimerLog(id string, timer *ActiveTimer, endTime time.Time, hourlyRate float64) TimerLog {
	duration := endTime.Sub(timer.StartTime) - timer.PausedDuration
	if duration < 0 {
		duration = 0
	}
	seconds := int64(duration / time.Second)

	return TimerLog{
		ID:              id,
		CustomerID:      timer.CustomerID,
		ProjectID:       timer.ProjectID,
		TaskID:          timer.TaskID,
		Description:     timer.Description,
		StartTime:       timer.StartTime,
		EndTime:         endTime,
		DurationSeconds: seconds,
		HourlyRate:      hourlyRate,
		Income:          float64(seconds) / 3600 * hourlyRate,
		UserID:          timer.UserID,
		CreatedAt:       endTime,
		UpdatedAt:       endTime,
	}
}

// Duration returns the billable duration.
func (l TimerLog) Duration() time.Duration {
	return time.Duration(l.DurationSeconds) * time.Second
}
