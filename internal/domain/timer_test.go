package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActiveTimer(t *testing.T) {
	startTime := time.Now()

	result := NewActiveTimer("timer-1", "cust-1", "proj-1", "task-1", "write report", "user-1", startTime)

	assert.Equal(t, "timer-1", result.ID)
	assert.Equal(t, "cust-1", result.CustomerID)
	assert.Equal(t, "proj-1", result.ProjectID)
	assert.Equal(t, "task-1", result.TaskID)
	assert.Equal(t, "write report", result.Description)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, startTime, result.StartTime)
	assert.Nil(t, result.PausedAt)
	assert.Equal(t, time.Duration(0), result.PausedDuration)
	assert.Equal(t, StateRunning, result.State())
}

func TestActiveTimer_State(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		timer    *ActiveTimer
		expected State
	}{
		{
			name:     "running timer without pause mark",
			timer:    NewActiveTimer("t1", "c1", "p1", "", "", "u1", now),
			expected: StateRunning,
		},
		{
			name: "paused timer with pause mark",
			timer: &ActiveTimer{
				ID:         "t1",
				CustomerID: "c1",
				ProjectID:  "p1",
				UserID:     "u1",
				StartTime:  now.Add(-time.Minute),
				PausedAt:   &now,
			},
			expected: StatePaused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.timer.State())
			assert.Equal(t, tt.expected == StatePaused, tt.timer.IsPaused())
		})
	}
}

func TestActiveTimer_Elapsed(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timer    *ActiveTimer
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "running timer with no pauses",
			timer:    NewActiveTimer("t1", "c1", "p1", "", "", "u1", start),
			now:      start.Add(42 * time.Second),
			expected: 42 * time.Second,
		},
		{
			name: "running timer with accumulated pauses",
			timer: &ActiveTimer{
				StartTime:      start,
				PausedDuration: 10 * time.Second,
			},
			now:      start.Add(30 * time.Second),
			expected: 20 * time.Second,
		},
		{
			name: "paused timer freezes at pause start",
			timer: &ActiveTimer{
				StartTime: start,
				PausedAt:  timePtr(start.Add(15 * time.Second)),
			},
			now:      start.Add(60 * time.Second),
			expected: 15 * time.Second,
		},
		{
			name: "paused timer with prior pauses",
			timer: &ActiveTimer{
				StartTime:      start,
				PausedDuration: 5 * time.Second,
				PausedAt:       timePtr(start.Add(20 * time.Second)),
			},
			now:      start.Add(90 * time.Second),
			expected: 15 * time.Second,
		},
		{
			name: "clamped to zero when paused longer than elapsed",
			timer: &ActiveTimer{
				StartTime:      start,
				PausedDuration: time.Hour,
			},
			now:      start.Add(30 * time.Second),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.timer.Elapsed(tt.now))
		})
	}
}

func TestActiveTimer_ElapsedMonotonic(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	timer := NewActiveTimer("t1", "c1", "p1", "", "", "u1", start)

	previous := time.Duration(-1)
	for i := 0; i < 10; i++ {
		now := start.Add(time.Duration(i) * time.Second)
		elapsed := timer.Elapsed(now)
		assert.GreaterOrEqual(t, elapsed, previous)
		previous = elapsed
	}
}

func TestActiveTimer_PauseResume(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	timer := NewActiveTimer("t1", "c1", "p1", "", "", "u1", start)

	pauseAt := start.Add(5 * time.Second)
	timer.Pause(pauseAt)
	require.NotNil(t, timer.PausedAt)
	assert.Equal(t, pauseAt, *timer.PausedAt)
	assert.Equal(t, StatePaused, timer.State())

	// Pausing again is a no-op; the original pause mark is kept.
	timer.Pause(start.Add(8 * time.Second))
	assert.Equal(t, pauseAt, *timer.PausedAt)

	resumeAt := start.Add(12 * time.Second)
	timer.Resume(resumeAt)
	assert.Nil(t, timer.PausedAt)
	assert.Equal(t, 7*time.Second, timer.PausedDuration)
	assert.Equal(t, StateRunning, timer.State())

	// Resuming again is a no-op.
	timer.Resume(start.Add(20 * time.Second))
	assert.Equal(t, 7*time.Second, timer.PausedDuration)
}

func TestActiveTimer_Clone(t *testing.T) {
	start := time.Now()
	pausedAt := start.Add(time.Minute)
	timer := &ActiveTimer{
		ID:             "t1",
		CustomerID:     "c1",
		ProjectID:      "p1",
		UserID:         "u1",
		StartTime:      start,
		PausedAt:       &pausedAt,
		PausedDuration: 3 * time.Second,
	}

	copied := timer.Clone()
	require.NotNil(t, copied)
	assert.Equal(t, *timer, *copied)

	// Mutating the copy must not affect the original.
	*copied.PausedAt = start.Add(time.Hour)
	copied.Description = "changed"
	assert.Equal(t, pausedAt, *timer.PausedAt)
	assert.Empty(t, timer.Description)

	var nilTimer *ActiveTimer
	assert.Nil(t, nilTimer.Clone())
}

func TestActiveTimer_IsValid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		timer    *ActiveTimer
		expected bool
	}{
		{
			name:     "valid timer",
			timer:    NewActiveTimer("t1", "c1", "p1", "", "desc", "u1", now),
			expected: true,
		},
		{
			name:     "missing customer",
			timer:    NewActiveTimer("t1", "", "p1", "", "desc", "u1", now),
			expected: false,
		},
		{
			name:     "missing project",
			timer:    NewActiveTimer("t1", "c1", "", "", "desc", "u1", now),
			expected: false,
		},
		{
			name:     "missing user",
			timer:    NewActiveTimer("t1", "c1", "p1", "", "desc", "", now),
			expected: false,
		},
		{
			name:     "zero start time",
			timer:    NewActiveTimer("t1", "c1", "p1", "", "desc", "u1", time.Time{}),
			expected: false,
		},
		{
			name: "negative paused duration",
			timer: &ActiveTimer{
				ID:             "t1",
				CustomerID:     "c1",
				ProjectID:      "p1",
				UserID:         "u1",
				StartTime:      now,
				PausedDuration: -time.Second,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.timer.IsValid())
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
