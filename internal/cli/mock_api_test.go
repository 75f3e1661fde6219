package cli

import (
	"context"
	"time"

	"timeclock/internal/api"
	"timeclock/internal/domain"
	"timeclock/internal/engine"
)

// mockAPI implements the api.API interface for testing
type mockAPI struct {
	timer   *domain.ActiveTimer
	elapsed time.Duration

	startErr    error
	pauseErr    error
	resumeErr   error
	describeErr error
	stopResult  *api.StopResult
	stopErr     error
	discardErr  error

	subscribers []engine.Subscriber
	calls       []string
}

func newMockAPI() *mockAPI {
	return &mockAPI{}
}

func (m *mockAPI) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *mockAPI) StartTimer(_ context.Context, customerID, projectID, taskID, description string) (*domain.ActiveTimer, error) {
	m.record("start")
	if m.startErr != nil {
		return nil, m.startErr
	}
	m.timer = domain.NewActiveTimer("mock-timer", customerID, projectID, taskID, description, "user-1", time.Now())
	m.elapsed = 0
	return m.timer.Clone(), nil
}

func (m *mockAPI) PauseTimer(context.Context) error {
	m.record("pause")
	if m.pauseErr != nil {
		return m.pauseErr
	}
	if m.timer != nil && !m.timer.IsPaused() {
		now := time.Now()
		m.timer.PausedAt = &now
	}
	return nil
}

func (m *mockAPI) ResumeTimer(context.Context) error {
	m.record("resume")
	if m.resumeErr != nil {
		return m.resumeErr
	}
	if m.timer != nil {
		m.timer.PausedAt = nil
	}
	return nil
}

func (m *mockAPI) UpdateDescription(_ context.Context, text string) error {
	m.record("describe")
	if m.describeErr != nil {
		return m.describeErr
	}
	if m.timer != nil {
		m.timer.Description = text
	}
	return nil
}

func (m *mockAPI) StopTimer(context.Context) (*api.StopResult, error) {
	m.record("stop")
	if m.stopResult != nil || m.stopErr != nil {
		m.timer = nil
		return m.stopResult, m.stopErr
	}
	if m.timer == nil {
		return nil, nil
	}
	m.timer = nil
	return nil, nil
}

func (m *mockAPI) DiscardTimer(context.Context) error {
	m.record("discard")
	if m.discardErr != nil {
		return m.discardErr
	}
	m.timer = nil
	return nil
}

func (m *mockAPI) CurrentTimer() (*domain.ActiveTimer, time.Duration) {
	return m.timer.Clone(), m.elapsed
}

func (m *mockAPI) State() domain.State {
	if m.timer == nil {
		return domain.StateIdle
	}
	return m.timer.State()
}

func (m *mockAPI) Subscribe(fn engine.Subscriber) func() {
	m.subscribers = append(m.subscribers, fn)
	fn(m.timer.Clone(), m.elapsed)
	return func() {}
}

func (m *mockAPI) Close() error {
	m.record("close")
	return nil
}
