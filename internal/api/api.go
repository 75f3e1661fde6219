package api

import (
	"context"
	"time"

	"timeclock/internal/billing"
	"timeclock/internal/domain"
	"timeclock/internal/engine"
	"timeclock/internal/rates"
)

// API is the in-process surface consumed by UI code. It bundles the timer
// engine with the external collaborators of a stop-and-save flow: the
// billing-rate resolver and the remote log sink.
type API interface {
	// Timer operations
	StartTimer(ctx context.Context, customerID, projectID, taskID, description string) (*domain.ActiveTimer, error)
	PauseTimer(ctx context.Context) error
	ResumeTimer(ctx context.Context) error
	UpdateDescription(ctx context.Context, text string) error
	StopTimer(ctx context.Context) (*StopResult, error)
	DiscardTimer(ctx context.Context) error

	// Observation
	CurrentTimer() (*domain.ActiveTimer, time.Duration)
	State() domain.State
	Subscribe(fn engine.Subscriber) func()

	// Teardown
	Close() error
}

// StopResult carries the outcome of a stop-and-save sequence. Log is always
// set when a session was stopped; Stored is set only when the remote
// submission succeeded.
type StopResult struct {
	Log    *domain.TimerLog
	Rate   float64
	Stored *billing.StoredLog
}

type apiImpl struct {
	engine   *engine.Engine
	resolver rates.Resolver
	sink     billing.Sink // nil disables remote submission
	userID   string
}

// New creates a new API instance. A nil sink disables remote submission;
// stopped logs are then only returned to the caller.
func New(eng *engine.Engine, resolver rates.Resolver, sink billing.Sink, userID string) API {
	return &apiImpl{
		engine:   eng,
		resolver: resolver,
		sink:     sink,
		userID:   userID,
	}
}

// StartTimer begins a new session for the configured user. Any session in
// flight is discarded without a log.
func (a *apiImpl) StartTimer(ctx context.Context, customerID, projectID, taskID, description string) (*domain.ActiveTimer, error) {
	return a.engine.Start(ctx, engine.StartParams{
		CustomerID:  customerID,
		ProjectID:   projectID,
		TaskID:      taskID,
		Description: description,
		UserID:      a.userID,
	})
}

func (a *apiImpl) PauseTimer(ctx context.Context) error {
	return a.engine.Pause(ctx)
}

func (a *apiImpl) ResumeTimer(ctx context.Context) error {
	return a.engine.Resume(ctx)
}

func (a *apiImpl) UpdateDescription(ctx context.Context, text string) error {
	return a.engine.UpdateDescription(ctx, text)
}

// StopTimer resolves the customer's hourly rate, finalizes the session, and
// submits the log to the billing service. A submission failure is returned
// together with the result: the local log is never lost, the caller decides
// how to surface the failure.
func (a *apiImpl) StopTimer(ctx context.Context) (*StopResult, error) {
	timer := a.engine.Current()
	if timer == nil {
		return nil, nil
	}

	rate := a.resolver.Resolve(timer.CustomerID)
	log, err := a.engine.Stop(ctx, rate)
	if err != nil {
		if log == nil {
			return nil, err
		}
		return &StopResult{Log: log, Rate: rate}, err
	}
	if log == nil {
		return nil, nil
	}

	result := &StopResult{Log: log, Rate: rate}
	if a.sink == nil {
		return result, nil
	}

	stored, err := a.sink.SubmitLog(ctx, *log)
	if err != nil {
		return result, err
	}
	result.Stored = stored
	return result, nil
}

func (a *apiImpl) DiscardTimer(ctx context.Context) error {
	return a.engine.Clear(ctx)
}

func (a *apiImpl) CurrentTimer() (*domain.ActiveTimer, time.Duration) {
	return a.engine.Current(), a.engine.Elapsed()
}

func (a *apiImpl) State() domain.State {
	return a.engine.State()
}

func (a *apiImpl) Subscribe(fn engine.Subscriber) func() {
	return a.engine.Subscribe(fn)
}

// Close tears down the engine's tick loop.
func (a *apiImpl) Close() error {
	a.engine.Destroy()
	return nil
}
