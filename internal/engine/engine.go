package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"timeclock/internal/clock"
	"timeclock/internal/domain"
	"timeclock/internal/logging"
	"timeclock/internal/store"
	"timeclock/internal/validation"
)

// DefaultTickInterval is the period of the notify loop.
const DefaultTickInterval = time.Second

// Subscriber receives the current timer (or nil when idle) and the elapsed
// billable time, once per tick and once immediately on subscribe.
type Subscriber func(timer *domain.ActiveTimer, elapsed time.Duration)

// StartParams carries the inputs of a new session.
type StartParams struct {
	CustomerID  string
	ProjectID   string
	TaskID      string
	Description string
	UserID      string
}

// Options configures an Engine.
type Options struct {
	// TickInterval overrides the 1-second notify period. Zero means default.
	TickInterval time.Duration
	// Logger receives persistence failures and lifecycle events. Nil means
	// a no-op logger.
	Logger *zap.SugaredLogger
}

// Engine owns the single active timer: it persists it, derives elapsed time
// from wall-clock timestamps, runs the periodic notify loop, and finalizes a
// billable log on stop.
//
// All operations are safe for concurrent use; the mutex makes each mutation
// atomic with respect to the tick, so an observer never sees a half-updated
// timer.
type Engine struct {
	mu        sync.Mutex
	store     store.Store
	clock     clock.Clock
	log       *zap.SugaredLogger
	validator *validation.SessionValidator

	timer     *domain.ActiveTimer
	subs      map[int64]Subscriber
	nextSubID int64
	destroyed bool

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

// New creates an engine, adopts any persisted timer, and starts the tick
// loop. An adopted timer needs no special recovery handling: elapsed time is
// always derived from its persisted start time and pause bookkeeping.
func New(ctx context.Context, st store.Store, clk clock.Clock, opts Options) (*Engine, error) {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	timer, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		store:     st,
		clock:     clk,
		log:       logger,
		validator: validation.NewSessionValidator(),
		timer:     timer,
		subs:      make(map[int64]Subscriber),
		ticker:    time.NewTicker(interval),
		done:      make(chan struct{}),
	}

	if timer != nil {
		logger.Infow("recovered active timer",
			"timer_id", timer.ID,
			"state", timer.State(),
			"elapsed", timer.Elapsed(clk.Now()),
		)
	}

	go e.run()
	return e, nil
}

func (e *Engine) run() {
	for {
		select {
		case <-e.done:
			return
		case <-e.ticker.C:
			e.notify()
		}
	}
}

// Start begins a new session. An already active timer is discarded without
// producing a log: starting over abandons unsaved time. Invalid required
// fields are rejected before any state mutation. A persistence failure keeps
// the in-memory timer and is returned alongside it.
func (e *Engine) Start(ctx context.Context, params StartParams) (*domain.ActiveTimer, error) {
	if err := e.validator.ValidateStart(params.CustomerID, params.ProjectID, params.UserID, params.Description); err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return nil, nil
	}
	if e.timer != nil {
		e.log.Warnw("discarding active timer without a log", "timer_id", e.timer.ID)
	}
	timer := domain.NewActiveTimer(
		uuid.NewString(),
		params.CustomerID,
		params.ProjectID,
		params.TaskID,
		params.Description,
		params.UserID,
		e.clock.Now(),
	)
	e.timer = timer
	saveErr := e.save(ctx)
	e.mu.Unlock()

	e.notify()
	return timer.Clone(), saveErr
}

// Pause begins a pause interval. No-op when idle or already paused.
func (e *Engine) Pause(ctx context.Context) error {
	e.mu.Lock()
	if e.destroyed || e.timer == nil || e.timer.IsPaused() {
		e.mu.Unlock()
		return nil
	}
	e.timer.Pause(e.clock.Now())
	err := e.save(ctx)
	e.mu.Unlock()

	e.notify()
	return err
}

// Resume folds the open pause interval into the cumulative paused duration.
// No-op when idle or not paused.
func (e *Engine) Resume(ctx context.Context) error {
	e.mu.Lock()
	if e.destroyed || e.timer == nil || !e.timer.IsPaused() {
		e.mu.Unlock()
		return nil
	}
	e.timer.Resume(e.clock.Now())
	err := e.save(ctx)
	e.mu.Unlock()

	e.notify()
	return err
}

// UpdateDescription mutates the session's description. Timing is unaffected.
// No-op when idle.
func (e *Engine) UpdateDescription(ctx context.Context, text string) error {
	e.mu.Lock()
	if e.destroyed || e.timer == nil {
		e.mu.Unlock()
		return nil
	}
	e.timer.Description = text
	err := e.save(ctx)
	e.mu.Unlock()

	e.notify()
	return err
}

// Stop finalizes the session into a TimerLog and clears the timer slot.
// Returns nil when no timer is active. An open pause interval is folded in
// before the duration is computed, so a stop while paused never inflates the
// billable time. The engine does not persist the log; that is the caller's
// responsibility.
func (e *Engine) Stop(ctx context.Context, hourlyRate float64) (*domain.TimerLog, error) {
	if err := e.validator.ValidateHourlyRate(hourlyRate); err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.destroyed || e.timer == nil {
		e.mu.Unlock()
		return nil, nil
	}

	now := e.clock.Now()
	e.timer.Resume(now)
	log := domain.NewTimerLog(uuid.NewString(), e.timer, now, hourlyRate)
	e.timer = nil
	saveErr := e.save(ctx)
	e.mu.Unlock()

	e.log.Infow("stopped timer",
		"log_id", log.ID,
		"duration_seconds", log.DurationSeconds,
		"income", log.Income,
	)

	e.notify()
	return &log, saveErr
}

// Clear discards the active timer without producing a log.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	if e.destroyed || e.timer == nil {
		e.mu.Unlock()
		return nil
	}
	e.log.Infow("cleared active timer", "timer_id", e.timer.ID)
	e.timer = nil
	err := e.save(ctx)
	e.mu.Unlock()

	e.notify()
	return err
}

// Subscribe registers an observer and immediately invokes it once with the
// current snapshot, so new observers do not wait for the next tick. The
// returned function removes the observer and is idempotent.
func (e *Engine) Subscribe(fn Subscriber) func() {
	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	if !e.destroyed {
		e.subs[id] = fn
	}
	timer, elapsed := e.snapshotLocked()
	e.mu.Unlock()

	e.invoke(fn, timer, elapsed)

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// Current returns a copy of the active timer, or nil when idle.
func (e *Engine) Current() *domain.ActiveTimer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Clone()
}

// State returns the engine's current state.
func (e *Engine) State() domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer == nil {
		return domain.StateIdle
	}
	return e.timer.State()
}

// Elapsed returns the billable elapsed time of the active timer, zero when
// idle. It is recomputed from timestamps on every call.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, elapsed := e.snapshotLocked()
	return elapsed
}

// Destroy stops the tick loop and removes all subscribers. The engine must
// not be used afterwards; operations on a destroyed engine are no-ops.
func (e *Engine) Destroy() {
	e.stopOnce.Do(func() {
		e.mu.Lock()
		e.destroyed = true
		e.subs = make(map[int64]Subscriber)
		e.mu.Unlock()
		e.ticker.Stop()
		close(e.done)
	})
}

// save persists the current slot. The in-memory state is kept on failure;
// the user's clock keeps running even when a save briefly fails. Callers
// must hold e.mu.
func (e *Engine) save(ctx context.Context) error {
	if err := e.store.Save(ctx, e.timer); err != nil {
		e.log.Errorw("failed to persist timer state", "error", err)
		return err
	}
	return nil
}

func (e *Engine) snapshotLocked() (*domain.ActiveTimer, time.Duration) {
	if e.timer == nil {
		return nil, 0
	}
	return e.timer.Clone(), e.timer.Elapsed(e.clock.Now())
}

// notify delivers the current snapshot to all subscribers. Callbacks run
// outside the engine lock and panics are isolated per callback: a broken
// observer never stops the tick loop or other observers.
func (e *Engine) notify() {
	e.mu.Lock()
	timer, elapsed := e.snapshotLocked()
	subs := make([]Subscriber, 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	e.mu.Unlock()

	for _, fn := range subs {
		e.invoke(fn, timer, elapsed)
	}
}

func (e *Engine) invoke(fn Subscriber, timer *domain.ActiveTimer, elapsed time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorw("subscriber panicked", "panic", r)
		}
	}()
	fn(timer, elapsed)
}
