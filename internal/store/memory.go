package store

import (
	"context"
	"sync"

	"timeclock/internal/domain"
)

// Memory is an in-memory Store. It is used by the testing environment
// and by unit tests; nothing survives the process.
type Memory struct {
	mu    sync.Mutex
	timer *domain.ActiveTimer
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save stores a copy of the timer, or clears the slot when timer is nil.
func (m *Memory) Save(_ context.Context, timer *domain.ActiveTimer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer = timer.Clone()
	return nil
}

// Load returns a copy of the stored timer, or nil when the slot is empty.
func (m *Memory) Load(_ context.Context) (*domain.ActiveTimer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timer.Clone(), nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}
