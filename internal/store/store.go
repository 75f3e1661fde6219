package store

import (
	"context"

	"timeclock/internal/domain"
)

// Store persists the single active timer across process restarts.
//
// Save with a nil timer clears the slot. Load returns nil without error
// when no timer is persisted.
type Store interface {
	Save(ctx context.Context, timer *domain.ActiveTimer) error
	Load(ctx context.Context) (*domain.ActiveTimer, error)
	Close() error
}
