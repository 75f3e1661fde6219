package sqlite

import (
	"context"
	"database/sql"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/store/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// slotID is the fixed key of the single active-timer row.
const slotID = 1

// Store persists the active timer in a single-row SQLite table.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the timer into the slot, or clears the slot when timer is nil.
func (s *Store) Save(ctx context.Context, timer *domain.ActiveTimer) error {
	if timer == nil {
		query := `DELETE FROM active_timer WHERE slot = ?`
		if _, err := s.db.ExecContext(ctx, query, slotID); err != nil {
			return errors.NewStorageError("clear active timer", err)
		}
		return nil
	}

	query := `
	INSERT INTO active_timer (slot, timer_id, customer_id, project_id, task_id, description, start_time, paused_at, paused_seconds, user_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(slot) DO UPDATE SET
		timer_id = excluded.timer_id,
		customer_id = excluded.customer_id,
		project_id = excluded.project_id,
		task_id = excluded.task_id,
		description = excluded.description,
		start_time = excluded.start_time,
		paused_at = excluded.paused_at,
		paused_seconds = excluded.paused_seconds,
		user_id = excluded.user_id`

	_, err := s.db.ExecContext(ctx, query,
		slotID,
		timer.ID,
		timer.CustomerID,
		timer.ProjectID,
		timer.TaskID,
		timer.Description,
		FormatTimeForDB(timer.StartTime),
		FormatTimePtrForDB(timer.PausedAt),
		int64(timer.PausedDuration/time.Second),
		timer.UserID,
	)
	if err != nil {
		return errors.NewStorageError("save active timer", err)
	}
	return nil
}

// Load reads the persisted timer. Returns nil without error when the slot
// is empty.
func (s *Store) Load(ctx context.Context) (*domain.ActiveTimer, error) {
	query := `
	SELECT timer_id, customer_id, project_id, task_id, description, start_time, paused_at, paused_seconds, user_id
	FROM active_timer
	WHERE slot = ?`

	row, err := scanActiveTimer(s.db.QueryRowContext(ctx, query, slotID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewStorageError("load active timer", err)
	}

	return &domain.ActiveTimer{
		ID:             row.TimerID,
		CustomerID:     row.CustomerID,
		ProjectID:      row.ProjectID,
		TaskID:         row.TaskID,
		Description:    row.Description,
		StartTime:      row.StartTime,
		PausedAt:       row.PausedAt,
		PausedDuration: time.Duration(row.PausedSeconds) * time.Second,
		UserID:         row.UserID,
	}, nil
}
