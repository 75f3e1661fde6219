package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// scanActiveTimer scans the active timer row from a database row.
func scanActiveTimer(scanner Scanner) (*activeTimerRow, error) {
	row := &activeTimerRow{}
	var startTime string
	var pausedAt sql.NullString

	err := scanner.Scan(
		&row.TimerID,
		&row.CustomerID,
		&row.ProjectID,
		&row.TaskID,
		&row.Description,
		&startTime,
		&pausedAt,
		&row.PausedSeconds,
		&row.UserID,
	)
	if err != nil {
		return nil, err
	}

	row.StartTime, err = ParseTimeFromDB(startTime)
	if err != nil {
		return nil, err
	}

	if pausedAt.Valid {
		parsed, err := ParseTimeFromDB(pausedAt.String)
		if err != nil {
			return nil, err
		}
		row.PausedAt = &parsed
	}

	return row, nil
}
