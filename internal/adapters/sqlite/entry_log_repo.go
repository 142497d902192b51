package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/courtstat/internal/ports/secondary"
)

// EntryLogRepository implements secondary.EntryLogRepository with SQLite.
type EntryLogRepository struct {
	db *sql.DB
}

// NewEntryLogRepository creates a new SQLite entry log repository.
func NewEntryLogRepository(db *sql.DB) *EntryLogRepository {
	return &EntryLogRepository{db: db}
}

// LogAction records an audit entry for a report key.
func (r *EntryLogRepository) LogAction(ctx context.Context, courtID int64, month, year int, action string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO entry_log (court_id, month, year, action) VALUES (?, ?, ?, ?)",
		courtID, month, year, action,
	)
	if err != nil {
		return fmt.Errorf("failed to write entry log: %w", err)
	}
	return nil
}

// Ensure EntryLogRepository implements the interface
var _ secondary.EntryLogRepository = (*EntryLogRepository)(nil)
