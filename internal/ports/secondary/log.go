package secondary

import "context"

// EntryLogRepository defines the secondary port for the durable audit trail
// of report commits and deletions.
type EntryLogRepository interface {
	// LogAction records an action ("insert" or "delete") against a report key.
	LogAction(ctx context.Context, courtID int64, month, year int, action string) error
}
