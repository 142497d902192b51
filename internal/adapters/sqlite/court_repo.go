// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/courtstat/internal/ports/secondary"
)

// CourtRepository implements secondary.CourtRepository with SQLite.
type CourtRepository struct {
	db *sql.DB
}

// NewCourtRepository creates a new SQLite court repository.
func NewCourtRepository(db *sql.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

// GetByName retrieves a court by its exact name; (nil, nil) when absent.
func (r *CourtRepository) GetByName(ctx context.Context, name string) (*secondary.CourtRecord, error) {
	record := &secondary.CourtRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.name, c.type, c.district_id, d.name
		 FROM courts c
		 JOIN districts d ON c.district_id = d.id
		 WHERE c.name = ?`,
		name,
	).Scan(&record.ID, &record.Name, &record.Type, &record.DistrictID, &record.DistrictName)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}

	return record, nil
}

// ListByType retrieves all courts of one type, ordered by district display
// order then court name.
func (r *CourtRepository) ListByType(ctx context.Context, courtType string) ([]*secondary.CourtRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.type, c.district_id, d.name
		 FROM courts c
		 JOIN districts d ON c.district_id = d.id
		 WHERE c.type = ?
		 ORDER BY d.display_order, c.name`,
		courtType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	defer rows.Close()

	var courts []*secondary.CourtRecord
	for rows.Next() {
		record := &secondary.CourtRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Type, &record.DistrictID, &record.DistrictName); err != nil {
			return nil, fmt.Errorf("failed to scan court: %w", err)
		}
		courts = append(courts, record)
	}

	return courts, rows.Err()
}

// ListDistricts retrieves all districts in display order.
func (r *CourtRepository) ListDistricts(ctx context.Context) ([]*secondary.DistrictRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, display_order FROM districts ORDER BY display_order",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	defer rows.Close()

	var districts []*secondary.DistrictRecord
	for rows.Next() {
		record := &secondary.DistrictRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, record)
	}

	return districts, rows.Err()
}

// Ensure CourtRepository implements the interface
var _ secondary.CourtRepository = (*CourtRepository)(nil)
