package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/courtstat/internal/ports/secondary"
)

// ReportRepository implements secondary.ReportRepository with SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = `court_id, month, year,
	balance_a, balance_b, balance_total,
	new_a, new_b, new_total,
	contested_a, contested_b, contested_total,
	disposed_a, disposed_b, disposed_total,
	pending_a, pending_b, pending_total,
	disposal_5y_a, disposal_5y_b, disposal_5y_total,
	pending_over_5y_a, pending_over_5y_b, pending_over_5y_total,
	pending_less_2m_a, pending_less_2m_b,
	pending_2_12m_a, pending_2_12m_b,
	pending_12m_5y_a, pending_12m_5y_b,
	pending_beyond_5y_a, pending_beyond_5y_b,
	total_pendency_a, total_pendency_b,
	disposal_within_2m_a, disposal_within_2m_b,
	disposal_2_12m_a, disposal_2_12m_b,
	disposal_beyond_12m_a, disposal_beyond_12m_b,
	total_disposal_a, total_disposal_b,
	convictions_a, convictions_b`

// reportArgs flattens a record into the argument order of reportColumns.
func reportArgs(rec *secondary.MonthlyReportRecord) []any {
	return []any{
		rec.CourtID, rec.Month, rec.Year,
		rec.BalanceA, rec.BalanceB, rec.BalanceTotal,
		rec.NewA, rec.NewB, rec.NewTotal,
		rec.ContestedA, rec.ContestedB, rec.ContestedTotal,
		rec.DisposedA, rec.DisposedB, rec.DisposedTotal,
		rec.PendingA, rec.PendingB, rec.PendingTotal,
		rec.Disposal5YA, rec.Disposal5YB, rec.Disposal5YTotal,
		rec.PendingOver5YA, rec.PendingOver5YB, rec.PendingOver5YTotal,
		rec.PendingLess2MA, rec.PendingLess2MB,
		rec.Pending2To12MA, rec.Pending2To12MB,
		rec.Pending1To5YA, rec.Pending1To5YB,
		rec.PendingBeyond5YA, rec.PendingBeyond5YB,
		rec.TotalPendencyA, rec.TotalPendencyB,
		rec.DisposalWithin2MA, rec.DisposalWithin2MB,
		rec.Disposal2To12MA, rec.Disposal2To12MB,
		rec.DisposalBeyond12MA, rec.DisposalBeyond12MB,
		rec.TotalDisposalA, rec.TotalDisposalB,
		rec.ConvictionsA, rec.ConvictionsB,
	}
}

// scanReport scans a full report row in reportColumns order.
func scanReport(scanner interface{ Scan(dest ...any) error }) (*secondary.MonthlyReportRecord, error) {
	rec := &secondary.MonthlyReportRecord{}
	err := scanner.Scan(
		&rec.CourtID, &rec.Month, &rec.Year,
		&rec.BalanceA, &rec.BalanceB, &rec.BalanceTotal,
		&rec.NewA, &rec.NewB, &rec.NewTotal,
		&rec.ContestedA, &rec.ContestedB, &rec.ContestedTotal,
		&rec.DisposedA, &rec.DisposedB, &rec.DisposedTotal,
		&rec.PendingA, &rec.PendingB, &rec.PendingTotal,
		&rec.Disposal5YA, &rec.Disposal5YB, &rec.Disposal5YTotal,
		&rec.PendingOver5YA, &rec.PendingOver5YB, &rec.PendingOver5YTotal,
		&rec.PendingLess2MA, &rec.PendingLess2MB,
		&rec.Pending2To12MA, &rec.Pending2To12MB,
		&rec.Pending1To5YA, &rec.Pending1To5YB,
		&rec.PendingBeyond5YA, &rec.PendingBeyond5YB,
		&rec.TotalPendencyA, &rec.TotalPendencyB,
		&rec.DisposalWithin2MA, &rec.DisposalWithin2MB,
		&rec.Disposal2To12MA, &rec.Disposal2To12MB,
		&rec.DisposalBeyond12MA, &rec.DisposalBeyond12MB,
		&rec.TotalDisposalA, &rec.TotalDisposalB,
		&rec.ConvictionsA, &rec.ConvictionsB,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Exists reports whether a committed report exists for the key.
func (r *ReportRepository) Exists(ctx context.Context, courtID int64, month, year int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM court_monthly_data WHERE court_id = ? AND month = ? AND year = ?)",
		courtID, month, year,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	return exists, nil
}

// Insert persists a complete monthly report. The unique key on
// (court_id, month, year) rejects duplicates at the storage layer.
func (r *ReportRepository) Insert(ctx context.Context, rec *secondary.MonthlyReportRecord) error {
	query := "INSERT INTO court_monthly_data (" + reportColumns + ") VALUES (" + placeholders(44) + ")"
	if _, err := r.db.ExecContext(ctx, query, reportArgs(rec)...); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// Get retrieves the committed report for the key; (nil, nil) when absent.
func (r *ReportRepository) Get(ctx context.Context, courtID int64, month, year int) (*secondary.MonthlyReportRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reportColumns+" FROM court_monthly_data WHERE court_id = ? AND month = ? AND year = ?",
		courtID, month, year,
	)

	rec, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return rec, nil
}

// Delete removes the committed report for the key.
func (r *ReportRepository) Delete(ctx context.Context, courtID int64, month, year int) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM court_monthly_data WHERE court_id = ? AND month = ? AND year = ?",
		courtID, month, year,
	)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// FTSCSummary queries the FTSC district summary view with optional filters.
func (r *ReportRepository) FTSCSummary(ctx context.Context, filters secondary.SummaryFilters) ([]*secondary.FTSCSummaryRow, error) {
	query := `SELECT district_name, display_order, month, year,
		balance_a, balance_b, balance_total,
		new_a, new_b, new_total,
		disposed_a, disposed_b, disposed_total,
		pending_a, pending_b, pending_total,
		convictions_a, convictions_b, pending_over_5y_total
		FROM ftsc_district_summary WHERE 1=1`
	args := []any{}

	if filters.DistrictName != "" {
		query += " AND district_name = ?"
		args = append(args, filters.DistrictName)
	}
	if filters.Month != 0 {
		query += " AND month = ?"
		args = append(args, filters.Month)
	}
	if filters.Year != 0 {
		query += " AND year = ?"
		args = append(args, filters.Year)
	}

	query += " ORDER BY display_order, year, month"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query FTSC summary: %w", err)
	}
	defer rows.Close()

	var out []*secondary.FTSCSummaryRow
	for rows.Next() {
		row := &secondary.FTSCSummaryRow{}
		if err := rows.Scan(
			&row.DistrictName, &row.DisplayOrder, &row.Month, &row.Year,
			&row.BalanceA, &row.BalanceB, &row.BalanceTotal,
			&row.NewA, &row.NewB, &row.NewTotal,
			&row.DisposedA, &row.DisposedB, &row.DisposedTotal,
			&row.PendingA, &row.PendingB, &row.PendingTotal,
			&row.ConvictionsA, &row.ConvictionsB, &row.PendingOver5YTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan FTSC summary row: %w", err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// SPCData queries the SPC court data view with optional filters.
func (r *ReportRepository) SPCData(ctx context.Context, filters secondary.SPCFilters) ([]*secondary.SPCDataRow, error) {
	query := `SELECT court_name, district_name, display_order, month, year,
		balance_a, balance_b, balance_total,
		new_a, new_b, new_total,
		disposed_a, disposed_b, disposed_total,
		pending_a, pending_b, pending_total,
		convictions_a, convictions_b, pending_over_5y_total
		FROM spc_court_data WHERE 1=1`
	args := []any{}

	if filters.CourtName != "" {
		query += " AND court_name = ?"
		args = append(args, filters.CourtName)
	}
	if filters.DistrictName != "" {
		query += " AND district_name = ?"
		args = append(args, filters.DistrictName)
	}
	if filters.Month != 0 {
		query += " AND month = ?"
		args = append(args, filters.Month)
	}
	if filters.Year != 0 {
		query += " AND year = ?"
		args = append(args, filters.Year)
	}

	query += " ORDER BY display_order, court_name, year, month"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query SPC data: %w", err)
	}
	defer rows.Close()

	var out []*secondary.SPCDataRow
	for rows.Next() {
		row := &secondary.SPCDataRow{}
		if err := rows.Scan(
			&row.CourtName, &row.DistrictName, &row.DisplayOrder, &row.Month, &row.Year,
			&row.BalanceA, &row.BalanceB, &row.BalanceTotal,
			&row.NewA, &row.NewB, &row.NewTotal,
			&row.DisposedA, &row.DisposedB, &row.DisposedTotal,
			&row.PendingA, &row.PendingB, &row.PendingTotal,
			&row.ConvictionsA, &row.ConvictionsB, &row.PendingOver5YTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan SPC data row: %w", err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// placeholders returns n comma-separated '?' markers.
func placeholders(n int) string {
	out := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		out = append(out, '?')
	}
	return string(out)
}

// Ensure ReportRepository implements the interface
var _ secondary.ReportRepository = (*ReportRepository)(nil)
