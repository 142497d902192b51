// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the storage backends.
package secondary

import "context"

// CourtRepository defines the secondary port for the read-only court
// directory.
type CourtRepository interface {
	// GetByName retrieves a court by its exact name.
	// Returns (nil, nil) when no court has that name.
	GetByName(ctx context.Context, name string) (*CourtRecord, error)

	// ListByType retrieves all courts of the given type ("FTSC" or "SPC"),
	// ordered by district display order, then court name.
	ListByType(ctx context.Context, courtType string) ([]*CourtRecord, error)

	// ListDistricts retrieves all districts ordered by display order.
	ListDistricts(ctx context.Context) ([]*DistrictRecord, error)
}

// CourtRecord represents a court as stored in persistence.
type CourtRecord struct {
	ID           int64
	Name         string
	Type         string
	DistrictID   int64
	DistrictName string
}

// DistrictRecord represents a district as stored in persistence.
type DistrictRecord struct {
	ID           int64
	Name         string
	DisplayOrder int
}

// ReportRepository defines the secondary port for committed monthly reports.
type ReportRepository interface {
	// Exists reports whether a committed report exists for the key.
	Exists(ctx context.Context, courtID int64, month, year int) (bool, error)

	// Insert persists a complete monthly report. The backend enforces a
	// unique-key constraint on (court_id, month, year) as defense in depth
	// beyond the orchestrator's pre-check.
	Insert(ctx context.Context, rec *MonthlyReportRecord) error

	// Get retrieves the committed report for the key.
	// Returns (nil, nil) when none exists.
	Get(ctx context.Context, courtID int64, month, year int) (*MonthlyReportRecord, error)

	// Delete removes the committed report for the key.
	Delete(ctx context.Context, courtID int64, month, year int) error

	// FTSCSummary queries the FTSC district summary view.
	FTSCSummary(ctx context.Context, filters SummaryFilters) ([]*FTSCSummaryRow, error)

	// SPCData queries the SPC court data view.
	SPCData(ctx context.Context, filters SPCFilters) ([]*SPCDataRow, error)
}

// MonthlyReportRecord represents a committed monthly report row. Column-flat:
// every per-category value and derived total maps to one field.
type MonthlyReportRecord struct {
	CourtID int64
	Month   int
	Year    int

	BalanceA     float64
	BalanceB     float64
	BalanceTotal float64

	NewA     float64
	NewB     float64
	NewTotal float64

	ContestedA     float64
	ContestedB     float64
	ContestedTotal float64

	DisposedA     float64
	DisposedB     float64
	DisposedTotal float64

	PendingA     float64
	PendingB     float64
	PendingTotal float64

	Disposal5YA     float64
	Disposal5YB     float64
	Disposal5YTotal float64

	PendingOver5YA     float64
	PendingOver5YB     float64
	PendingOver5YTotal float64

	PendingLess2MA  float64
	PendingLess2MB  float64
	Pending2To12MA  float64
	Pending2To12MB  float64
	Pending1To5YA   float64
	Pending1To5YB   float64
	PendingBeyond5YA float64
	PendingBeyond5YB float64
	TotalPendencyA  float64
	TotalPendencyB  float64

	DisposalWithin2MA  float64
	DisposalWithin2MB  float64
	Disposal2To12MA    float64
	Disposal2To12MB    float64
	DisposalBeyond12MA float64
	DisposalBeyond12MB float64
	TotalDisposalA     float64
	TotalDisposalB     float64

	ConvictionsA float64
	ConvictionsB float64
}

// SummaryFilters contains the optional filters for the FTSC summary view.
// Zero values mean "no filter".
type SummaryFilters struct {
	DistrictName string
	Month        int
	Year         int
}

// SPCFilters contains the optional filters for the SPC court data view.
// Zero values mean "no filter".
type SPCFilters struct {
	CourtName    string
	DistrictName string
	Month        int
	Year         int
}

// FTSCSummaryRow is one row of the FTSC district summary view: district-level
// aggregates per reporting period.
type FTSCSummaryRow struct {
	DistrictName string
	DisplayOrder int
	Month        int
	Year         int

	BalanceA, BalanceB, BalanceTotal    float64
	NewA, NewB, NewTotal                float64
	DisposedA, DisposedB, DisposedTotal float64
	PendingA, PendingB, PendingTotal    float64
	ConvictionsA, ConvictionsB          float64
	PendingOver5YTotal                  float64
}

// SPCDataRow is one row of the SPC court data view: per-court figures with
// the owning district.
type SPCDataRow struct {
	CourtName    string
	DistrictName string
	DisplayOrder int
	Month        int
	Year         int

	BalanceA, BalanceB, BalanceTotal    float64
	NewA, NewB, NewTotal                float64
	DisposedA, DisposedB, DisposedTotal float64
	PendingA, PendingB, PendingTotal    float64
	ConvictionsA, ConvictionsB          float64
	PendingOver5YTotal                  float64
}
