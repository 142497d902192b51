package primary

import "context"

// QueryService exposes the aggregate views over committed reports.
type QueryService interface {
	// FTSCSummary queries district-level FTSC aggregates with optional
	// filters (zero values mean no filter).
	FTSCSummary(ctx context.Context, filters FTSCSummaryFilters) ([]*FTSCSummaryRow, error)

	// SPCData queries per-court SPC figures with optional filters.
	SPCData(ctx context.Context, filters SPCDataFilters) ([]*SPCDataRow, error)
}

// FTSCSummaryFilters narrow an FTSC summary query.
type FTSCSummaryFilters struct {
	DistrictName string
	Month        int
	Year         int
}

// SPCDataFilters narrow an SPC data query.
type SPCDataFilters struct {
	CourtName    string
	DistrictName string
	Month        int
	Year         int
}

// FTSCSummaryRow is one district-level summary row.
type FTSCSummaryRow struct {
	DistrictName string
	Month        int
	Year         int

	BalanceA, BalanceB, BalanceTotal    float64
	NewA, NewB, NewTotal                float64
	DisposedA, DisposedB, DisposedTotal float64
	PendingA, PendingB, PendingTotal    float64
	ConvictionsA, ConvictionsB          float64
	PendingOver5YTotal                  float64
}

// SPCDataRow is one per-court SPC row.
type SPCDataRow struct {
	CourtName    string
	DistrictName string
	Month        int
	Year         int

	BalanceA, BalanceB, BalanceTotal    float64
	NewA, NewB, NewTotal                float64
	DisposedA, DisposedB, DisposedTotal float64
	PendingA, PendingB, PendingTotal    float64
	ConvictionsA, ConvictionsB          float64
	PendingOver5YTotal                  float64
}
