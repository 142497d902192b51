package app

import (
	"context"

	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/ports/primary"
	"github.com/example/courtstat/internal/ports/secondary"
)

// QueryServiceImpl implements the QueryService interface over the aggregate
// views.
type QueryServiceImpl struct {
	reportRepo secondary.ReportRepository
}

// NewQueryService creates a new QueryService with injected dependencies.
func NewQueryService(reportRepo secondary.ReportRepository) *QueryServiceImpl {
	return &QueryServiceImpl{reportRepo: reportRepo}
}

// FTSCSummary queries the FTSC district summary view.
func (s *QueryServiceImpl) FTSCSummary(ctx context.Context, filters primary.FTSCSummaryFilters) ([]*primary.FTSCSummaryRow, error) {
	rows, err := s.reportRepo.FTSCSummary(ctx, secondary.SummaryFilters{
		DistrictName: filters.DistrictName,
		Month:        filters.Month,
		Year:         filters.Year,
	})
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to query FTSC summary")
	}

	out := make([]*primary.FTSCSummaryRow, len(rows))
	for i, r := range rows {
		out[i] = &primary.FTSCSummaryRow{
			DistrictName:       r.DistrictName,
			Month:              r.Month,
			Year:               r.Year,
			BalanceA:           r.BalanceA,
			BalanceB:           r.BalanceB,
			BalanceTotal:       r.BalanceTotal,
			NewA:               r.NewA,
			NewB:               r.NewB,
			NewTotal:           r.NewTotal,
			DisposedA:          r.DisposedA,
			DisposedB:          r.DisposedB,
			DisposedTotal:      r.DisposedTotal,
			PendingA:           r.PendingA,
			PendingB:           r.PendingB,
			PendingTotal:       r.PendingTotal,
			ConvictionsA:       r.ConvictionsA,
			ConvictionsB:       r.ConvictionsB,
			PendingOver5YTotal: r.PendingOver5YTotal,
		}
	}
	return out, nil
}

// SPCData queries the SPC court data view.
func (s *QueryServiceImpl) SPCData(ctx context.Context, filters primary.SPCDataFilters) ([]*primary.SPCDataRow, error) {
	rows, err := s.reportRepo.SPCData(ctx, secondary.SPCFilters{
		CourtName:    filters.CourtName,
		DistrictName: filters.DistrictName,
		Month:        filters.Month,
		Year:         filters.Year,
	})
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to query SPC data")
	}

	out := make([]*primary.SPCDataRow, len(rows))
	for i, r := range rows {
		out[i] = &primary.SPCDataRow{
			CourtName:          r.CourtName,
			DistrictName:       r.DistrictName,
			Month:              r.Month,
			Year:               r.Year,
			BalanceA:           r.BalanceA,
			BalanceB:           r.BalanceB,
			BalanceTotal:       r.BalanceTotal,
			NewA:               r.NewA,
			NewB:               r.NewB,
			NewTotal:           r.NewTotal,
			DisposedA:          r.DisposedA,
			DisposedB:          r.DisposedB,
			DisposedTotal:      r.DisposedTotal,
			PendingA:           r.PendingA,
			PendingB:           r.PendingB,
			PendingTotal:       r.PendingTotal,
			ConvictionsA:       r.ConvictionsA,
			ConvictionsB:       r.ConvictionsB,
			PendingOver5YTotal: r.PendingOver5YTotal,
		}
	}
	return out, nil
}

// Ensure QueryServiceImpl implements the interface
var _ primary.QueryService = (*QueryServiceImpl)(nil)
