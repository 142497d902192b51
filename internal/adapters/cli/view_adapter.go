package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/courtstat/internal/ports/primary"
)

// ViewAdapter renders the aggregate views over committed reports.
type ViewAdapter struct {
	service primary.QueryService
	out     io.Writer
}

// NewViewAdapter creates a new ViewAdapter with the given service.
func NewViewAdapter(service primary.QueryService, out io.Writer) *ViewAdapter {
	return &ViewAdapter{
		service: service,
		out:     out,
	}
}

// FTSCSummary renders district-level FTSC aggregates.
func (a *ViewAdapter) FTSCSummary(ctx context.Context, filters primary.FTSCSummaryFilters) error {
	rows, err := a.service.FTSCSummary(ctx, filters)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No FTSC data found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-22s %-8s %9s %9s %9s %9s %7s\n",
		"DISTRICT", "PERIOD", "BALANCE", "NEW", "DISPOSED", "PENDING", ">5Y")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-22s %02d/%-5d %9g %9g %9g %9g %7g\n",
			r.DistrictName, r.Month, r.Year,
			r.BalanceTotal, r.NewTotal, r.DisposedTotal, r.PendingTotal, r.PendingOver5YTotal)
	}
	fmt.Fprintln(a.out)

	return nil
}

// SPCData renders per-court SPC figures.
func (a *ViewAdapter) SPCData(ctx context.Context, filters primary.SPCDataFilters) error {
	rows, err := a.service.SPCData(ctx, filters)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No SPC data found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-24s %-20s %-8s %9s %9s %9s %9s\n",
		"COURT", "DISTRICT", "PERIOD", "BALANCE", "NEW", "DISPOSED", "PENDING")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────────────")
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-24s %-20s %02d/%-5d %9g %9g %9g %9g\n",
			r.CourtName, r.DistrictName, r.Month, r.Year,
			r.BalanceTotal, r.NewTotal, r.DisposedTotal, r.PendingTotal)
	}
	fmt.Fprintln(a.out)

	return nil
}
