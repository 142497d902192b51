// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/courtstat/internal/ports/primary"
)

// EntryAdapter translates CLI operations to EntryService calls and renders
// step summaries. It depends only on the service interface, enabling easy
// testing with mocks.
type EntryAdapter struct {
	service primary.EntryService
	out     io.Writer
}

// NewEntryAdapter creates a new EntryAdapter with the given service.
func NewEntryAdapter(service primary.EntryService, out io.Writer) *EntryAdapter {
	return &EntryAdapter{
		service: service,
		out:     out,
	}
}

// SubmitBasic runs step 1 and prints the derived pending counts.
func (a *EntryAdapter) SubmitBasic(ctx context.Context, req primary.BasicMetricsRequest) error {
	resp, err := a.service.SubmitBasicMetrics(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Step 1 recorded for %s %02d/%d\n", resp.CourtName, resp.Month, resp.Year)
	fmt.Fprintf(a.out, "  Balance:  %g\n", resp.BalanceTotal)
	fmt.Fprintf(a.out, "  New:      %g\n", resp.NewTotal)
	fmt.Fprintf(a.out, "  Disposed: %g\n", resp.DisposedTotal)
	fmt.Fprintf(a.out, "  Pending:  %g (A: %g, B: %g)\n", resp.PendingTotal, resp.PendingA, resp.PendingB)
	fmt.Fprintln(a.out, "Next: submit the age breakdown with 'report step2'")
	return nil
}

// SubmitAges runs step 2 and prints the validated bucket totals.
func (a *EntryAdapter) SubmitAges(ctx context.Context, req primary.AgeBreakdownRequest) error {
	resp, err := a.service.SubmitAgeBreakdown(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Step 2 recorded for %s %02d/%d\n", resp.CourtName, resp.Month, resp.Year)
	fmt.Fprintf(a.out, "  Pendency buckets:  A %g, B %g\n", resp.TotalPendencyA, resp.TotalPendencyB)
	fmt.Fprintf(a.out, "  Disposal buckets:  A %g, B %g\n", resp.TotalDisposalA, resp.TotalDisposalB)
	fmt.Fprintln(a.out, "Next: submit additional metrics with 'report step3'")
	return nil
}

// SubmitExtra runs step 3 and prints the committed report summary.
func (a *EntryAdapter) SubmitExtra(ctx context.Context, req primary.AdditionalMetricsRequest) error {
	report, err := a.service.SubmitAdditionalMetrics(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Report committed for %s (%s, %s) %02d/%d\n",
		report.CourtName, report.CourtType, report.DistrictName, report.Month, report.Year)
	fmt.Fprintf(a.out, "  Balance:     %g (A: %g, B: %g)\n", report.BalanceTotal, report.BalanceA, report.BalanceB)
	fmt.Fprintf(a.out, "  New:         %g (A: %g, B: %g)\n", report.NewTotal, report.NewA, report.NewB)
	fmt.Fprintf(a.out, "  Disposed:    %g (A: %g, B: %g)\n", report.DisposedTotal, report.DisposedA, report.DisposedB)
	fmt.Fprintf(a.out, "  Pending:     %g (A: %g, B: %g)\n", report.PendingTotal, report.PendingA, report.PendingB)
	fmt.Fprintf(a.out, "  Convictions: A %g, B %g\n", report.ConvictionsA, report.ConvictionsB)
	return nil
}

// Exists prints whether a committed report exists for the key.
func (a *EntryAdapter) Exists(ctx context.Context, courtName string, month, year int) error {
	resp, err := a.service.CheckExists(ctx, courtName, month, year)
	if err != nil {
		return err
	}

	if resp.Exists {
		fmt.Fprintf(a.out, "Data exists for %s %02d/%d\n", resp.CourtName, resp.Month, resp.Year)
	} else {
		fmt.Fprintf(a.out, "No data for %s %02d/%d\n", resp.CourtName, resp.Month, resp.Year)
	}
	return nil
}

// Delete removes a committed report.
func (a *EntryAdapter) Delete(ctx context.Context, courtName string, month, year int) error {
	if err := a.service.DeleteReport(ctx, courtName, month, year); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted report for %s %02d/%d\n", courtName, month, year)
	return nil
}

// Pending lists in-flight partial entries.
func (a *EntryAdapter) Pending(ctx context.Context) error {
	entries, err := a.service.PendingEntries(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No pending entries")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-30s %-8s %-10s %s\n", "COURT", "PERIOD", "PROGRESS", "STARTED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		progress := "step 1"
		if e.Step2Done {
			progress = "step 2"
		}
		fmt.Fprintf(a.out, "%-30s %02d/%-5d %-10s %s\n",
			e.CourtName, e.Month, e.Year, progress, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Prune discards partial entries older than age.
func (a *EntryAdapter) Prune(ctx context.Context, age time.Duration) error {
	n, err := a.service.PruneStale(ctx, age)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Pruned %d stale entries\n", n)
	return nil
}
