// Package app implements the primary ports: the data-entry workflow
// orchestrator and the directory/query services.
package app

import (
	"context"
	"time"

	"github.com/example/courtstat/internal/core/entry"
	"github.com/example/courtstat/internal/core/metrics"
	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/models"
	"github.com/example/courtstat/internal/ports/primary"
	"github.com/example/courtstat/internal/ports/secondary"
)

// EntryServiceImpl implements the EntryService interface. It sequences the
// arithmetic validator against the staged-entry store and commits to the
// report repository once all three steps have validated.
type EntryServiceImpl struct {
	courtRepo  secondary.CourtRepository
	reportRepo secondary.ReportRepository
	logRepo    secondary.EntryLogRepository
	store      *entry.Store
}

// NewEntryService creates a new EntryService with injected dependencies.
func NewEntryService(
	courtRepo secondary.CourtRepository,
	reportRepo secondary.ReportRepository,
	logRepo secondary.EntryLogRepository,
	store *entry.Store,
) *EntryServiceImpl {
	return &EntryServiceImpl{
		courtRepo:  courtRepo,
		reportRepo: reportRepo,
		logRepo:    logRepo,
		store:      store,
	}
}

// resolveCourt looks up a court by name, mapping absence and repository
// failures onto the workflow taxonomy.
func (s *EntryServiceImpl) resolveCourt(ctx context.Context, name string) (*secondary.CourtRecord, error) {
	court, err := s.courtRepo.GetByName(ctx, name)
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to look up court %q", name)
	}
	if court == nil {
		return nil, workflow.Errorf(workflow.KindEntityNotFound, "court %q not found", name)
	}
	return court, nil
}

// SubmitBasicMetrics runs entry step 1.
func (s *EntryServiceImpl) SubmitBasicMetrics(ctx context.Context, req primary.BasicMetricsRequest) (*primary.BasicMetricsResponse, error) {
	if err := metrics.ValidatePeriod(req.Month, req.Year); err != nil {
		return nil, err
	}

	court, err := s.resolveCourt(ctx, req.CourtName)
	if err != nil {
		return nil, err
	}

	key := entry.Key{CourtID: court.ID, Month: req.Month, Year: req.Year}
	release := s.store.Acquire(key)
	defer release()

	exists, err := s.reportRepo.Exists(ctx, court.ID, req.Month, req.Year)
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to check existing data")
	}
	if exists {
		return nil, workflow.Errorf(workflow.KindDuplicateEntry,
			"data already exists for %s - %d/%d; delete it first to re-enter", court.Name, req.Month, req.Year)
	}

	basic, err := metrics.ComputeBasicMetrics(metrics.BasicInput{
		Balance:  models.Pair{A: req.BalanceA, B: req.BalanceB},
		New:      models.Pair{A: req.NewA, B: req.NewB},
		Disposed: models.Pair{A: req.DisposedA, B: req.DisposedB},
	})
	if err != nil {
		return nil, err
	}

	s.store.Begin(key, court.Name, basic)

	return &primary.BasicMetricsResponse{
		CourtName:     court.Name,
		Month:         req.Month,
		Year:          req.Year,
		PendingA:      basic.Pending.A,
		PendingB:      basic.Pending.B,
		PendingTotal:  basic.Pending.Total(),
		BalanceTotal:  basic.Balance.Total(),
		NewTotal:      basic.New.Total(),
		DisposedTotal: basic.Disposed.Total(),
	}, nil
}

// SubmitAgeBreakdown runs entry step 2.
func (s *EntryServiceImpl) SubmitAgeBreakdown(ctx context.Context, req primary.AgeBreakdownRequest) (*primary.AgeBreakdownResponse, error) {
	court, err := s.resolveCourt(ctx, req.CourtName)
	if err != nil {
		return nil, err
	}

	key := entry.Key{CourtID: court.ID, Month: req.Month, Year: req.Year}
	release := s.store.Acquire(key)
	defer release()

	partial, ok := s.store.Lookup(key)
	if !ok || !partial.Step1Done {
		return nil, workflow.Errorf(workflow.KindStepOrder,
			"step 1 (basic metrics) must be completed first for %s - %d/%d", court.Name, req.Month, req.Year)
	}

	// Validate against the step-1 anchors before mutating the partial entry.
	ages, err := metrics.ComputeAgeBreakdown(partial.Basic.Pending, partial.Basic.Disposed, metrics.AgeInput{
		PendingUnder2M:    models.Pair{A: req.PendingLess2MA, B: req.PendingLess2MB},
		Pending2To12M:     models.Pair{A: req.Pending2To12MA, B: req.Pending2To12MB},
		Pending1To5Y:      models.Pair{A: req.Pending1To5YA, B: req.Pending1To5YB},
		PendingBeyond5Y:   models.Pair{A: req.PendingBeyond5YA, B: req.PendingBeyond5YB},
		DisposedWithin2M:  models.Pair{A: req.DisposalWithin2MA, B: req.DisposalWithin2MB},
		Disposed2To12M:    models.Pair{A: req.Disposal2To12MA, B: req.Disposal2To12MB},
		DisposedBeyond12M: models.Pair{A: req.DisposalBeyond12MA, B: req.DisposalBeyond12MB},
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Advance(key, ages); err != nil {
		return nil, err
	}

	return &primary.AgeBreakdownResponse{
		CourtName:      court.Name,
		Month:          req.Month,
		Year:           req.Year,
		TotalPendencyA: ages.TotalPendency.A,
		TotalPendencyB: ages.TotalPendency.B,
		TotalDisposalA: ages.TotalDisposal.A,
		TotalDisposalB: ages.TotalDisposal.B,
	}, nil
}

// SubmitAdditionalMetrics runs entry step 3 and commits the report.
func (s *EntryServiceImpl) SubmitAdditionalMetrics(ctx context.Context, req primary.AdditionalMetricsRequest) (*primary.CompletedReport, error) {
	court, err := s.resolveCourt(ctx, req.CourtName)
	if err != nil {
		return nil, err
	}

	key := entry.Key{CourtID: court.ID, Month: req.Month, Year: req.Year}
	release := s.store.Acquire(key)
	defer release()

	partial, ok := s.store.Lookup(key)
	if !ok {
		return nil, workflow.Errorf(workflow.KindStepOrder,
			"step 1 (basic metrics) must be completed first for %s - %d/%d", court.Name, req.Month, req.Year)
	}
	if !partial.Step2Done {
		return nil, workflow.Errorf(workflow.KindStepOrder,
			"step 2 (age breakdowns) must be completed first for %s - %d/%d", court.Name, req.Month, req.Year)
	}

	extra, err := metrics.ComputeAdditionalMetrics(partial.Basic.Pending, partial.Basic.Disposed, metrics.ExtraInput{
		Contested:        models.Pair{A: req.ContestedA, B: req.ContestedB},
		DisposedWithin5Y: models.Pair{A: req.Disposal5YA, B: req.Disposal5YB},
		PendingOver5Y:    models.Pair{A: req.PendingOver5YA, B: req.PendingOver5YB},
		Convictions:      models.Pair{A: req.ConvictionsA, B: req.ConvictionsB},
	})
	if err != nil {
		return nil, err
	}

	merged, err := s.store.Finalize(key, extra)
	if err != nil {
		return nil, err
	}

	record := reportToRecord(merged.Report())
	if err := s.reportRepo.Insert(ctx, record); err != nil {
		// The partial entry is deliberately kept: the caller may retry
		// step 3 without re-entering validated data.
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to save report")
	}

	s.store.Discard(key)

	// Best-effort audit; the commit is already durable.
	_ = s.logRepo.LogAction(ctx, court.ID, req.Month, req.Year, "insert")

	report := merged.Report()
	return &primary.CompletedReport{
		CourtName:     court.Name,
		CourtType:     court.Type,
		DistrictName:  court.DistrictName,
		Month:         req.Month,
		Year:          req.Year,
		BalanceA:      report.Basic.Balance.A,
		BalanceB:      report.Basic.Balance.B,
		BalanceTotal:  report.Basic.Balance.Total(),
		NewA:          report.Basic.New.A,
		NewB:          report.Basic.New.B,
		NewTotal:      report.Basic.New.Total(),
		DisposedA:     report.Basic.Disposed.A,
		DisposedB:     report.Basic.Disposed.B,
		DisposedTotal: report.Basic.Disposed.Total(),
		PendingA:      report.Basic.Pending.A,
		PendingB:      report.Basic.Pending.B,
		PendingTotal:  report.Basic.Pending.Total(),
		ConvictionsA:  report.Extra.Convictions.A,
		ConvictionsB:  report.Extra.Convictions.B,
	}, nil
}

// CheckExists reports whether a committed report exists for the key.
func (s *EntryServiceImpl) CheckExists(ctx context.Context, courtName string, month, year int) (*primary.ExistsResponse, error) {
	court, err := s.resolveCourt(ctx, courtName)
	if err != nil {
		return nil, err
	}

	exists, err := s.reportRepo.Exists(ctx, court.ID, month, year)
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to check existing data")
	}

	return &primary.ExistsResponse{
		CourtName: court.Name,
		Month:     month,
		Year:      year,
		Exists:    exists,
	}, nil
}

// DeleteReport removes a committed report after verifying one exists.
func (s *EntryServiceImpl) DeleteReport(ctx context.Context, courtName string, month, year int) error {
	court, err := s.resolveCourt(ctx, courtName)
	if err != nil {
		return err
	}

	exists, err := s.reportRepo.Exists(ctx, court.ID, month, year)
	if err != nil {
		return workflow.Wrap(workflow.KindStorage, err, "failed to check existing data")
	}
	if !exists {
		return workflow.Errorf(workflow.KindNotFound,
			"no data found to delete for %s - %d/%d", court.Name, month, year)
	}

	if err := s.reportRepo.Delete(ctx, court.ID, month, year); err != nil {
		return workflow.Wrap(workflow.KindStorage, err, "failed to delete report")
	}

	_ = s.logRepo.LogAction(ctx, court.ID, month, year, "delete")

	return nil
}

// PendingEntries lists in-flight partial entries.
func (s *EntryServiceImpl) PendingEntries(ctx context.Context) ([]*primary.PendingEntry, error) {
	partials := s.store.List()
	out := make([]*primary.PendingEntry, len(partials))
	for i, p := range partials {
		out[i] = &primary.PendingEntry{
			CourtName: p.CourtName,
			Month:     p.Month,
			Year:      p.Year,
			Step1Done: p.Step1Done,
			Step2Done: p.Step2Done,
			CreatedAt: p.CreatedAt,
		}
	}
	return out, nil
}

// PruneStale discards partial entries older than age.
func (s *EntryServiceImpl) PruneStale(ctx context.Context, age time.Duration) (int, error) {
	return s.store.PruneOlderThan(age), nil
}

// reportToRecord flattens a domain report into the column-flat storage record.
func reportToRecord(r models.MonthlyReport) *secondary.MonthlyReportRecord {
	return &secondary.MonthlyReportRecord{
		CourtID: r.CourtID,
		Month:   r.Month,
		Year:    r.Year,

		BalanceA:     r.Basic.Balance.A,
		BalanceB:     r.Basic.Balance.B,
		BalanceTotal: r.Basic.Balance.Total(),

		NewA:     r.Basic.New.A,
		NewB:     r.Basic.New.B,
		NewTotal: r.Basic.New.Total(),

		ContestedA:     r.Extra.Contested.A,
		ContestedB:     r.Extra.Contested.B,
		ContestedTotal: r.Extra.Contested.Total(),

		DisposedA:     r.Basic.Disposed.A,
		DisposedB:     r.Basic.Disposed.B,
		DisposedTotal: r.Basic.Disposed.Total(),

		PendingA:     r.Basic.Pending.A,
		PendingB:     r.Basic.Pending.B,
		PendingTotal: r.Basic.Pending.Total(),

		Disposal5YA:     r.Extra.DisposedWithin5Y.A,
		Disposal5YB:     r.Extra.DisposedWithin5Y.B,
		Disposal5YTotal: r.Extra.DisposedWithin5Y.Total(),

		PendingOver5YA:     r.Extra.PendingOver5Y.A,
		PendingOver5YB:     r.Extra.PendingOver5Y.B,
		PendingOver5YTotal: r.Extra.PendingOver5Y.Total(),

		PendingLess2MA:   r.Ages.PendingUnder2M.A,
		PendingLess2MB:   r.Ages.PendingUnder2M.B,
		Pending2To12MA:   r.Ages.Pending2To12M.A,
		Pending2To12MB:   r.Ages.Pending2To12M.B,
		Pending1To5YA:    r.Ages.Pending1To5Y.A,
		Pending1To5YB:    r.Ages.Pending1To5Y.B,
		PendingBeyond5YA: r.Ages.PendingBeyond5Y.A,
		PendingBeyond5YB: r.Ages.PendingBeyond5Y.B,
		TotalPendencyA:   r.Ages.TotalPendency.A,
		TotalPendencyB:   r.Ages.TotalPendency.B,

		DisposalWithin2MA:  r.Ages.DisposedWithin2M.A,
		DisposalWithin2MB:  r.Ages.DisposedWithin2M.B,
		Disposal2To12MA:    r.Ages.Disposed2To12M.A,
		Disposal2To12MB:    r.Ages.Disposed2To12M.B,
		DisposalBeyond12MA: r.Ages.DisposedBeyond12M.A,
		DisposalBeyond12MB: r.Ages.DisposedBeyond12M.B,
		TotalDisposalA:     r.Ages.TotalDisposal.A,
		TotalDisposalB:     r.Ages.TotalDisposal.B,

		ConvictionsA: r.Extra.Convictions.A,
		ConvictionsB: r.Extra.Convictions.B,
	}
}

// Ensure EntryServiceImpl implements the interface
var _ primary.EntryService = (*EntryServiceImpl)(nil)
