// Package metrics contains the pure arithmetic validation for monthly case
// statistics. Functions here compute derived totals and assert consistency
// constraints; they hold no state and perform no I/O, so they are callable
// independently of the entry workflow.
package metrics

import (
	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/models"
)

// Period bounds accepted by ValidatePeriod.
const (
	MinYear = 2020
	MaxYear = 2030
)

// BasicInput carries the step-1 case flow figures per category.
type BasicInput struct {
	Balance  models.Pair
	New      models.Pair
	Disposed models.Pair
}

// AgeInput carries the step-2 age buckets per category.
type AgeInput struct {
	PendingUnder2M  models.Pair
	Pending2To12M   models.Pair
	Pending1To5Y    models.Pair
	PendingBeyond5Y models.Pair

	DisposedWithin2M  models.Pair
	Disposed2To12M    models.Pair
	DisposedBeyond12M models.Pair
}

// ExtraInput carries the step-3 additional figures per category.
type ExtraInput struct {
	Contested        models.Pair
	DisposedWithin5Y models.Pair
	PendingOver5Y    models.Pair
	Convictions      models.Pair
}

// ComputeBasicMetrics derives pending = balance + new - disposed per category
// and checks the same identity over the totals; a total mismatch fails with
// kind InvariantViolation.
func ComputeBasicMetrics(in BasicInput) (models.BasicMetrics, error) {
	m := models.BasicMetrics{
		Balance:  in.Balance,
		New:      in.New,
		Disposed: in.Disposed,
		Pending: models.Pair{
			A: in.Balance.A + in.New.A - in.Disposed.A,
			B: in.Balance.B + in.New.B - in.Disposed.B,
		},
	}

	if m.Pending.Total() != m.Balance.Total()+m.New.Total()-m.Disposed.Total() {
		return models.BasicMetrics{}, workflow.Errorf(workflow.KindInvariant,
			"pending total (%g) does not equal balance (%g) + new (%g) - disposed (%g)",
			m.Pending.Total(), m.Balance.Total(), m.New.Total(), m.Disposed.Total())
	}

	return m, nil
}

// ComputeAgeBreakdown derives the bucket-sum totals and checks, per category,
// that the pendency buckets sum exactly to the step-1 pending value and the
// disposal buckets to the step-1 disposed value. Mismatches fail with kind
// SumMismatch naming the category and both sides.
func ComputeAgeBreakdown(pending, disposed models.Pair, in AgeInput) (models.AgeBreakdown, error) {
	b := models.AgeBreakdown{
		PendingUnder2M:  in.PendingUnder2M,
		Pending2To12M:   in.Pending2To12M,
		Pending1To5Y:    in.Pending1To5Y,
		PendingBeyond5Y: in.PendingBeyond5Y,
		TotalPendency: models.Pair{
			A: in.PendingUnder2M.A + in.Pending2To12M.A + in.Pending1To5Y.A + in.PendingBeyond5Y.A,
			B: in.PendingUnder2M.B + in.Pending2To12M.B + in.Pending1To5Y.B + in.PendingBeyond5Y.B,
		},
		DisposedWithin2M:  in.DisposedWithin2M,
		Disposed2To12M:    in.Disposed2To12M,
		DisposedBeyond12M: in.DisposedBeyond12M,
		TotalDisposal: models.Pair{
			A: in.DisposedWithin2M.A + in.Disposed2To12M.A + in.DisposedBeyond12M.A,
			B: in.DisposedWithin2M.B + in.Disposed2To12M.B + in.DisposedBeyond12M.B,
		},
	}

	if b.TotalPendency.A != pending.A {
		return models.AgeBreakdown{}, workflow.Errorf(workflow.KindSumMismatch,
			"category A pendency breakdown sum (%g) != pending (%g)", b.TotalPendency.A, pending.A)
	}
	if b.TotalPendency.B != pending.B {
		return models.AgeBreakdown{}, workflow.Errorf(workflow.KindSumMismatch,
			"category B pendency breakdown sum (%g) != pending (%g)", b.TotalPendency.B, pending.B)
	}
	if b.TotalDisposal.A != disposed.A {
		return models.AgeBreakdown{}, workflow.Errorf(workflow.KindSumMismatch,
			"category A disposal breakdown sum (%g) != disposed (%g)", b.TotalDisposal.A, disposed.A)
	}
	if b.TotalDisposal.B != disposed.B {
		return models.AgeBreakdown{}, workflow.Errorf(workflow.KindSumMismatch,
			"category B disposal breakdown sum (%g) != disposed (%g)", b.TotalDisposal.B, disposed.B)
	}

	return b, nil
}

// ComputeAdditionalMetrics checks the subset constraints for the step-3
// figures against the step-1 anchors. Contested and within-5-years disposals
// must not exceed disposed; over-5-years pending must not exceed pending.
// Violations fail with kind SubsetViolation naming the offending field.
func ComputeAdditionalMetrics(pending, disposed models.Pair, in ExtraInput) (models.AdditionalMetrics, error) {
	type subset struct {
		name   string
		value  float64
		parent string
		bound  float64
	}
	checks := []subset{
		{"contested_a", in.Contested.A, "disposed_a", disposed.A},
		{"contested_b", in.Contested.B, "disposed_b", disposed.B},
		{"disposal_5y_a", in.DisposedWithin5Y.A, "disposed_a", disposed.A},
		{"disposal_5y_b", in.DisposedWithin5Y.B, "disposed_b", disposed.B},
		{"pending_over_5y_a", in.PendingOver5Y.A, "pending_a", pending.A},
		{"pending_over_5y_b", in.PendingOver5Y.B, "pending_b", pending.B},
	}
	for _, c := range checks {
		if c.value > c.bound {
			return models.AdditionalMetrics{}, workflow.Errorf(workflow.KindSubsetViolation,
				"%s (%g) cannot exceed %s (%g)", c.name, c.value, c.parent, c.bound)
		}
	}

	return models.AdditionalMetrics{
		Contested:        in.Contested,
		DisposedWithin5Y: in.DisposedWithin5Y,
		PendingOver5Y:    in.PendingOver5Y,
		Convictions:      in.Convictions,
	}, nil
}

// ValidatePeriod checks the reporting window bounds. Month must be 1-12 and
// year within [MinYear, MaxYear]; out-of-bounds values fail with kind
// RangeError.
func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return workflow.Errorf(workflow.KindRange, "month must be between 1-12, got %d", month)
	}
	if year < MinYear || year > MaxYear {
		return workflow.Errorf(workflow.KindRange, "year must be between %d-%d, got %d", MinYear, MaxYear, year)
	}
	return nil
}
