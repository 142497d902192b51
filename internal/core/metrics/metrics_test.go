package metrics

import (
	"testing"

	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/models"
)

func TestComputeBasicMetrics(t *testing.T) {
	tests := []struct {
		name        string
		in          BasicInput
		wantPending models.Pair
	}{
		{
			name: "typical month",
			in: BasicInput{
				Balance:  models.Pair{A: 50, B: 30},
				New:      models.Pair{A: 5, B: 3},
				Disposed: models.Pair{A: 4, B: 2},
			},
			wantPending: models.Pair{A: 51, B: 31},
		},
		{
			name:        "all zero",
			in:          BasicInput{},
			wantPending: models.Pair{},
		},
		{
			name: "fractional counts",
			in: BasicInput{
				Balance:  models.Pair{A: 10.5, B: 2.25},
				New:      models.Pair{A: 1.5, B: 0.75},
				Disposed: models.Pair{A: 2, B: 1},
			},
			wantPending: models.Pair{A: 10, B: 2},
		},
		{
			name: "disposed exceeds inflow yields negative pending",
			in: BasicInput{
				Balance:  models.Pair{A: 1, B: 0},
				Disposed: models.Pair{A: 3, B: 0},
			},
			wantPending: models.Pair{A: -2, B: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBasicMetrics(tt.in)
			if err != nil {
				t.Fatalf("ComputeBasicMetrics() error = %v", err)
			}
			if got.Pending != tt.wantPending {
				t.Errorf("Pending = %+v, want %+v", got.Pending, tt.wantPending)
			}
			if got.Balance != tt.in.Balance || got.New != tt.in.New || got.Disposed != tt.in.Disposed {
				t.Errorf("input fields not carried through: %+v", got)
			}
			if got.Pending.Total() != got.Pending.A+got.Pending.B {
				t.Errorf("Pending.Total() = %g, want %g", got.Pending.Total(), got.Pending.A+got.Pending.B)
			}
		})
	}
}

func validAgeInput() AgeInput {
	// Pendency buckets sum to 51 (A) and 31 (B); disposal buckets to 4 and 2.
	return AgeInput{
		PendingUnder2M:    models.Pair{A: 10, B: 5},
		Pending2To12M:     models.Pair{A: 15, B: 10},
		Pending1To5Y:      models.Pair{A: 20, B: 12},
		PendingBeyond5Y:   models.Pair{A: 6, B: 4},
		DisposedWithin2M:  models.Pair{A: 1, B: 1},
		Disposed2To12M:    models.Pair{A: 2, B: 1},
		DisposedBeyond12M: models.Pair{A: 1, B: 0},
	}
}

func TestComputeAgeBreakdownValid(t *testing.T) {
	pending := models.Pair{A: 51, B: 31}
	disposed := models.Pair{A: 4, B: 2}

	got, err := ComputeAgeBreakdown(pending, disposed, validAgeInput())
	if err != nil {
		t.Fatalf("ComputeAgeBreakdown() error = %v", err)
	}
	if got.TotalPendency != pending {
		t.Errorf("TotalPendency = %+v, want %+v", got.TotalPendency, pending)
	}
	if got.TotalDisposal != disposed {
		t.Errorf("TotalDisposal = %+v, want %+v", got.TotalDisposal, disposed)
	}
}

func TestComputeAgeBreakdownPerturbation(t *testing.T) {
	pending := models.Pair{A: 51, B: 31}
	disposed := models.Pair{A: 4, B: 2}

	perturbations := []struct {
		name    string
		mutate  func(*AgeInput)
	}{
		{"pendency A bucket +1", func(in *AgeInput) { in.Pending2To12M.A++ }},
		{"pendency A bucket -1", func(in *AgeInput) { in.PendingUnder2M.A-- }},
		{"pendency B bucket +1", func(in *AgeInput) { in.PendingBeyond5Y.B++ }},
		{"disposal A bucket +1", func(in *AgeInput) { in.Disposed2To12M.A++ }},
		{"disposal B bucket -1", func(in *AgeInput) { in.DisposedWithin2M.B-- }},
	}

	for _, tt := range perturbations {
		t.Run(tt.name, func(t *testing.T) {
			in := validAgeInput()
			tt.mutate(&in)

			_, err := ComputeAgeBreakdown(pending, disposed, in)
			if err == nil {
				t.Fatal("ComputeAgeBreakdown() expected error, got nil")
			}
			if kind := workflow.KindOf(err); kind != workflow.KindSumMismatch {
				t.Errorf("error kind = %q, want %q", kind, workflow.KindSumMismatch)
			}
		})
	}
}

func TestComputeAdditionalMetrics(t *testing.T) {
	pending := models.Pair{A: 51, B: 31}
	disposed := models.Pair{A: 4, B: 2}

	t.Run("within bounds", func(t *testing.T) {
		got, err := ComputeAdditionalMetrics(pending, disposed, ExtraInput{
			Contested:        models.Pair{A: 3, B: 2},
			DisposedWithin5Y: models.Pair{A: 3, B: 2},
			PendingOver5Y:    models.Pair{A: 6, B: 4},
			Convictions:      models.Pair{A: 2, B: 1},
		})
		if err != nil {
			t.Fatalf("ComputeAdditionalMetrics() error = %v", err)
		}
		if got.Contested.Total() != 5 {
			t.Errorf("Contested.Total() = %g, want 5", got.Contested.Total())
		}
	})

	t.Run("exact equality succeeds", func(t *testing.T) {
		_, err := ComputeAdditionalMetrics(pending, disposed, ExtraInput{
			Contested:        disposed,
			DisposedWithin5Y: disposed,
			PendingOver5Y:    pending,
		})
		if err != nil {
			t.Fatalf("ComputeAdditionalMetrics() at exact bound error = %v", err)
		}
	})

	violations := []struct {
		name string
		in   ExtraInput
	}{
		{"contested A exceeds disposed", ExtraInput{Contested: models.Pair{A: 4.5}}},
		{"contested B exceeds disposed", ExtraInput{Contested: models.Pair{B: 2.1}}},
		{"disposal 5y A exceeds disposed", ExtraInput{DisposedWithin5Y: models.Pair{A: 5}}},
		{"pending over 5y B exceeds pending", ExtraInput{PendingOver5Y: models.Pair{B: 31.01}}},
	}
	for _, tt := range violations {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAdditionalMetrics(pending, disposed, tt.in)
			if err == nil {
				t.Fatal("ComputeAdditionalMetrics() expected error, got nil")
			}
			if kind := workflow.KindOf(err); kind != workflow.KindSubsetViolation {
				t.Errorf("error kind = %q, want %q", kind, workflow.KindSubsetViolation)
			}
		})
	}
}

func TestValidatePeriod(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		wantErr bool
	}{
		{"valid", 1, 2025, false},
		{"december of max year", 12, 2030, false},
		{"january of min year", 1, 2020, false},
		{"month zero", 0, 2025, true},
		{"month thirteen", 13, 2025, true},
		{"year too early", 6, 2019, true},
		{"year too late", 6, 2031, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriod(tt.month, tt.year)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePeriod(%d, %d) error = %v, wantErr %v", tt.month, tt.year, err, tt.wantErr)
			}
			if err != nil && workflow.KindOf(err) != workflow.KindRange {
				t.Errorf("error kind = %q, want %q", workflow.KindOf(err), workflow.KindRange)
			}
		})
	}
}
