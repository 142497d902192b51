// Package primary defines the primary ports (driving interfaces) for the
// application: the operations the dispatch layer invokes and the structured
// payloads they exchange. All request fields are primitive scalars so any
// transport can front these services.
package primary

import (
	"context"
	"time"
)

// EntryService is the staged data-entry workflow. Steps must run in order per
// (court, month, year); each step either completes or fails with no mutation.
type EntryService interface {
	// SubmitBasicMetrics runs entry step 1: validates the period, resolves
	// the court, rejects keys with committed data, computes derived pending
	// counts and totals, and stores the partial report.
	SubmitBasicMetrics(ctx context.Context, req BasicMetricsRequest) (*BasicMetricsResponse, error)

	// SubmitAgeBreakdown runs entry step 2: checks the age buckets sum to the
	// step-1 anchors and merges them into the partial report.
	SubmitAgeBreakdown(ctx context.Context, req AgeBreakdownRequest) (*AgeBreakdownResponse, error)

	// SubmitAdditionalMetrics runs entry step 3: checks subset constraints,
	// commits the merged report to storage, and discards the partial report.
	// On a storage failure the partial report is kept so step 3 can be
	// retried without repeating steps 1-2.
	SubmitAdditionalMetrics(ctx context.Context, req AdditionalMetricsRequest) (*CompletedReport, error)

	// CheckExists reports whether a committed report exists for the key.
	CheckExists(ctx context.Context, courtName string, month, year int) (*ExistsResponse, error)

	// DeleteReport removes a committed report. Independent of the staged
	// workflow; never touches partial reports.
	DeleteReport(ctx context.Context, courtName string, month, year int) error

	// PendingEntries lists in-flight partial entries.
	PendingEntries(ctx context.Context) ([]*PendingEntry, error)

	// PruneStale discards partial entries older than age and returns the
	// number removed.
	PruneStale(ctx context.Context, age time.Duration) (int, error)
}

// BasicMetricsRequest carries the step-1 inputs.
type BasicMetricsRequest struct {
	CourtName string
	Month     int
	Year      int

	BalanceA  float64
	BalanceB  float64
	NewA      float64
	NewB      float64
	DisposedA float64
	DisposedB float64
}

// BasicMetricsResponse carries the step-1 derived values.
type BasicMetricsResponse struct {
	CourtName string
	Month     int
	Year      int

	PendingA      float64
	PendingB      float64
	PendingTotal  float64
	BalanceTotal  float64
	NewTotal      float64
	DisposedTotal float64
}

// AgeBreakdownRequest carries the step-2 inputs: four pendency buckets and
// three disposal buckets per category.
type AgeBreakdownRequest struct {
	CourtName string
	Month     int
	Year      int

	PendingLess2MA   float64
	PendingLess2MB   float64
	Pending2To12MA   float64
	Pending2To12MB   float64
	Pending1To5YA    float64
	Pending1To5YB    float64
	PendingBeyond5YA float64
	PendingBeyond5YB float64

	DisposalWithin2MA  float64
	DisposalWithin2MB  float64
	Disposal2To12MA    float64
	Disposal2To12MB    float64
	DisposalBeyond12MA float64
	DisposalBeyond12MB float64
}

// AgeBreakdownResponse carries the step-2 validated bucket totals.
type AgeBreakdownResponse struct {
	CourtName string
	Month     int
	Year      int

	TotalPendencyA float64
	TotalPendencyB float64
	TotalDisposalA float64
	TotalDisposalB float64
}

// AdditionalMetricsRequest carries the step-3 inputs.
type AdditionalMetricsRequest struct {
	CourtName string
	Month     int
	Year      int

	ContestedA     float64
	ContestedB     float64
	Disposal5YA    float64
	Disposal5YB    float64
	PendingOver5YA float64
	PendingOver5YB float64
	ConvictionsA   float64
	ConvictionsB   float64
}

// CompletedReport summarizes a committed report for presentation.
type CompletedReport struct {
	CourtName    string
	CourtType    string
	DistrictName string
	Month        int
	Year         int

	BalanceA, BalanceB, BalanceTotal          float64
	NewA, NewB, NewTotal                      float64
	DisposedA, DisposedB, DisposedTotal       float64
	PendingA, PendingB, PendingTotal          float64
	ConvictionsA, ConvictionsB                float64
}

// ExistsResponse reports committed-data existence for a key.
type ExistsResponse struct {
	CourtName string
	Month     int
	Year      int
	Exists    bool
}

// PendingEntry describes an in-flight partial entry.
type PendingEntry struct {
	CourtName string
	Month     int
	Year      int
	Step1Done bool
	Step2Done bool
	CreatedAt time.Time
}
