package models

// Pair holds one value for each of the two case categories (A and B) that are
// tracked in parallel throughout every metric. Counts are float64 because the
// reporting forms permit fractional counts.
type Pair struct {
	A float64
	B float64
}

// Total returns the sum across both categories.
func (p Pair) Total() float64 {
	return p.A + p.B
}

// BasicMetrics holds the step-1 case flow figures plus the derived pending
// counts (pending = balance + new - disposed, per category).
type BasicMetrics struct {
	Balance  Pair
	New      Pair
	Disposed Pair
	Pending  Pair
}

// AgeBreakdown holds the step-2 age-wise figures: four pendency buckets and
// three disposal buckets per category, plus the derived bucket-sum totals.
// The pendency buckets must sum to BasicMetrics.Pending and the disposal
// buckets to BasicMetrics.Disposed, per category.
type AgeBreakdown struct {
	PendingUnder2M  Pair // pending less than 2 months
	Pending2To12M   Pair // pending 2-12 months
	Pending1To5Y    Pair // pending 1-5 years
	PendingBeyond5Y Pair // pending more than 5 years
	TotalPendency   Pair

	DisposedWithin2M  Pair // disposed within 2 months
	Disposed2To12M    Pair // disposed in 2-12 months
	DisposedBeyond12M Pair // disposed beyond 12 months
	TotalDisposal     Pair
}

// AdditionalMetrics holds the step-3 figures. Contested and DisposedWithin5Y
// are subsets of Disposed; PendingOver5Y is a subset of Pending.
type AdditionalMetrics struct {
	Contested        Pair
	DisposedWithin5Y Pair
	PendingOver5Y    Pair
	Convictions      Pair
}

// MonthlyReport is the complete record committed to storage once all three
// entry steps have validated. At most one committed report may exist per
// (court, month, year).
type MonthlyReport struct {
	CourtID int64
	Month   int
	Year    int
	Basic   BasicMetrics
	Ages    AgeBreakdown
	Extra   AdditionalMetrics
}
