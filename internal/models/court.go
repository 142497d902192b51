// Package models contains the domain models for the courtstat registry.
package models

// CourtType distinguishes the two fixed court categories.
type CourtType string

const (
	// CourtTypeFTSC is a Fast Track Special Court. FTSC data is reported
	// through the district-level summary view.
	CourtTypeFTSC CourtType = "FTSC"
	// CourtTypeSPC is a Special Court. SPC data is reported per court.
	CourtTypeSPC CourtType = "SPC"
)

// District represents an administrative district. Districts order court
// listings and district summaries via DisplayOrder.
type District struct {
	ID           int64
	Name         string
	DisplayOrder int
}

// Court represents a court that reports monthly case statistics.
// Courts are read-only with respect to the data-entry workflow.
type Court struct {
	ID           int64
	Name         string
	Type         CourtType
	DistrictID   int64
	DistrictName string
}

// Period identifies a monthly reporting window.
type Period struct {
	Month int // 1-12
	Year  int // 2020-2030
}
