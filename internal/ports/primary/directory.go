package primary

import "context"

// DirectoryService exposes the read-only court directory.
type DirectoryService interface {
	// ListDistricts lists all districts in display order.
	ListDistricts(ctx context.Context) ([]*District, error)

	// ListCourts lists courts of one type ("FTSC" or "SPC"), ordered by
	// district display order then court name.
	ListCourts(ctx context.Context, courtType string) ([]*Court, error)

	// GetCourtInfo retrieves a single court by exact name.
	GetCourtInfo(ctx context.Context, name string) (*Court, error)
}

// District is a district as exposed to the dispatch layer.
type District struct {
	ID           int64
	Name         string
	DisplayOrder int
}

// Court is a court as exposed to the dispatch layer.
type Court struct {
	ID           int64
	Name         string
	Type         string
	DistrictName string
}
