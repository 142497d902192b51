package app

import (
	"context"

	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/ports/primary"
	"github.com/example/courtstat/internal/ports/secondary"
)

// DirectoryServiceImpl implements the DirectoryService interface.
type DirectoryServiceImpl struct {
	courtRepo secondary.CourtRepository
}

// NewDirectoryService creates a new DirectoryService with injected dependencies.
func NewDirectoryService(courtRepo secondary.CourtRepository) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{courtRepo: courtRepo}
}

// ListDistricts lists all districts in display order.
func (s *DirectoryServiceImpl) ListDistricts(ctx context.Context) ([]*primary.District, error) {
	records, err := s.courtRepo.ListDistricts(ctx)
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to list districts")
	}

	districts := make([]*primary.District, len(records))
	for i, r := range records {
		districts[i] = &primary.District{
			ID:           r.ID,
			Name:         r.Name,
			DisplayOrder: r.DisplayOrder,
		}
	}
	return districts, nil
}

// ListCourts lists courts of one type.
func (s *DirectoryServiceImpl) ListCourts(ctx context.Context, courtType string) ([]*primary.Court, error) {
	records, err := s.courtRepo.ListByType(ctx, courtType)
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to list courts")
	}

	courts := make([]*primary.Court, len(records))
	for i, r := range records {
		courts[i] = recordToCourt(r)
	}
	return courts, nil
}

// GetCourtInfo retrieves a single court by exact name.
func (s *DirectoryServiceImpl) GetCourtInfo(ctx context.Context, name string) (*primary.Court, error) {
	record, err := s.courtRepo.GetByName(ctx, name)
	if err != nil {
		return nil, workflow.Wrap(workflow.KindStorage, err, "failed to look up court %q", name)
	}
	if record == nil {
		return nil, workflow.Errorf(workflow.KindEntityNotFound, "court %q not found", name)
	}
	return recordToCourt(record), nil
}

func recordToCourt(r *secondary.CourtRecord) *primary.Court {
	return &primary.Court{
		ID:           r.ID,
		Name:         r.Name,
		Type:         r.Type,
		DistrictName: r.DistrictName,
	}
}

// Ensure DirectoryServiceImpl implements the interface
var _ primary.DirectoryService = (*DirectoryServiceImpl)(nil)
