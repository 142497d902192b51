package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/courtstat/internal/core/workflow"
)

func TestDirectoryServiceListDistricts(t *testing.T) {
	service := NewDirectoryService(newMockCourtRepository())

	districts, err := service.ListDistricts(context.Background())
	if err != nil {
		t.Fatalf("ListDistricts() error = %v", err)
	}
	if len(districts) != 2 {
		t.Fatalf("ListDistricts() returned %d, want 2", len(districts))
	}
	if districts[0].Name != "North District" || districts[0].DisplayOrder != 1 {
		t.Errorf("districts[0] = %+v", districts[0])
	}
}

func TestDirectoryServiceListCourts(t *testing.T) {
	service := NewDirectoryService(newMockCourtRepository())

	courts, err := service.ListCourts(context.Background(), "FTSC")
	if err != nil {
		t.Fatalf("ListCourts() error = %v", err)
	}
	if len(courts) != 1 {
		t.Fatalf("ListCourts() returned %d courts, want 1", len(courts))
	}
	if courts[0].Name != "Court-X" || courts[0].DistrictName != "North District" {
		t.Errorf("courts[0] = %+v", courts[0])
	}
}

func TestDirectoryServiceGetCourtInfo(t *testing.T) {
	service := NewDirectoryService(newMockCourtRepository())

	court, err := service.GetCourtInfo(context.Background(), "Court-Y")
	if err != nil {
		t.Fatalf("GetCourtInfo() error = %v", err)
	}
	if court.Type != "SPC" {
		t.Errorf("court = %+v", court)
	}

	_, err = service.GetCourtInfo(context.Background(), "No Such Court")
	if !workflow.IsKind(err, workflow.KindEntityNotFound) {
		t.Errorf("error = %v, want entity not found", err)
	}
}

func TestDirectoryServiceStorageErrors(t *testing.T) {
	repo := newMockCourtRepository()
	repo.getErr = errors.New("connection reset")
	service := NewDirectoryService(repo)

	_, err := service.GetCourtInfo(context.Background(), "Court-X")
	if !workflow.IsKind(err, workflow.KindStorage) {
		t.Errorf("error = %v, want storage error", err)
	}
}
