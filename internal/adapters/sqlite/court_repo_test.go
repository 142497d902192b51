package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/courtstat/internal/adapters/sqlite"
)

func TestCourtRepositoryGetByName(t *testing.T) {
	testDB := setupTestDB(t)
	districtID := seedDistrict(t, testDB, "Thiruvananthapuram", 1)
	seedCourt(t, testDB, "FTSC Attingal", "FTSC", districtID)

	repo := sqlite.NewCourtRepository(testDB)
	ctx := context.Background()

	court, err := repo.GetByName(ctx, "FTSC Attingal")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if court == nil {
		t.Fatal("GetByName() = nil for seeded court")
	}
	if court.Type != "FTSC" || court.DistrictName != "Thiruvananthapuram" {
		t.Errorf("court = %+v", court)
	}

	missing, err := repo.GetByName(ctx, "No Such Court")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if missing != nil {
		t.Errorf("GetByName() for unknown name = %+v, want nil", missing)
	}
}

func TestCourtRepositoryListByTypeOrdering(t *testing.T) {
	testDB := setupTestDB(t)
	// Seed out of display order to prove ordering comes from the query.
	south := seedDistrict(t, testDB, "Kollam", 2)
	north := seedDistrict(t, testDB, "Thiruvananthapuram", 1)
	seedCourt(t, testDB, "FTSC Kollam", "FTSC", south)
	seedCourt(t, testDB, "FTSC Neyyattinkara", "FTSC", north)
	seedCourt(t, testDB, "FTSC Attingal", "FTSC", north)
	seedCourt(t, testDB, "SPC TVM", "SPC", north)

	repo := sqlite.NewCourtRepository(testDB)
	ctx := context.Background()

	courts, err := repo.ListByType(ctx, "FTSC")
	if err != nil {
		t.Fatalf("ListByType() error = %v", err)
	}
	if len(courts) != 3 {
		t.Fatalf("ListByType() returned %d courts, want 3", len(courts))
	}

	wantOrder := []string{"FTSC Attingal", "FTSC Neyyattinkara", "FTSC Kollam"}
	for i, want := range wantOrder {
		if courts[i].Name != want {
			t.Errorf("courts[%d] = %s, want %s", i, courts[i].Name, want)
		}
	}
}

func TestCourtRepositoryListDistricts(t *testing.T) {
	testDB := setupTestDB(t)
	seedDistrict(t, testDB, "Kollam", 2)
	seedDistrict(t, testDB, "Thiruvananthapuram", 1)

	repo := sqlite.NewCourtRepository(testDB)

	districts, err := repo.ListDistricts(context.Background())
	if err != nil {
		t.Fatalf("ListDistricts() error = %v", err)
	}
	if len(districts) != 2 {
		t.Fatalf("ListDistricts() returned %d, want 2", len(districts))
	}
	if districts[0].Name != "Thiruvananthapuram" || districts[1].Name != "Kollam" {
		t.Errorf("districts not in display order: %s, %s", districts[0].Name, districts[1].Name)
	}
}
