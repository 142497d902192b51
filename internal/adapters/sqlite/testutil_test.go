// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/courtstat/internal/db"
	"github.com/example/courtstat/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedDistrict inserts a test district and returns its ID.
func seedDistrict(t *testing.T, db *sql.DB, name string, order int) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO districts (name, display_order) VALUES (?, ?)", name, order)
	if err != nil {
		t.Fatalf("failed to seed district: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedCourt inserts a test court and returns its ID.
func seedCourt(t *testing.T, db *sql.DB, name, courtType string, districtID int64) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO courts (name, type, district_id) VALUES (?, ?, ?)", name, courtType, districtID)
	if err != nil {
		t.Fatalf("failed to seed court: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// sampleReport builds a consistent report record for courtID, 1/2025.
func sampleReport(courtID int64) *secondary.MonthlyReportRecord {
	return &secondary.MonthlyReportRecord{
		CourtID: courtID,
		Month:   1,
		Year:    2025,

		BalanceA: 50, BalanceB: 30, BalanceTotal: 80,
		NewA: 5, NewB: 3, NewTotal: 8,
		ContestedA: 3, ContestedB: 2, ContestedTotal: 5,
		DisposedA: 4, DisposedB: 2, DisposedTotal: 6,
		PendingA: 51, PendingB: 31, PendingTotal: 82,
		Disposal5YA: 3, Disposal5YB: 2, Disposal5YTotal: 5,
		PendingOver5YA: 6, PendingOver5YB: 4, PendingOver5YTotal: 10,
		PendingLess2MA: 10, PendingLess2MB: 5,
		Pending2To12MA: 15, Pending2To12MB: 10,
		Pending1To5YA: 20, Pending1To5YB: 12,
		PendingBeyond5YA: 6, PendingBeyond5YB: 4,
		TotalPendencyA: 51, TotalPendencyB: 31,
		DisposalWithin2MA: 1, DisposalWithin2MB: 1,
		Disposal2To12MA: 2, Disposal2To12MB: 1,
		DisposalBeyond12MA: 1, DisposalBeyond12MB: 0,
		TotalDisposalA: 4, TotalDisposalB: 2,
		ConvictionsA: 2, ConvictionsB: 1,
	}
}
