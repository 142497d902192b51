package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with the district reference data and a
// starter set of courts. Safe to run once against a fresh database.
func SeedFixtures(database *sql.DB) error {
	districts := []struct {
		name  string
		order int
	}{
		{"Thiruvananthapuram", 1},
		{"Kollam", 2},
		{"Pathanamthitta", 3},
		{"Alappuzha", 4},
		{"Kottayam", 5},
		{"Idukki", 6},
		{"Ernakulam", 7},
		{"Thrissur", 8},
		{"Palakkad", 9},
		{"Malappuram", 10},
		{"Kozhikode", 11},
		{"Wayanad", 12},
		{"Kannur", 13},
		{"Kasaragod", 14},
	}
	for _, d := range districts {
		if _, err := database.Exec(
			"INSERT INTO districts (name, display_order) VALUES (?, ?)",
			d.name, d.order,
		); err != nil {
			return fmt.Errorf("seed districts: %w", err)
		}
	}

	courts := []struct {
		name      string
		courtType string
		district  string
	}{
		{"FTSC Attingal", "FTSC", "Thiruvananthapuram"},
		{"FTSC Neyyattinkara", "FTSC", "Thiruvananthapuram"},
		{"FTSC Kollam", "FTSC", "Kollam"},
		{"FTSC Ernakulam", "FTSC", "Ernakulam"},
		{"FTSC Thrissur", "FTSC", "Thrissur"},
		{"FTSC Kozhikode", "FTSC", "Kozhikode"},
		{"SPC TVM", "SPC", "Thiruvananthapuram"},
		{"SPC Kottayam", "SPC", "Kottayam"},
		{"SPC Ernakulam", "SPC", "Ernakulam"},
		{"SPC Kannur", "SPC", "Kannur"},
	}
	for _, c := range courts {
		if _, err := database.Exec(
			"INSERT INTO courts (name, type, district_id) SELECT ?, ?, id FROM districts WHERE name = ?",
			c.name, c.courtType, c.district,
		); err != nil {
			return fmt.Errorf("seed courts: %w", err)
		}
	}

	return nil
}
