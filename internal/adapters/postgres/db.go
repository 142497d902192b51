// Package postgres contains Postgres implementations of repository
// interfaces, driven through the pgx stdlib driver. Queries mirror the SQLite
// adapters with $n placeholders and the schema is applied on open.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// SchemaSQL is the Postgres rendering of the courtstat schema.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS districts (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	display_order INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS courts (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	type TEXT NOT NULL CHECK(type IN ('FTSC', 'SPC')),
	district_id BIGINT NOT NULL REFERENCES districts(id)
);

CREATE TABLE IF NOT EXISTS court_monthly_data (
	id BIGSERIAL PRIMARY KEY,
	court_id BIGINT NOT NULL REFERENCES courts(id),
	month INTEGER NOT NULL,
	year INTEGER NOT NULL,

	balance_a DOUBLE PRECISION NOT NULL,
	balance_b DOUBLE PRECISION NOT NULL,
	balance_total DOUBLE PRECISION NOT NULL,
	new_a DOUBLE PRECISION NOT NULL,
	new_b DOUBLE PRECISION NOT NULL,
	new_total DOUBLE PRECISION NOT NULL,
	contested_a DOUBLE PRECISION NOT NULL,
	contested_b DOUBLE PRECISION NOT NULL,
	contested_total DOUBLE PRECISION NOT NULL,
	disposed_a DOUBLE PRECISION NOT NULL,
	disposed_b DOUBLE PRECISION NOT NULL,
	disposed_total DOUBLE PRECISION NOT NULL,
	pending_a DOUBLE PRECISION NOT NULL,
	pending_b DOUBLE PRECISION NOT NULL,
	pending_total DOUBLE PRECISION NOT NULL,
	disposal_5y_a DOUBLE PRECISION NOT NULL,
	disposal_5y_b DOUBLE PRECISION NOT NULL,
	disposal_5y_total DOUBLE PRECISION NOT NULL,
	pending_over_5y_a DOUBLE PRECISION NOT NULL,
	pending_over_5y_b DOUBLE PRECISION NOT NULL,
	pending_over_5y_total DOUBLE PRECISION NOT NULL,
	pending_less_2m_a DOUBLE PRECISION NOT NULL,
	pending_less_2m_b DOUBLE PRECISION NOT NULL,
	pending_2_12m_a DOUBLE PRECISION NOT NULL,
	pending_2_12m_b DOUBLE PRECISION NOT NULL,
	pending_12m_5y_a DOUBLE PRECISION NOT NULL,
	pending_12m_5y_b DOUBLE PRECISION NOT NULL,
	pending_beyond_5y_a DOUBLE PRECISION NOT NULL,
	pending_beyond_5y_b DOUBLE PRECISION NOT NULL,
	total_pendency_a DOUBLE PRECISION NOT NULL,
	total_pendency_b DOUBLE PRECISION NOT NULL,
	disposal_within_2m_a DOUBLE PRECISION NOT NULL,
	disposal_within_2m_b DOUBLE PRECISION NOT NULL,
	disposal_2_12m_a DOUBLE PRECISION NOT NULL,
	disposal_2_12m_b DOUBLE PRECISION NOT NULL,
	disposal_beyond_12m_a DOUBLE PRECISION NOT NULL,
	disposal_beyond_12m_b DOUBLE PRECISION NOT NULL,
	total_disposal_a DOUBLE PRECISION NOT NULL,
	total_disposal_b DOUBLE PRECISION NOT NULL,
	convictions_a DOUBLE PRECISION NOT NULL,
	convictions_b DOUBLE PRECISION NOT NULL,

	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE(court_id, month, year)
);

CREATE TABLE IF NOT EXISTS entry_log (
	id BIGSERIAL PRIMARY KEY,
	court_id BIGINT NOT NULL REFERENCES courts(id),
	month INTEGER NOT NULL,
	year INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('insert', 'delete')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE OR REPLACE VIEW ftsc_district_summary AS
SELECT
	d.name AS district_name,
	d.display_order AS display_order,
	m.month AS month,
	m.year AS year,
	SUM(m.balance_a) AS balance_a,
	SUM(m.balance_b) AS balance_b,
	SUM(m.balance_total) AS balance_total,
	SUM(m.new_a) AS new_a,
	SUM(m.new_b) AS new_b,
	SUM(m.new_total) AS new_total,
	SUM(m.disposed_a) AS disposed_a,
	SUM(m.disposed_b) AS disposed_b,
	SUM(m.disposed_total) AS disposed_total,
	SUM(m.pending_a) AS pending_a,
	SUM(m.pending_b) AS pending_b,
	SUM(m.pending_total) AS pending_total,
	SUM(m.convictions_a) AS convictions_a,
	SUM(m.convictions_b) AS convictions_b,
	SUM(m.pending_over_5y_total) AS pending_over_5y_total
FROM court_monthly_data m
JOIN courts c ON m.court_id = c.id
JOIN districts d ON c.district_id = d.id
WHERE c.type = 'FTSC'
GROUP BY d.id, m.month, m.year;

CREATE OR REPLACE VIEW spc_court_data AS
SELECT
	c.name AS court_name,
	d.name AS district_name,
	d.display_order AS display_order,
	m.month AS month,
	m.year AS year,
	m.balance_a AS balance_a,
	m.balance_b AS balance_b,
	m.balance_total AS balance_total,
	m.new_a AS new_a,
	m.new_b AS new_b,
	m.new_total AS new_total,
	m.disposed_a AS disposed_a,
	m.disposed_b AS disposed_b,
	m.disposed_total AS disposed_total,
	m.pending_a AS pending_a,
	m.pending_b AS pending_b,
	m.pending_total AS pending_total,
	m.convictions_a AS convictions_a,
	m.convictions_b AS convictions_b,
	m.pending_over_5y_total AS pending_over_5y_total
FROM court_monthly_data m
JOIN courts c ON m.court_id = c.id
JOIN districts d ON c.district_id = d.id
WHERE c.type = 'SPC';
`

// Open connects to Postgres using the given DSN, verifies the connection,
// and applies the schema.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN not set")
	}

	opened, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	ctx := context.Background()
	if err := opened.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if _, err := opened.ExecContext(ctx, SchemaSQL); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return opened, nil
}
