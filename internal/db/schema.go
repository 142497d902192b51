package db

// SchemaSQL is the complete schema for fresh courtstat installs.
//
// This is the SINGLE SOURCE OF TRUTH for the SQLite schema. All tests use it
// via GetSchemaSQL(): if repository code references a column that doesn't
// exist here, tests fail immediately with "no such column", catching drift at
// development time.
const SchemaSQL = `
-- Districts (fixed reference data; display_order drives all listings)
CREATE TABLE IF NOT EXISTS districts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	display_order INTEGER NOT NULL
);

-- Courts (read-only with respect to the entry workflow)
CREATE TABLE IF NOT EXISTS courts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	type TEXT NOT NULL CHECK(type IN ('FTSC', 'SPC')),
	district_id INTEGER NOT NULL,
	FOREIGN KEY (district_id) REFERENCES districts(id)
);

-- Committed monthly reports. The unique key on (court_id, month, year) is
-- defense in depth beyond the workflow's duplicate pre-check.
CREATE TABLE IF NOT EXISTS court_monthly_data (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	court_id INTEGER NOT NULL,
	month INTEGER NOT NULL,
	year INTEGER NOT NULL,

	balance_a REAL NOT NULL,
	balance_b REAL NOT NULL,
	balance_total REAL NOT NULL,
	new_a REAL NOT NULL,
	new_b REAL NOT NULL,
	new_total REAL NOT NULL,
	contested_a REAL NOT NULL,
	contested_b REAL NOT NULL,
	contested_total REAL NOT NULL,
	disposed_a REAL NOT NULL,
	disposed_b REAL NOT NULL,
	disposed_total REAL NOT NULL,
	pending_a REAL NOT NULL,
	pending_b REAL NOT NULL,
	pending_total REAL NOT NULL,
	disposal_5y_a REAL NOT NULL,
	disposal_5y_b REAL NOT NULL,
	disposal_5y_total REAL NOT NULL,
	pending_over_5y_a REAL NOT NULL,
	pending_over_5y_b REAL NOT NULL,
	pending_over_5y_total REAL NOT NULL,
	pending_less_2m_a REAL NOT NULL,
	pending_less_2m_b REAL NOT NULL,
	pending_2_12m_a REAL NOT NULL,
	pending_2_12m_b REAL NOT NULL,
	pending_12m_5y_a REAL NOT NULL,
	pending_12m_5y_b REAL NOT NULL,
	pending_beyond_5y_a REAL NOT NULL,
	pending_beyond_5y_b REAL NOT NULL,
	total_pendency_a REAL NOT NULL,
	total_pendency_b REAL NOT NULL,
	disposal_within_2m_a REAL NOT NULL,
	disposal_within_2m_b REAL NOT NULL,
	disposal_2_12m_a REAL NOT NULL,
	disposal_2_12m_b REAL NOT NULL,
	disposal_beyond_12m_a REAL NOT NULL,
	disposal_beyond_12m_b REAL NOT NULL,
	total_disposal_a REAL NOT NULL,
	total_disposal_b REAL NOT NULL,
	convictions_a REAL NOT NULL,
	convictions_b REAL NOT NULL,

	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (court_id) REFERENCES courts(id),
	UNIQUE(court_id, month, year)
);

-- Audit trail of report commits and deletions
CREATE TABLE IF NOT EXISTS entry_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	court_id INTEGER NOT NULL,
	month INTEGER NOT NULL,
	year INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('insert', 'delete')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (court_id) REFERENCES courts(id)
);

-- District-level FTSC aggregates per reporting period
CREATE VIEW IF NOT EXISTS ftsc_district_summary AS
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

-- Per-court SPC figures with the owning district
CREATE VIEW IF NOT EXISTS spc_court_data AS
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

// GetSchemaSQL returns the authoritative schema. Tests must create their
// databases through this function rather than hardcoding CREATE statements.
func GetSchemaSQL() string {
	return SchemaSQL
}
