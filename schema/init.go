// Package schema: safe database initialization. Creates only missing tables, never drops or overwrites.

package schema

import (
	"database/sql"
	"fmt"

	"airjustice/config"

	"github.com/rs/zerolog/log"
)

const tableComplaints = "air_complaints"

// Column layout is shared by both dialects; only the surrogate key differs.
const complaintColumns = `
	complaint_id VARCHAR(32) NOT NULL UNIQUE,
	filed_at_ns BIGINT NOT NULL,
	current_status VARCHAR(32) NOT NULL,
	aqi DOUBLE NOT NULL,
	latitude DOUBLE NOT NULL,
	longitude DOUBLE NOT NULL,
	history_offset_hours INT NOT NULL,
	record_json TEXT NOT NULL
`

// InitializeDatabase ensures the complaint ledger table exists for the given driver.
// Existing tables and data are left untouched.
func InitializeDatabase(db *sql.DB, driver string) error {
	var ddl string
	switch driver {
	case config.DriverMySQL:
		ddl = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,%s) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, tableComplaints, complaintColumns)
	case config.DriverSQLite:
		ddl = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,%s)`, tableComplaints, complaintColumns)
	default:
		return fmt.Errorf("schema: unsupported driver %q", driver)
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("schema: failed to create %s: %w", tableComplaints, err)
	}
	log.Info().Str("component", "schema").Str("table", tableComplaints).Str("driver", driver).Msg("table ready")
	return nil
}
