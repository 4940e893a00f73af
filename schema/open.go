package schema

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"airjustice/config"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Open connects to the configured SQL store and creates the ledger table if missing.
// Must not be called for the memory driver.
func Open(cfg *config.Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err = sql.Open("mysql", cfg.MySQLDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite dir: %w", err)
			}
		}
		db, err = sql.Open("sqlite", cfg.SQLitePath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// single writer keeps SQLite free of SQLITE_BUSY under concurrent filings
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("driver %q has no SQL backend", cfg.DBDriver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := InitializeDatabase(db, cfg.DBDriver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
