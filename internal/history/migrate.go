package history

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by the migrator.
const SchemaVersion = 1

// migrate ensures the SQLite schema exists and is upgraded to SchemaVersion.
func migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	transaction, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = transaction.Rollback()
	}()

	_, err = transaction.Exec(`
		CREATE TABLE IF NOT EXISTS sends (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			thought_id TEXT NOT NULL,
			url TEXT NOT NULL,
			thought TEXT NOT NULL,
			source_url TEXT NOT NULL DEFAULT '',
			sent_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create sends table: %w", err)
	}

	_, err = transaction.Exec(`CREATE INDEX IF NOT EXISTS idx_sends_sent_at ON sends(sent_at);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_sends_sent_at: %w", err)
	}

	_, err = transaction.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}
	return nil
}
