package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema statements. Statements are idempotent; ALTER
// TABLE additions tolerate "duplicate column name" on re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Deal collections (pod team, tagged investors, attachments, audit trail)
// live in JSON columns on the deals row. Every mutation replaces the full
// collection, so the primary field change and its audit entry always land
// in the same UPDATE.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS deals (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		client           TEXT NOT NULL,
		sector           TEXT NOT NULL DEFAULT '',
		value_mm         REAL NOT NULL DEFAULT 0,
		lead             TEXT NOT NULL DEFAULT '',
		deal_type        TEXT NOT NULL,
		stage            TEXT NOT NULL,
		status           TEXT NOT NULL,
		progress         INTEGER NOT NULL DEFAULT 0,
		notes            TEXT NOT NULL DEFAULT '',
		pod_team         TEXT NOT NULL DEFAULT '[]',
		tagged_investors TEXT NOT NULL DEFAULT '[]',
		attachments      TEXT NOT NULL DEFAULT '[]',
		audit_trail      TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deals_type ON deals(deal_type)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage)`,

	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		deal_id    TEXT NOT NULL DEFAULT '',
		title      TEXT NOT NULL,
		status     TEXT NOT NULL CHECK(status IN ('todo','in_progress','done')),
		due_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
}
