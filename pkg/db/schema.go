package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		entry_text TEXT NOT NULL DEFAULT '',
		mood_tag TEXT NOT NULL,
		activities JSONB NOT NULL DEFAULT '[]',
		wellbeing_score DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL,
		date_key TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_created ON journal_entries (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS mood_predictions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		predicted_mood TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		risk_level TEXT NOT NULL,
		factors JSONB NOT NULL DEFAULT '[]',
		recommendations JSONB NOT NULL DEFAULT '[]',
		proactive_actions JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_predictions_user_created ON mood_predictions (user_id, created_at DESC)`,
}

// SQLite only parses columns declared exactly as TIMESTAMP back into time.Time.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		entry_text TEXT NOT NULL DEFAULT '',
		mood_tag TEXT NOT NULL,
		activities TEXT NOT NULL DEFAULT '[]',
		wellbeing_score REAL,
		created_at TIMESTAMP NOT NULL,
		date_key TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_created ON journal_entries (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS mood_predictions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		predicted_mood TEXT NOT NULL,
		confidence REAL NOT NULL,
		risk_level TEXT NOT NULL,
		factors TEXT NOT NULL DEFAULT '[]',
		recommendations TEXT NOT NULL DEFAULT '[]',
		proactive_actions TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_predictions_user_created ON mood_predictions (user_id, created_at DESC)`,
}

func EnsureSchema(db *sqlx.DB) error {
	statements := postgresSchema
	if db.DriverName() == sqliteDriver {
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
