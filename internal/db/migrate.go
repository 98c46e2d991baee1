package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// whole list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS preferences (
		role         TEXT PRIMARY KEY,
		location     TEXT NOT NULL DEFAULT '',
		primary_crop TEXT NOT NULL DEFAULT '',
		load_size    TEXT NOT NULL DEFAULT '',
		urgency      TEXT NOT NULL DEFAULT 'Normal'
		             CHECK(urgency IN ('Normal','Urgent','Flexible')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS wallets (
		role       TEXT PRIMARY KEY,
		balance    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id          TEXT NOT NULL,
		role        TEXT NOT NULL REFERENCES wallets(role) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		tx_date     TEXT NOT NULL,
		description TEXT NOT NULL,
		amount      INTEGER NOT NULL,
		type        TEXT NOT NULL CHECK(type IN ('credit','debit')),
		category    TEXT NOT NULL
		            CHECK(category IN ('payment','refund','incentive','payout')),
		status      TEXT NOT NULL DEFAULT 'completed'
		            CHECK(status IN ('completed','pending','failed')),
		PRIMARY KEY (role, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_wallet_transactions_role
		ON wallet_transactions(role, seq)`,
}
