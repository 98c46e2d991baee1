package repository

import (
	"context"
	"database/sql"
	"fmt"

	"saarthi/internal/db"
	"saarthi/internal/domain"
)

// SQLitePreferenceRepo implements PreferenceRepo using a SQLite database.
type SQLitePreferenceRepo struct {
	db db.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(conn db.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: conn}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context, role domain.Role) (*domain.Preferences, error) {
	query := `SELECT location, primary_crop, load_size, urgency
		FROM preferences WHERE role = ?`
	row := r.db.QueryRowContext(ctx, query, string(role))

	var p domain.Preferences
	err := row.Scan(&p.Location, &p.PrimaryCrop, &p.LoadSize, &p.Urgency)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preferences for %s: %w", role, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}
	return &p, nil
}

func (r *SQLitePreferenceRepo) Set(ctx context.Context, role domain.Role, prefs domain.Preferences) error {
	now := nowUTC()
	query := `INSERT INTO preferences (role, location, primary_crop, load_size, urgency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(role) DO UPDATE SET
			location = excluded.location,
			primary_crop = excluded.primary_crop,
			load_size = excluded.load_size,
			urgency = excluded.urgency,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		string(role),
		prefs.Location,
		prefs.PrimaryCrop,
		prefs.LoadSize,
		string(prefs.Urgency),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}

func (r *SQLitePreferenceRepo) SetEmpty(ctx context.Context, role domain.Role) error {
	return r.Set(ctx, role, domain.EmptyPreferences())
}
