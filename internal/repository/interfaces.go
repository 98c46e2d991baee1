package repository

import (
	"context"
	"errors"

	"saarthi/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
// For preferences this is the "absent" state that forces the setup screen.
var ErrNotFound = errors.New("not found")

// PreferenceRepo is the per-role preferences store. Rows are created only by
// Set/SetEmpty and never deleted; no validation happens at this layer.
type PreferenceRepo interface {
	// Get returns the stored record for a role, or ErrNotFound if the role
	// was never configured.
	Get(ctx context.Context, role domain.Role) (*domain.Preferences, error)

	// Set unconditionally upserts the record for a role.
	Set(ctx context.Context, role domain.Role, prefs domain.Preferences) error

	// SetEmpty upserts the canonical empty-but-present record ("skip").
	SetEmpty(ctx context.Context, role domain.Role) error
}

// WalletRepo is the per-role wallet store. Snapshots are materialized lazily
// on first activation and never mutated afterwards in this scope.
type WalletRepo interface {
	// GetOrCreate returns the stored snapshot for a role, seeding it from
	// domain.DefaultWallet on first call. Idempotent per role: repeated
	// calls return the identical stored snapshot, never a regenerated one.
	GetOrCreate(ctx context.Context, role domain.Role) (domain.WalletSnapshot, error)
}
