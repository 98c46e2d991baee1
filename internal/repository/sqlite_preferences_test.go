package repository

import (
	"context"
	"testing"

	"saarthi/internal/domain"
	"saarthi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepo_Get_AbsentRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferenceRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, domain.RoleBuyer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreferenceRepo_SetAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferenceRepo(db)
	ctx := context.Background()

	prefs := domain.Preferences{
		Location:    "Nashik",
		PrimaryCrop: "Onion",
		LoadSize:    "2 Tons",
		Urgency:     domain.UrgencyUrgent,
	}
	require.NoError(t, repo.Set(ctx, domain.RoleFarmer, prefs))

	got, err := repo.Get(ctx, domain.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, prefs, *got)
}

func TestPreferenceRepo_Set_OverwritesPrevious(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferenceRepo(db)
	ctx := context.Background()

	first := domain.Preferences{Location: "Pune", PrimaryCrop: "Tomato", Urgency: domain.UrgencyNormal}
	require.NoError(t, repo.Set(ctx, domain.RoleFarmer, first))

	second := domain.Preferences{Location: "Nashik", PrimaryCrop: "Onion", Urgency: domain.UrgencyFlexible}
	require.NoError(t, repo.Set(ctx, domain.RoleFarmer, second))

	got, err := repo.Get(ctx, domain.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, second, *got)
}

func TestPreferenceRepo_SetEmpty_MarksRoleVisited(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetEmpty(ctx, domain.RoleTransporter))

	got, err := repo.Get(ctx, domain.RoleTransporter)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyPreferences(), *got)
	assert.True(t, domain.IsProfileIncomplete(got))
}

func TestPreferenceRepo_RolesAreIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, domain.RoleFarmer,
		domain.Preferences{Location: "Nashik", PrimaryCrop: "Onion", Urgency: domain.UrgencyNormal}))

	_, err := repo.Get(ctx, domain.RoleFPO)
	assert.ErrorIs(t, err, ErrNotFound)
}
