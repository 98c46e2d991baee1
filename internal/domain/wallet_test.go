package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWallet_DistinctFixturesPerRole(t *testing.T) {
	balances := map[Role]int{
		RoleFarmer:      12500,
		RoleFPO:         850000,
		RoleBuyer:       45000,
		RoleTransporter: 28000,
	}

	for role, want := range balances {
		w := DefaultWallet(role)
		assert.Equal(t, want, w.Balance, "balance for %s", role)
		assert.NotEmpty(t, w.Transactions, "transactions for %s", role)
	}
}

func TestDefaultWallet_UnknownRoleIsZero(t *testing.T) {
	w := DefaultWallet(Role("Moneylender"))
	assert.Zero(t, w.Balance)
	assert.Empty(t, w.Transactions)
}

func TestDefaultWallet_IsPure(t *testing.T) {
	a := DefaultWallet(RoleFarmer)
	a.Transactions[0].Amount = 1

	b := DefaultWallet(RoleFarmer)
	require.Len(t, b.Transactions, 3)
	assert.Equal(t, 5000, b.Transactions[0].Amount)
}

func TestPreferences_CompletionStates(t *testing.T) {
	assert.True(t, IsProfileIncomplete(nil), "absent record")

	empty := EmptyPreferences()
	assert.Equal(t, UrgencyNormal, empty.Urgency)
	assert.False(t, empty.IsComplete())
	assert.True(t, IsProfileIncomplete(&empty))

	partial := Preferences{Location: "Nashik", Urgency: UrgencyNormal}
	assert.False(t, partial.IsComplete())
	assert.True(t, IsProfileIncomplete(&partial))

	full := Preferences{Location: "Nashik", PrimaryCrop: "Onion", LoadSize: "2 Tons", Urgency: UrgencyNormal}
	assert.True(t, full.IsComplete())
	assert.False(t, IsProfileIncomplete(&full))
}

func TestRoleShortName(t *testing.T) {
	assert.Equal(t, "Farmer", RoleFarmer.ShortName())
	assert.Equal(t, "Transporter", RoleTransporter.ShortName())
}
