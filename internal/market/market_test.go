package market

import (
	"math/rand"
	"testing"

	"saarthi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Service {
	t.Helper()
	return NewService(rand.NewSource(42))
}

func TestRates_FirstRowIsUserContext(t *testing.T) {
	svc := seeded(t)

	rates := svc.Rates("Nashik", "Onion")

	require.Len(t, rates, 5)
	assert.Equal(t, "Onion", rates[0].Crop)
	assert.Equal(t, "Nashik", rates[0].Mandi)
}

func TestRates_DefaultsWhenProfileEmpty(t *testing.T) {
	svc := seeded(t)

	rates := svc.Rates("", "")

	require.Len(t, rates, 5)
	assert.Equal(t, "Onion", rates[0].Crop)
	assert.Equal(t, "Local Mandi", rates[0].Mandi)
}

func TestRates_PriceAnchoredToBase(t *testing.T) {
	svc := seeded(t)

	rates := svc.Rates("Nashik", "Onion")

	for _, r := range rates {
		base := basePrice(r.Crop)
		assert.Equal(t, base-500, r.MSP, r.Crop)
		assert.GreaterOrEqual(t, r.Price, base-200, r.Crop)
		assert.LessOrEqual(t, r.Price, base+200, r.Crop)
		assert.Contains(t, []domain.PriceTrend{domain.TrendUp, domain.TrendDown, domain.TrendStable}, r.Trend)
		assert.GreaterOrEqual(t, r.Change, 0.0)
		assert.Less(t, r.Change, 5.0)
	}
}

func TestRates_SameSeedSameRates(t *testing.T) {
	a := NewService(rand.NewSource(7)).Rates("Nashik", "Tomato")
	b := NewService(rand.NewSource(7)).Rates("Nashik", "Tomato")
	assert.Equal(t, a, b)
}

func TestBasePrice(t *testing.T) {
	assert.Equal(t, 2200, basePrice("Onion"))
	assert.Equal(t, 2200, basePrice("red onion"))
	assert.Equal(t, 1800, basePrice("Tomato"))
	assert.Equal(t, 4800, basePrice("Soybean"))
	assert.Equal(t, 3000, basePrice("Wheat"))
}

func TestListings_FixedMandisWithDerivedLogistics(t *testing.T) {
	svc := seeded(t)

	listings := svc.Listings("Onion")

	require.Len(t, listings, 5)
	for _, l := range listings {
		assert.Equal(t, "Onion", l.Crop)
		assert.Equal(t, l.DistanceKm*6+500, l.LogisticsCostEst, l.Mandi)
		assert.GreaterOrEqual(t, l.QuantityAvailable, 10)
		assert.Less(t, l.QuantityAvailable, 60)
	}

	// 45 km at 40 km/h rounds up to 2 hours plus fixed handling.
	assert.Equal(t, "Lasalgaon APMC", listings[0].Mandi)
	assert.Equal(t, 4, listings[0].ETAHours)
}

func TestListings_Tags(t *testing.T) {
	svc := seeded(t)

	byMandi := map[string]domain.CropListing{}
	for _, l := range svc.Listings("Tomato") {
		byMandi[l.Mandi] = l
	}

	assert.Contains(t, byMandi["Azadpur Mandi"].Tags, domain.TagCheapest)
	assert.Contains(t, byMandi["Local Farm Aggregator"].Tags, domain.TagFastest)
	assert.Contains(t, byMandi["Kolar APMC"].Tags, domain.TagBestValue)
	assert.Empty(t, byMandi["Vashi Market"].Tags)
}

func TestListings_EmptyCropDefaultsToOnion(t *testing.T) {
	svc := seeded(t)
	listings := svc.Listings("")
	require.NotEmpty(t, listings)
	assert.Equal(t, "Onion", listings[0].Crop)
}

func TestNewService_NilSource(t *testing.T) {
	svc := NewService(nil)
	assert.Len(t, svc.Rates("Nashik", "Onion"), 5)
}
