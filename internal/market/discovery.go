package market

import (
	"fmt"
	"strings"

	"saarthi/internal/domain"
)

// baseListing is a fixed mandi with its distance and asking price.
type baseListing struct {
	mandi string
	state string
	dist  int
	price int
}

var discoveryBase = []baseListing{
	{mandi: "Lasalgaon APMC", state: "Maharashtra", dist: 45, price: 2100},
	{mandi: "Vashi Market", state: "Maharashtra", dist: 180, price: 2350},
	{mandi: "Azadpur Mandi", state: "Delhi", dist: 1200, price: 1800},
	{mandi: "Kolar APMC", state: "Karnataka", dist: 850, price: 1950},
	{mandi: "Local Farm Aggregator", state: "Nearby", dist: 12, price: 2200},
}

// Listings returns buy-side offers for a crop across the fixed mandis, with
// a derived logistics cost and ETA per listing. Quantity is the only random
// element.
func (s *Service) Listings(crop string) []domain.CropListing {
	if crop == "" {
		crop = "Onion"
	}

	results := make([]domain.CropListing, 0, len(discoveryBase))
	for i, item := range discoveryBase {
		// Rough trucking estimate: per-km rate plus a fixed pickup charge.
		logCost := item.dist*6 + 500
		eta := (item.dist+39)/40 + 2

		var tags []domain.ListingTag
		if strings.Contains(item.mandi, "Azadpur") {
			tags = append(tags, domain.TagCheapest)
		}
		if strings.Contains(item.mandi, "Local") {
			tags = append(tags, domain.TagFastest)
		}
		if strings.Contains(item.mandi, "Kolar") {
			tags = append(tags, domain.TagBestValue)
		}

		results = append(results, domain.CropListing{
			ID:                fmt.Sprintf("d-%d", i),
			Crop:              crop,
			Mandi:             item.mandi,
			State:             item.state,
			PricePerQuintal:   item.price,
			QuantityAvailable: s.rng.Intn(50) + 10,
			DistanceKm:        item.dist,
			ETAHours:          eta,
			LogisticsCostEst:  logCost,
			Tags:              tags,
		})
	}
	return results
}
