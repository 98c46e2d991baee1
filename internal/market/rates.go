// Package market generates demo mandi rates and buy-side crop listings. The
// numbers are synthetic but shaped like real APMC data: base prices per crop,
// MSP below base, small random variation per refresh.
package market

import (
	"fmt"
	"math/rand"
	"strings"

	"saarthi/internal/domain"
)

// Service produces market data. Randomness is injected so tests can pin it.
type Service struct {
	rng *rand.Rand
}

// NewService creates a market data service seeded from src. A nil src uses
// the shared global source.
func NewService(src rand.Source) *Service {
	if src == nil {
		return &Service{rng: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &Service{rng: rand.New(src)}
}

var (
	rateCrops  = []string{"Onion", "Tomato", "Potato", "Wheat", "Soybean"}
	rateMandis = []string{"Local Mandi", "Vashi APMC", "Lasalgaon", "Azadpur", "Pune APMC"}
)

// basePrice returns the reference price per quintal for a crop.
func basePrice(crop string) int {
	lower := strings.ToLower(crop)
	switch {
	case strings.Contains(lower, "onion"):
		return 2200
	case strings.Contains(lower, "tomato"):
		return 1800
	case strings.Contains(lower, "soybean"):
		return 4800
	default:
		return 3000
	}
}

// Rates returns five quotes. The first row is always the user's own
// location and primary crop so it reads as "your mandi today".
func (s *Service) Rates(location, primaryCrop string) []domain.MarketRate {
	if primaryCrop == "" {
		primaryCrop = "Onion"
	}
	if location == "" {
		location = "Local Mandi"
	}

	crops := append([]string{primaryCrop}, rateCrops[1:]...)

	results := make([]domain.MarketRate, 0, 5)
	for i := 0; i < 5; i++ {
		crop := crops[i%len(crops)]
		mandi := rateMandis[i%len(rateMandis)]
		if i == 0 {
			crop = primaryCrop
			mandi = location
		}

		base := basePrice(crop)
		variation := s.rng.Intn(400) - 200

		results = append(results, domain.MarketRate{
			ID:     fmt.Sprintf("m-%d", i),
			Crop:   crop,
			Mandi:  mandi,
			Price:  base + variation,
			MSP:    base - 500,
			Trend:  s.randomTrend(),
			Change: float64(s.rng.Intn(50)) / 10.0,
		})
	}
	return results
}

func (s *Service) randomTrend() domain.PriceTrend {
	r := s.rng.Float64()
	switch {
	case r > 0.6:
		return domain.TrendUp
	case r > 0.3:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}
