package intelligence

import "saarthi/internal/domain"

// DefaultTransportOptions returns the fixed demo quotes used whenever the
// LLM is disabled or fails. The list is freshly allocated on every call.
func DefaultTransportOptions() []domain.TransportOption {
	return []domain.TransportOption{
		{ID: "1", Provider: "Saarthi Express", VehicleType: "Tata Ace (Chota Hathi)", Price: 2500, ETA: "4 Hours", Rating: 4.5},
		{ID: "2", Provider: "Kisan Logistics", VehicleType: "Pickup 8ft", Price: 1800, ETA: "6 Hours", Rating: 4.2},
		{ID: "3", Provider: "Speedy Transport", VehicleType: "Eicher 14ft", Price: 4500, ETA: "3 Hours", Rating: 4.8},
	}
}
