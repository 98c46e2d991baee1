package intelligence

import (
	"fmt"

	"saarthi/internal/domain"
)

const transportSystemPrompt = `You are a quoting engine for Saarthi, an agri-logistics platform for Indian farmers.

Generate exactly 3 realistic transport options for the requested load.

You must output ONLY a JSON object with this exact shape:
{
  "options": [
    {"id":"1","provider":"...","vehicle_type":"...","price":2500,"eta":"4 Hours","rating":4.5}
  ]
}

RULES:
1. Prices are in Indian Rupees (INR), roughly accurate for the distance.
2. Vehicle types must be common in India (Tata Ace, Pickup, Eicher, Truck).
3. Ratings between 3.5 and 5.0.
4. ETA should be realistic for the route.
5. Output ONLY the JSON object, no markdown fences, no text before or after.`

func buildTransportUserPrompt(req domain.BookingRequest) string {
	return fmt.Sprintf("Quote moving %s of %s from %s to %s.",
		req.Weight, req.Crop, req.Source, req.Destination)
}
