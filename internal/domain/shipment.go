package domain

// Shipment is a confirmed booking. Weight stays free-form ("5 Tons") since it
// is echoed back exactly as the user typed it.
type Shipment struct {
	ID          string
	Source      string
	Destination string
	Crop        string
	Weight      string
	Status      ShipmentStatus
	Date        string // YYYY-MM-DD pickup date
	Cost        int
	ETA         string
}

// TransportOption is one vehicle quote offered for a booking request.
type TransportOption struct {
	ID          string  `json:"id"`
	Provider    string  `json:"provider"`
	VehicleType string  `json:"vehicle_type"`
	Price       int     `json:"price"`
	ETA         string  `json:"eta"`
	Rating      float64 `json:"rating"`
}

// BookingRequest is the form input used to search for transport options.
type BookingRequest struct {
	Source      string
	Destination string
	Crop        string
	Weight      string
	Date        string
}

// MarketRate is one crop/mandi price quote. Price and MSP are rupees per
// quintal.
type MarketRate struct {
	ID     string
	Crop   string
	Mandi  string
	Price  int
	MSP    int
	Trend  PriceTrend
	Change float64 // percentage
}

// ListingTag marks a discovery listing as notable on one axis.
type ListingTag string

const (
	TagCheapest  ListingTag = "Cheapest"
	TagFastest   ListingTag = "Fastest"
	TagBestValue ListingTag = "Best Value"
)

// CropListing is one buy-side discovery result.
type CropListing struct {
	ID                string
	Crop              string
	Mandi             string
	State             string
	PricePerQuintal   int
	QuantityAvailable int // tons
	DistanceKm        int
	ETAHours          int
	LogisticsCostEst  int
	Tags              []ListingTag
}

// ChatMessage is a single turn in the support conversation.
type ChatMessage struct {
	ID      string
	Role    string // "user" or "model"
	Text    string
	IsError bool
}
