package domain

// Role is one of the four fixed personas the app supports.
type Role string

const (
	RoleFarmer      Role = "Farmer (Kisan)"
	RoleFPO         Role = "FPO / Admin"
	RoleBuyer       Role = "Buyer (Vyapari)"
	RoleTransporter Role = "Transporter"
)

// AllRoles is the closed, ordered set of personas shown on the login screen.
var AllRoles = []Role{RoleFarmer, RoleFPO, RoleBuyer, RoleTransporter}

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[Role]bool{
	RoleFarmer: true, RoleFPO: true, RoleBuyer: true, RoleTransporter: true,
}

// ShortName returns the first word of the role label, used in compact headers.
func (r Role) ShortName() string {
	for i := 0; i < len(r); i++ {
		if r[i] == ' ' {
			return string(r[:i])
		}
	}
	return string(r)
}

type Screen string

const (
	ScreenLogin       Screen = "login"
	ScreenPreferences Screen = "preferences"
	ScreenDashboard   Screen = "dashboard"
)

type DashboardView string

const (
	ViewHome          DashboardView = "home"
	ViewBookTransport DashboardView = "book_transport"
	ViewTrackShipment DashboardView = "track_shipment"
	ViewSupport       DashboardView = "support"
	ViewProfile       DashboardView = "profile"
	ViewWallet        DashboardView = "wallet"
	ViewMarketRates   DashboardView = "market_rates"
	ViewCropDiscovery DashboardView = "crop_discovery"
)

type Urgency string

const (
	UrgencyNormal   Urgency = "Normal"
	UrgencyUrgent   Urgency = "Urgent"
	UrgencyFlexible Urgency = "Flexible"
)

type TransactionType string

const (
	TxCredit TransactionType = "credit"
	TxDebit  TransactionType = "debit"
)

type TransactionCategory string

const (
	TxPayment   TransactionCategory = "payment"
	TxRefund    TransactionCategory = "refund"
	TxIncentive TransactionCategory = "incentive"
	TxPayout    TransactionCategory = "payout"
)

type TransactionStatus string

const (
	TxCompleted TransactionStatus = "completed"
	TxPending   TransactionStatus = "pending"
	TxFailed    TransactionStatus = "failed"
)

type ShipmentStatus string

const (
	ShipmentBooked    ShipmentStatus = "Booked"
	ShipmentPickedUp  ShipmentStatus = "Picked Up"
	ShipmentInTransit ShipmentStatus = "In Transit"
	ShipmentDelivered ShipmentStatus = "Delivered"
)

// ShipmentStages is the ordered delivery pipeline shown by the tracking view.
var ShipmentStages = []ShipmentStatus{
	ShipmentBooked, ShipmentPickedUp, ShipmentInTransit, ShipmentDelivered,
}

type PriceTrend string

const (
	TrendUp     PriceTrend = "up"
	TrendDown   PriceTrend = "down"
	TrendStable PriceTrend = "stable"
)
