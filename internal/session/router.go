package session

import "saarthi/internal/domain"

// MenuItem is one dashboard menu entry. The same target view can appear
// under different labels for different roles ("Book Transport" for farmers
// is "Find Loads" for transporters).
type MenuItem struct {
	View  domain.DashboardView
	Label string
	Roles []domain.Role
}

// masterMenu is the fixed, ordered menu definition for all roles.
var masterMenu = []MenuItem{
	{View: domain.ViewBookTransport, Label: "Book Transport", Roles: []domain.Role{domain.RoleFarmer, domain.RoleFPO}},
	{View: domain.ViewBookTransport, Label: "Find Loads", Roles: []domain.Role{domain.RoleTransporter}},
	{View: domain.ViewCropDiscovery, Label: "Find Crops", Roles: []domain.Role{domain.RoleBuyer}},
	{View: domain.ViewTrackShipment, Label: "Track Shipment", Roles: []domain.Role{domain.RoleFarmer, domain.RoleFPO, domain.RoleBuyer}},
	{View: domain.ViewTrackShipment, Label: "My Trips", Roles: []domain.Role{domain.RoleTransporter}},
	{View: domain.ViewMarketRates, Label: "Mandi Rates", Roles: []domain.Role{domain.RoleFarmer, domain.RoleFPO}},
	{View: domain.ViewWallet, Label: "Wallet", Roles: domain.AllRoles},
	{View: domain.ViewSupport, Label: "Support", Roles: domain.AllRoles},
	{View: domain.ViewProfile, Label: "Profile", Roles: domain.AllRoles},
}

// VisibleMenu returns the master menu filtered to items visible to role,
// preserving the master order.
func VisibleMenu(role domain.Role) []MenuItem {
	var items []MenuItem
	for _, item := range masterMenu {
		for _, r := range item.Roles {
			if r == role {
				items = append(items, item)
				break
			}
		}
	}
	return items
}

// ResolveView normalizes a sub-view value for rendering. Home is the
// default for the initial state and any unrecognized value.
func ResolveView(view domain.DashboardView) domain.DashboardView {
	switch view {
	case domain.ViewBookTransport, domain.ViewTrackShipment, domain.ViewSupport,
		domain.ViewProfile, domain.ViewWallet, domain.ViewMarketRates,
		domain.ViewCropDiscovery, domain.ViewHome:
		return view
	default:
		return domain.ViewHome
	}
}
