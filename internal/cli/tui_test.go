package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi/internal/domain"
	"saarthi/internal/intelligence"
	"saarthi/internal/session"
)

func TestTUI_StartsOnLoginScreen(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.View(), "Who are you?")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_FirstLoginOpensSetup(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	// First role on the list is the farmer.
	d.PressEnter()

	assert.Equal(t, domain.RoleFarmer, d.Session().ActiveRole)
	assert.Equal(t, domain.ScreenPreferences, d.Session().Screen)
	assert.Equal(t, ViewPreferences, d.ActiveViewID())
	assert.Contains(t, d.View(), "Set up your Farmer profile")
}

func TestTUI_ArrowKeysPickRole(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown()
	d.PressDown()
	d.PressEnter()

	assert.Equal(t, domain.RoleBuyer, d.Session().ActiveRole)
}

func TestTUI_SkipSetupLandsOnDashboard(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)

	d.SkipSetup()

	assert.Equal(t, domain.ScreenDashboard, d.Session().Screen)
	assert.Equal(t, ViewHome, d.ActiveViewID())

	view := d.View()
	assert.Contains(t, view, "₹12,500")
	assert.Contains(t, view, "Book Transport")
	assert.Contains(t, view, "Complete your profile")
}

func TestTUI_CompleteSetupHidesProfileNag(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)

	d.CompleteSetup(domain.Preferences{
		Location:    "Nashik",
		PrimaryCrop: "Onion",
		LoadSize:    "2 Tons",
		Urgency:     domain.UrgencyNormal,
	})

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.NotContains(t, d.View(), "Complete your profile")
}

func TestTUI_WalletOpensAndPopsBack(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.SkipSetup()

	// Farmer menu: Book Transport, Track Shipment, Mandi Rates, Wallet...
	d.OpenMenuItem(3)

	assert.Equal(t, ViewWallet, d.ActiveViewID())
	assert.Equal(t, []ViewID{ViewHome, ViewWallet}, d.ViewStackIDs())
	view := d.View()
	assert.Contains(t, view, "₹12,500")
	assert.Contains(t, view, "Advance for Onion Load")

	d.PressEsc()

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_MandiRatesLoadOnOpen(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.CompleteSetup(domain.Preferences{Location: "Nashik", PrimaryCrop: "Onion", Urgency: domain.UrgencyNormal})

	d.OpenMenuItem(2)

	assert.Equal(t, ViewMarket, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "Onion")
	assert.Contains(t, view, "Nashik")
	assert.Contains(t, view, "MSP")
}

func TestTUI_BookingFlow(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.CompleteSetup(domain.Preferences{Location: "Nashik", PrimaryCrop: "Onion", LoadSize: "2 Tons", Urgency: domain.UrgencyNormal})

	d.OpenMenuItem(0)
	assert.Equal(t, ViewBooking, d.ActiveViewID())
	assert.Contains(t, d.View(), "Where is the load going?")

	// Deliver quotes directly, as the search command would.
	d.Send(quotesLoadedMsg{quotes: &intelligence.TransportQuotes{
		Options: intelligence.DefaultTransportOptions(),
		Source:  "deterministic",
	}})

	view := d.View()
	assert.Contains(t, view, "Select Vehicle")
	assert.Contains(t, view, "Saarthi Express")
	assert.Contains(t, view, "live quotes unavailable")

	d.PressEnter()

	assert.Contains(t, d.View(), "Booking Confirmed")
	require.Len(t, d.Session().Shipments, 1)
	s := d.Session().Shipments[0]
	assert.Equal(t, domain.ShipmentBooked, s.Status)
	assert.Equal(t, 2500, s.Cost)

	// Done screen pops back to home, which lists the new shipment.
	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Contains(t, d.View(), s.ID)
}

func TestTUI_TrackingFallsBackToDemoShipment(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.SkipSetup()

	d.OpenMenuItem(1)
	assert.Equal(t, ViewTracking, d.ActiveViewID())

	d.Type("9999")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "SA-9999")
	assert.Contains(t, view, "Nagpur")
	assert.Contains(t, view, "In Transit")

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_TrackingFindsBookedShipment(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.SkipSetup()
	d.Send(shipmentBookedMsg{shipment: domain.Shipment{
		ID: "SA-4242", Source: "Nashik", Destination: "Pune",
		Crop: "Onion", Weight: "2 Tons", Status: domain.ShipmentBooked,
	}})

	d.OpenMenuItem(1)
	d.Type("4242")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "SA-4242")
	assert.Contains(t, view, "Pune")
}

func TestTUI_SupportChatAnswersOffline(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.SkipSetup()

	d.OpenMenuItem(4)
	assert.Equal(t, ViewSupport, d.ActiveViewID())

	d.Type("payment stuck")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "You: payment stuck")
	assert.Contains(t, view, "Wallet")
	assert.Contains(t, view, "offline guidance")

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_PersonaSwitchSwapsContext(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.CompleteSetup(domain.Preferences{Location: "Nashik", PrimaryCrop: "Onion", Urgency: domain.UrgencyNormal})

	d.PressKey('p')
	assert.Equal(t, ViewPersona, d.ActiveViewID())

	// Farmer is first in the list; buyer is third.
	d.PressDown()
	d.PressDown()
	d.PressEnter()

	// Buyer has never been set up, so setup opens with the buyer wallet.
	assert.Equal(t, domain.RoleBuyer, d.Session().ActiveRole)
	assert.Equal(t, domain.ScreenPreferences, d.Session().Screen)
	assert.Equal(t, 45000, d.Session().Wallet.Balance)

	d.SkipSetup()
	assert.Contains(t, d.View(), "Find Crops")

	// Back to the farmer: stored profile routes straight to the dashboard.
	d.PressKey('p')
	d.PressUp()
	d.PressUp()
	d.PressEnter()

	assert.Equal(t, domain.RoleFarmer, d.Session().ActiveRole)
	assert.Equal(t, domain.ScreenDashboard, d.Session().Screen)
	assert.Equal(t, 12500, d.Session().Wallet.Balance)
	require.NotNil(t, d.Session().Preferences)
	assert.Equal(t, "Nashik", d.Session().Preferences.Location)
}

func TestTUI_BuyerDiscoveryListsMandis(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleBuyer)
	d.CompleteSetup(domain.Preferences{Location: "Pune", PrimaryCrop: "Tomato", Urgency: domain.UrgencyNormal})

	d.OpenMenuItem(0)

	assert.Equal(t, ViewDiscovery, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "TOMATO AVAILABILITY")
	assert.Contains(t, view, "Lasalgaon APMC")
	assert.Contains(t, view, "Azadpur Mandi")
}

func TestTUI_ProfileEditAndCancel(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.CompleteSetup(domain.Preferences{Location: "Nashik", PrimaryCrop: "Onion", Urgency: domain.UrgencyNormal})

	d.OpenMenuItem(5)
	assert.Equal(t, ViewProfile, d.ActiveViewID())
	assert.Contains(t, d.View(), "Nashik")

	d.PressKey('e')
	assert.Equal(t, domain.ScreenPreferences, d.Session().Screen)
	assert.Equal(t, ViewPreferences, d.ActiveViewID())
	assert.Contains(t, d.View(), "Editing saved profile")

	// Esc cancels the edit and returns to the dashboard untouched.
	d.PressEsc()
	assert.Equal(t, domain.ScreenDashboard, d.Session().Screen)
	assert.Equal(t, "Nashik", d.Session().Preferences.Location)
}

func TestTUI_LogoutReturnsToLogin(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.SkipSetup()

	d.OpenMenuItem(5)
	d.PressKey('x')

	assert.Equal(t, ViewLogin, d.ActiveViewID())
	assert.Equal(t, domain.ScreenLogin, d.Session().Screen)
	assert.Equal(t, session.RoleNone, d.Session().ActiveRole)
}

func TestTUI_EscOnRootViewIsNoop(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.LoginAs(domain.RoleFarmer)
	d.SkipSetup()

	d.PressEsc()

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}
