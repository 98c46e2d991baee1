// Package session holds the role-scoped session and navigation state
// machine. It is pure in-process transition logic: no rendering, no I/O of
// its own beyond the injected stores, so it can be driven and tested without
// a UI runtime.
package session

import (
	"context"
	"errors"
	"fmt"

	"saarthi/internal/domain"
	"saarthi/internal/repository"
)

// RoleNone is the zero active-role value (logged out).
const RoleNone = domain.Role("")

// State is the externally visible session snapshot read by view renderers.
type State struct {
	ActiveRole domain.Role // RoleNone when logged out
	Screen     domain.Screen
	View       domain.DashboardView

	// Displayed state for the active role. Preferences is nil while the
	// role has no stored record; Wallet is the zero wallet when logged out.
	Preferences *domain.Preferences
	Wallet      domain.WalletSnapshot

	// Shipments booked during the current dashboard session, newest first.
	// Cleared on role switch and logout; stores are not involved.
	Shipments []domain.Shipment
}

// Machine owns the session state and governs every transition. All
// operations run synchronously on the event-handling goroutine; the machine
// holds no locks. Exactly one role is active at a time; switching personas
// is a full context swap, never a stack push.
type Machine struct {
	prefs   repository.PreferenceRepo
	wallets repository.WalletRepo

	state State
}

// NewMachine creates a logged-out machine at the login screen.
func NewMachine(prefs repository.PreferenceRepo, wallets repository.WalletRepo) *Machine {
	return &Machine{
		prefs:   prefs,
		wallets: wallets,
		state: State{
			Screen: domain.ScreenLogin,
			View:   domain.ViewHome,
		},
	}
}

// State returns a copy of the current session snapshot.
func (m *Machine) State() State {
	return m.state
}

// SelectRole is the login-screen entry transition. Anywhere else it is a
// no-op; persona switches from inside the app go through ActivateRole.
func (m *Machine) SelectRole(ctx context.Context, role domain.Role) error {
	if m.state.Screen != domain.ScreenLogin {
		return nil
	}
	return m.ActivateRole(ctx, role)
}

// ActivateRole makes role the active persona. Two independent effects both
// always run: the routing decision (stored preferences present → dashboard,
// absent → setup screen) and wallet hydration via lazy GetOrCreate. The
// dashboard sub-view resets to Home on every activation, even when the new
// role was already configured.
func (m *Machine) ActivateRole(ctx context.Context, role domain.Role) error {
	m.state.ActiveRole = role
	m.state.View = domain.ViewHome
	m.state.Shipments = nil

	stored, err := m.prefs.Get(ctx, role)
	switch {
	case err == nil:
		m.state.Preferences = stored
		m.state.Screen = domain.ScreenDashboard
	case errors.Is(err, repository.ErrNotFound):
		m.state.Preferences = nil
		m.state.Screen = domain.ScreenPreferences
	default:
		return fmt.Errorf("loading preferences for %s: %w", role, err)
	}

	wallet, err := m.wallets.GetOrCreate(ctx, role)
	if err != nil {
		return fmt.Errorf("hydrating wallet for %s: %w", role, err)
	}
	m.state.Wallet = wallet

	return nil
}

// CompletePreferences saves the setup form and advances to the dashboard.
// With incomplete input (missing location or primary crop) the transition is
// a silent no-op: the screen does not advance and no error is raised, the
// caller simply re-prompts.
func (m *Machine) CompletePreferences(ctx context.Context, prefs domain.Preferences) error {
	if m.state.Screen != domain.ScreenPreferences || m.state.ActiveRole == RoleNone {
		return nil
	}
	if !prefs.IsComplete() {
		return nil
	}

	if err := m.prefs.Set(ctx, m.state.ActiveRole, prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}

	m.state.Preferences = &prefs
	m.state.Screen = domain.ScreenDashboard
	m.state.View = domain.ViewHome
	return nil
}

// SkipPreferences records the canonical empty record so the role counts as
// visited, then advances to the dashboard. No-op without an active role.
func (m *Machine) SkipPreferences(ctx context.Context) error {
	if m.state.Screen != domain.ScreenPreferences || m.state.ActiveRole == RoleNone {
		return nil
	}

	if err := m.prefs.SetEmpty(ctx, m.state.ActiveRole); err != nil {
		return fmt.Errorf("saving skipped preferences: %w", err)
	}

	empty := domain.EmptyPreferences()
	m.state.Preferences = &empty
	m.state.Screen = domain.ScreenDashboard
	m.state.View = domain.ViewHome
	return nil
}

// RequestEditPreferences returns to the setup screen from the dashboard
// without touching the store; the displayed record seeds the form.
func (m *Machine) RequestEditPreferences() {
	if m.state.Screen != domain.ScreenDashboard {
		return
	}
	m.state.Screen = domain.ScreenPreferences
}

// Logout clears the active persona and resets the displayed state. Store
// rows survive, so re-selecting the same role later restores prior state.
func (m *Machine) Logout() {
	if m.state.ActiveRole == RoleNone {
		return
	}
	m.state = State{
		Screen: domain.ScreenLogin,
		View:   domain.ViewHome,
	}
}

// NavigateDashboard sets the dashboard sub-view. Valid only while on the
// dashboard; always succeeds there, with no store side effects.
func (m *Machine) NavigateDashboard(view domain.DashboardView) {
	if m.state.Screen != domain.ScreenDashboard {
		return
	}
	m.state.View = view
}

// BookShipment records a confirmed booking at the head of the session's
// shipment list. Booking does not touch the wallet in this version.
func (m *Machine) BookShipment(s domain.Shipment) {
	if m.state.Screen != domain.ScreenDashboard {
		return
	}
	m.state.Shipments = append([]domain.Shipment{s}, m.state.Shipments...)
}

// FindShipment looks up a session shipment by ID, tolerating a missing
// "SA-" prefix. Returns nil when not found.
func (m *Machine) FindShipment(id string) *domain.Shipment {
	for i := range m.state.Shipments {
		s := &m.state.Shipments[i]
		if s.ID == id || s.ID == "SA-"+id {
			return s
		}
	}
	return nil
}
