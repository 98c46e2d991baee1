package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/domain"
)

// Navigation messages used by views to request transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// Session transition messages. Each one maps to a single state machine
// operation; the appModel applies it and rebuilds the view stack from the
// resulting screen.

// activateRoleMsg switches the active persona (login entry or role switch).
type activateRoleMsg struct {
	role domain.Role
}

// prefsCompletedMsg submits the preference setup form.
type prefsCompletedMsg struct {
	prefs domain.Preferences
}

// prefsSkippedMsg skips the preference setup.
type prefsSkippedMsg struct{}

// editPrefsMsg returns to the setup screen from the dashboard.
type editPrefsMsg struct{}

// logoutMsg ends the session and returns to the login screen.
type logoutMsg struct{}

// openDashboardMsg opens a dashboard sub-view.
type openDashboardMsg struct {
	view domain.DashboardView
}

// shipmentBookedMsg records a confirmed booking.
type shipmentBookedMsg struct {
	shipment domain.Shipment
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}
