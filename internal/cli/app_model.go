package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// appModel is the root bubbletea Model for the TUI. The session state
// machine decides which screen is active; appModel mirrors that decision
// into a view stack and forwards everything else to the top view.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Last store failure, shown in the status area until the next transition.
	lastErr string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}
	m.viewStack = []View{newLoginView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// syncScreen rebuilds the view stack root from the machine's screen. Called
// after every session transition.
func (m *appModel) syncScreen() tea.Cmd {
	st := m.state.App.Machine.State()
	var root View
	switch st.Screen {
	case domain.ScreenPreferences:
		root = newPreferencesView(m.state)
	case domain.ScreenDashboard:
		root = newHomeView(m.state)
	default:
		root = newLoginView(m.state)
	}
	m.viewStack = []View{root}
	return root.Init()
}

// buildDashboardView constructs the view for a dashboard sub-view target.
func (m *appModel) buildDashboardView(view domain.DashboardView) View {
	switch view {
	case domain.ViewBookTransport:
		return newBookingView(m.state)
	case domain.ViewTrackShipment:
		return newTrackingView(m.state)
	case domain.ViewWallet:
		return newWalletView(m.state)
	case domain.ViewMarketRates:
		return newMarketView(m.state)
	case domain.ViewCropDiscovery:
		return newDiscoveryView(m.state)
	case domain.ViewSupport:
		return newSupportView(m.state)
	case domain.ViewProfile:
		return newProfileView(m.state)
	default:
		return newHomeView(m.state)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Session transitions. Each applies one machine operation and rebuilds
	// the stack from the resulting screen.
	case activateRoleMsg:
		m.lastErr = ""
		machine := m.state.App.Machine
		var err error
		if machine.State().Screen == domain.ScreenLogin {
			err = machine.SelectRole(context.Background(), msg.role)
		} else {
			err = machine.ActivateRole(context.Background(), msg.role)
		}
		if err != nil {
			m.lastErr = err.Error()
		}
		return m, m.syncScreen()

	case prefsCompletedMsg:
		m.lastErr = ""
		if err := m.state.App.Machine.CompletePreferences(context.Background(), msg.prefs); err != nil {
			m.lastErr = err.Error()
		}
		return m, m.syncScreen()

	case prefsSkippedMsg:
		m.lastErr = ""
		if err := m.state.App.Machine.SkipPreferences(context.Background()); err != nil {
			m.lastErr = err.Error()
		}
		return m, m.syncScreen()

	case editPrefsMsg:
		m.lastErr = ""
		m.state.App.Machine.RequestEditPreferences()
		return m, m.syncScreen()

	case logoutMsg:
		m.lastErr = ""
		m.state.App.Machine.Logout()
		return m, m.syncScreen()

	case openDashboardMsg:
		m.lastErr = ""
		m.state.App.Machine.NavigateDashboard(msg.view)
		v := m.buildDashboardView(msg.view)
		m.viewStack = append(m.viewStack, v)
		return m, v.Init()

	case shipmentBookedMsg:
		m.state.App.Machine.BookShipment(msg.shipment)
		return m, nil

	// Stack navigation from views.
	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		return m.popTopView(), nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case wizardCompleteMsg:
		mm := m.popTopView()
		return mm, msg.nextCmd
	}

	// Forward everything else (data loads, blink) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// popTopView removes the top view and re-homes the dashboard sub-view state
// when the stack returns to the home view.
func (m appModel) popTopView() appModel {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
	if top := m.activeView(); top != nil && top.ID() == ViewHome {
		m.state.App.Machine.NavigateDashboard(domain.ViewHome)
	}
	return m
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Views with their own text input receive all keys, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			return m.popTopView(), nil
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("saarthi")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if st := m.state.App.Machine.State(); st.ActiveRole != "" {
		header += "  " + formatter.Dim("[") + formatter.RoleBadge(st.ActiveRole) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}

	bar := strings.Join(hints, "  ")
	if m.lastErr != "" {
		bar = formatter.StyleRed.Render("! "+m.lastErr) + "\n" + bar
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewForm, ViewPreferences, ViewBooking, ViewSupport, ViewTracking:
		return true
	}
	return false
}
