package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
	"saarthi/internal/session"
)

// homeView is the dashboard landing screen: wallet card, role-scoped menu
// and recent shipments. The menu comes from the session router, so each
// role sees its own labels.
type homeView struct {
	state  *SharedState
	menu   []session.MenuItem
	cursor int
}

func newHomeView(state *SharedState) *homeView {
	st := state.App.Machine.State()
	return &homeView{
		state: state,
		menu:  session.VisibleMenu(st.ActiveRole),
	}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Dashboard" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "menu")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "switch role")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.menu)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.menu) {
				target := v.menu[v.cursor].View
				return v, func() tea.Msg { return openDashboardMsg{view: target} }
			}
		case "p":
			return v, pushView(newPersonaView(v.state))
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	st := v.state.App.Machine.State()

	var b strings.Builder
	b.WriteString("\n")

	// Wallet card.
	card := formatter.Dim("Wallet Balance") + "\n" +
		formatter.StyleGreen.Render(formatter.Rupees(st.Wallet.Balance))
	b.WriteString(indent(formatter.RenderBox("", card), 2))
	b.WriteString("\n")

	if domain.IsProfileIncomplete(st.Preferences) {
		b.WriteString("  " + formatter.StyleYellow.Render("! Complete your profile") +
			formatter.Dim(" for better rates — open Profile to finish setup.") + "\n\n")
	}

	// Menu.
	for i, item := range v.menu {
		if i == v.cursor {
			b.WriteString("  " + formatter.StyleHeader.Render("▸ "+item.Label) + "\n")
		} else {
			b.WriteString("    " + item.Label + "\n")
		}
	}

	// Recent activity.
	if len(st.Shipments) > 0 {
		b.WriteString("\n" + indent(formatter.Header("Recent Shipments"), 2) + "\n")
		limit := 3
		if len(st.Shipments) < limit {
			limit = len(st.Shipments)
		}
		for _, s := range st.Shipments[:limit] {
			b.WriteString("  " + formatter.Bold(s.ID) + "  " +
				s.Source + " → " + s.Destination + "  " +
				formatter.ShipmentStatusPill(s.Status) + "\n")
		}
	}

	return b.String()
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
