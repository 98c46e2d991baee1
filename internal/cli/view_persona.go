package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// personaView is the in-app role switcher. Unlike the login screen it keeps
// the session alive: picking a role is a full context swap via the machine.
type personaView struct {
	state  *SharedState
	cursor int
}

func newPersonaView(state *SharedState) *personaView {
	v := &personaView{state: state}
	active := state.App.Machine.State().ActiveRole
	for i, role := range domain.AllRoles {
		if role == active {
			v.cursor = i
			break
		}
	}
	return v
}

func (v *personaView) ID() ViewID    { return ViewPersona }
func (v *personaView) Title() string { return "Switch Role" }

func (v *personaView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *personaView) Init() tea.Cmd { return nil }

func (v *personaView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(domain.AllRoles)-1 {
				v.cursor++
			}
		case "enter":
			role := domain.AllRoles[v.cursor]
			return v, func() tea.Msg { return activateRoleMsg{role: role} }
		}
	}
	return v, nil
}

func (v *personaView) View() string {
	active := v.state.App.Machine.State().ActiveRole

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold("Switch persona") + "\n\n")

	for i, role := range domain.AllRoles {
		label := string(role)
		if role == active {
			label += " " + formatter.StyleGreen.Render("(current)")
		}
		if i == v.cursor {
			b.WriteString("  " + formatter.StyleHeader.Render("▸ "+label) + "\n")
		} else {
			b.WriteString("    " + label + "\n")
		}
	}

	b.WriteString("\n  " + formatter.Dim("Switching loads that role's profile and wallet."))
	return b.String()
}
