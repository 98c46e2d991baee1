package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// loginView is the role selection screen shown while logged out.
type loginView struct {
	state  *SharedState
	cursor int
}

func newLoginView(state *SharedState) *loginView {
	return &loginView{state: state}
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose role")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *loginView) Init() tea.Cmd { return nil }

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (v *loginView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleGreen.Render("Saarthi") + " " + formatter.Dim("— your agri-logistics saathi") + "\n\n")
	b.WriteString("  " + formatter.Bold("Who are you?") + "\n\n")

	for i, role := range domain.AllRoles {
		line := "    " + string(role)
		if i == v.cursor {
			line = "  " + formatter.StyleHeader.Render("▸ "+string(role))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("Your wallet and profile follow the role you pick."))
	return b.String()
}
