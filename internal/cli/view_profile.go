package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// profileView shows the active role's profile and is the place to edit it,
// switch persona, or log out.
type profileView struct {
	state *SharedState
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state}
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Profile" }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "switch role")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "log out")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "e":
			return v, func() tea.Msg { return editPrefsMsg{} }
		case "p":
			return v, pushView(newPersonaView(v.state))
		case "x":
			return v, func() tea.Msg { return logoutMsg{} }
		}
	}
	return v, nil
}

func (v *profileView) View() string {
	st := v.state.App.Machine.State()

	var b strings.Builder
	b.WriteString("\n")

	var content strings.Builder
	content.WriteString(formatter.Dim("Role        ") + formatter.RoleBadge(st.ActiveRole) + "\n")

	if domain.IsProfileIncomplete(st.Preferences) {
		content.WriteString("\n" + formatter.StyleYellow.Render("Profile incomplete") + "\n")
		content.WriteString(formatter.Dim("Press e to add your location and crop."))
	} else {
		p := st.Preferences
		content.WriteString(formatter.Dim("Location    ") + p.Location + "\n")
		content.WriteString(formatter.Dim("Crop        ") + p.PrimaryCrop + "\n")
		if p.LoadSize != "" {
			content.WriteString(formatter.Dim("Load Size   ") + p.LoadSize + "\n")
		}
		content.WriteString(formatter.Dim("Urgency     ") + string(p.Urgency))
	}

	b.WriteString(indent(formatter.RenderBox("Your Profile", content.String()), 2))
	b.WriteString("\n\n  " + formatter.Dim("Logging out keeps your saved profile and wallet."))
	return b.String()
}
