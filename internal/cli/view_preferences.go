package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// preferencesView is the profile setup screen. It is shown on first login
// for a role and when editing the profile later. Submitting saves the
// record; ctrl+s skips (records the canonical empty profile); esc while
// editing cancels back to the dashboard without touching the store.
type preferencesView struct {
	state   *SharedState
	form    *huh.Form
	values  *preferencesFormValues
	editing bool // an existing record is being edited
}

func newPreferencesView(state *SharedState) *preferencesView {
	st := state.App.Machine.State()

	values := &preferencesFormValues{}
	editing := false
	if st.Preferences != nil {
		editing = true
		values.Location = st.Preferences.Location
		values.PrimaryCrop = st.Preferences.PrimaryCrop
		values.LoadSize = st.Preferences.LoadSize
		values.Urgency = string(st.Preferences.Urgency)
	}

	return &preferencesView{
		state:   state,
		form:    preferencesForm(values),
		values:  values,
		editing: editing,
	}
}

func (v *preferencesView) ID() ViewID    { return ViewPreferences }
func (v *preferencesView) Title() string { return "Profile Setup" }

func (v *preferencesView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "skip for now")),
		key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "switch role")),
	}
	if v.editing {
		bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
	}
	return bindings
}

func (v *preferencesView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *preferencesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			if v.editing {
				// An existing record stays as-is; just return to the dashboard.
				return v, v.cancelEdit()
			}
			return v, func() tea.Msg { return prefsSkippedMsg{} }
		case "ctrl+p":
			return v, pushView(newPersonaView(v.state))
		case "esc":
			if v.editing {
				return v, v.cancelEdit()
			}
			// First-time setup: esc skips, matching the "Skip for now" link.
			return v, func() tea.Msg { return prefsSkippedMsg{} }
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		prefs := domain.Preferences{
			Location:    strings.TrimSpace(v.values.Location),
			PrimaryCrop: strings.TrimSpace(v.values.PrimaryCrop),
			LoadSize:    strings.TrimSpace(v.values.LoadSize),
			Urgency:     domain.Urgency(v.values.Urgency),
		}
		return v, func() tea.Msg { return prefsCompletedMsg{prefs: prefs} }
	}

	return v, cmd
}

// cancelEdit re-activates the current role, which reloads the stored record
// and routes back to the dashboard.
func (v *preferencesView) cancelEdit() tea.Cmd {
	role := v.state.App.Machine.State().ActiveRole
	return func() tea.Msg { return activateRoleMsg{role: role} }
}

func (v *preferencesView) View() string {
	st := v.state.App.Machine.State()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold("Set up your "+st.ActiveRole.ShortName()+" profile") + "\n")
	if v.editing {
		b.WriteString("  " + formatter.Dim("Editing saved profile") + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("This personalises rates and bookings. Skip anytime with ctrl+s.") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.form.View())
	return b.String()
}
