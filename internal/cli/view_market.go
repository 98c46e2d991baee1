package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// ratesLoadedMsg carries fresh mandi rates.
type ratesLoadedMsg struct {
	rates []domain.MarketRate
}

// marketView shows mandi prices biased to the user's location and primary
// crop. Rates regenerate on every refresh.
type marketView struct {
	state   *SharedState
	loading bool
	rates   []domain.MarketRate
}

func newMarketView(state *SharedState) *marketView {
	return &marketView{state: state, loading: true}
}

func (v *marketView) ID() ViewID    { return ViewMarket }
func (v *marketView) Title() string { return "Mandi Rates" }

func (v *marketView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *marketView) Init() tea.Cmd {
	return v.loadRates()
}

func (v *marketView) loadRates() tea.Cmd {
	st := v.state.App.Machine.State()
	location, crop := "", ""
	if st.Preferences != nil {
		location = st.Preferences.Location
		crop = st.Preferences.PrimaryCrop
	}
	svc := v.state.App.Market
	return func() tea.Msg {
		return ratesLoadedMsg{rates: svc.Rates(location, crop)}
	}
}

func (v *marketView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ratesLoadedMsg:
		v.loading = false
		v.rates = msg.rates
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadRates()
		}
	}
	return v, nil
}

func (v *marketView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.loading {
		b.WriteString("  " + formatter.Dim("Fetching today's rates...") + "\n")
		return b.String()
	}

	b.WriteString(indent(formatter.Header("Today's Mandi Rates"), 2) + "\n")
	for i, r := range v.rates {
		marker := "  "
		if i == 0 {
			marker = formatter.StyleGreen.Render("★ ")
		}
		b.WriteString("  " + marker + padRight(r.Crop, 12) + padRight(r.Mandi, 20) +
			formatter.Bold(formatter.Rupees(r.Price)) + formatter.Dim("/quintal") + "  " +
			formatter.TrendArrow(r.Trend, r.Change) + "\n" +
			"      " + formatter.Dim(fmt.Sprintf("MSP %s", formatter.Rupees(r.MSP))) + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("★ your mandi and crop. Press r to refresh."))

	return b.String()
}
