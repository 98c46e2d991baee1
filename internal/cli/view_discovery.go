package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// listingsLoadedMsg carries the discovery listings for a crop.
type listingsLoadedMsg struct {
	listings []domain.CropListing
}

// discoveryView is the buyer's sourcing screen: where a crop is available,
// at what price, and what getting it here would cost.
type discoveryView struct {
	state    *SharedState
	loading  bool
	listings []domain.CropListing
}

func newDiscoveryView(state *SharedState) *discoveryView {
	return &discoveryView{state: state, loading: true}
}

func (v *discoveryView) ID() ViewID    { return ViewDiscovery }
func (v *discoveryView) Title() string { return "Find Crops" }

func (v *discoveryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *discoveryView) Init() tea.Cmd {
	st := v.state.App.Machine.State()
	crop := ""
	if st.Preferences != nil {
		crop = st.Preferences.PrimaryCrop
	}
	svc := v.state.App.Market
	return func() tea.Msg {
		return listingsLoadedMsg{listings: svc.Listings(crop)}
	}
}

func (v *discoveryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(listingsLoadedMsg); ok {
		v.loading = false
		v.listings = msg.listings
	}
	return v, nil
}

func (v *discoveryView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.loading {
		b.WriteString("  " + formatter.Dim("Searching mandis...") + "\n")
		return b.String()
	}

	crop := "Onion"
	if len(v.listings) > 0 {
		crop = v.listings[0].Crop
	}
	b.WriteString(indent(formatter.Header(crop+" Availability"), 2) + "\n")

	for _, l := range v.listings {
		var tags []string
		for _, t := range l.Tags {
			tags = append(tags, formatter.TagPill(t))
		}
		tagStr := ""
		if len(tags) > 0 {
			tagStr = "  " + strings.Join(tags, " ")
		}

		b.WriteString("  " + formatter.Bold(l.Mandi) + " " + formatter.Dim("("+l.State+")") + tagStr + "\n")
		b.WriteString("      " + formatter.StyleGreen.Render(formatter.Rupees(l.PricePerQuintal)) + formatter.Dim("/quintal") +
			formatter.Dim(fmt.Sprintf("  ·  %d tons available  ·  %d km", l.QuantityAvailable, l.DistanceKm)) + "\n")
		b.WriteString("      " + formatter.Dim(fmt.Sprintf("logistics est %s  ·  ~%d hrs", formatter.Rupees(l.LogisticsCostEst), l.ETAHours)) + "\n")
	}

	return b.String()
}
