package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
	"saarthi/internal/intelligence"
)

// bookingStep tracks the three-phase booking flow.
type bookingStep int

const (
	bookingStepForm bookingStep = iota
	bookingStepOptions
	bookingStepDone
)

// quotesLoadedMsg carries the transport quotes for the current request.
type quotesLoadedMsg struct {
	quotes *intelligence.TransportQuotes
}

// bookingView walks the user from a search form through vehicle selection to
// a confirmed shipment. The transporter persona sees the same flow labeled
// as load finding by the menu.
type bookingView struct {
	state  *SharedState
	step   bookingStep
	form   *huh.Form
	values *bookingFormValues

	loading bool
	quotes  *intelligence.TransportQuotes
	cursor  int

	booked *domain.Shipment
}

func newBookingView(state *SharedState) *bookingView {
	st := state.App.Machine.State()

	values := &bookingFormValues{}
	if st.Preferences != nil {
		values.Source = st.Preferences.Location
		values.Crop = st.Preferences.PrimaryCrop
		values.Weight = st.Preferences.LoadSize
	}

	return &bookingView{
		state:  state,
		step:   bookingStepForm,
		form:   bookingForm(values),
		values: values,
	}
}

func (v *bookingView) ID() ViewID    { return ViewBooking }
func (v *bookingView) Title() string { return "Book Transport" }

func (v *bookingView) ShortHelp() []key.Binding {
	switch v.step {
	case bookingStepOptions:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose vehicle")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "book")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to form")),
		}
	case bookingStepDone:
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
}

func (v *bookingView) Init() tea.Cmd {
	return v.form.Init()
}

// searchQuotes asks the transport service for vehicle options.
func (v *bookingView) searchQuotes() tea.Cmd {
	req := domain.BookingRequest{
		Source:      v.values.Source,
		Destination: v.values.Destination,
		Crop:        v.values.Crop,
		Weight:      v.values.Weight,
		Date:        v.values.Date,
	}
	svc := v.state.App.Transport
	return func() tea.Msg {
		return quotesLoadedMsg{quotes: svc.Quotes(context.Background(), req)}
	}
}

func (v *bookingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quotesLoadedMsg:
		v.loading = false
		v.quotes = msg.quotes
		v.cursor = 0
		v.step = bookingStepOptions
		return v, nil

	case tea.KeyMsg:
		switch v.step {
		case bookingStepForm:
			if msg.Type == tea.KeyEsc {
				return v, popView()
			}
		case bookingStepOptions:
			return v.updateOptions(msg)
		case bookingStepDone:
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				return v, popView()
			}
			return v, nil
		}
	}

	if v.step != bookingStepForm {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.loading = true
		return v, v.searchQuotes()
	}

	return v, cmd
}

func (v *bookingView) updateOptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := v.quotes.Options
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(options)-1 {
			v.cursor++
		}
	case "esc":
		// Back to the form with the values kept.
		v.step = bookingStepForm
		v.form = bookingForm(v.values)
		return v, v.form.Init()
	case "enter":
		if v.cursor >= len(options) {
			return v, nil
		}
		opt := options[v.cursor]
		shipment := domain.Shipment{
			ID:          newShipmentID(),
			Source:      v.values.Source,
			Destination: v.values.Destination,
			Crop:        v.values.Crop,
			Weight:      v.values.Weight,
			Status:      domain.ShipmentBooked,
			Date:        v.values.Date,
			Cost:        opt.Price,
			ETA:         opt.ETA,
		}
		v.booked = &shipment
		v.step = bookingStepDone
		return v, func() tea.Msg { return shipmentBookedMsg{shipment: shipment} }
	}
	return v, nil
}

// newShipmentID derives a four-digit booking reference from a fresh UUID.
func newShipmentID() string {
	id := uuid.New()
	n := 1000 + (int(id[0])<<8|int(id[1]))%9000
	return fmt.Sprintf("SA-%d", n)
}

func (v *bookingView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Finding vehicles for your load...") + "\n")

	case v.step == bookingStepForm:
		b.WriteString("  " + formatter.Bold("Where is the load going?") + "\n\n")
		b.WriteString(v.form.View())

	case v.step == bookingStepOptions:
		b.WriteString("  " + formatter.Bold("Select Vehicle") + "\n")
		if v.quotes.Source == "deterministic" {
			b.WriteString("  " + formatter.Dim("Showing standard partners (live quotes unavailable)") + "\n")
		}
		b.WriteString("\n")
		if len(v.quotes.Options) == 0 {
			b.WriteString("  " + formatter.Dim("No transporters found for this route. Try different locations.") + "\n")
			break
		}
		for i, opt := range v.quotes.Options {
			line := fmt.Sprintf("%s  %s  %s  %s  %s",
				formatter.Bold(opt.Provider),
				formatter.Dim(opt.VehicleType),
				formatter.StyleGreen.Render(formatter.Rupees(opt.Price)),
				formatter.Dim("ETA "+opt.ETA),
				formatter.StyleYellow.Render(fmt.Sprintf("★ %.1f", opt.Rating)),
			)
			if i == v.cursor {
				b.WriteString("  " + formatter.StyleHeader.Render("▸ ") + line + "\n")
			} else {
				b.WriteString("    " + line + "\n")
			}
		}

	case v.step == bookingStepDone:
		s := v.booked
		content := formatter.StyleGreen.Render("✔ Booking Confirmed") + "\n\n" +
			formatter.Bold(s.ID) + "\n" +
			s.Source + " → " + s.Destination + "\n" +
			s.Crop + ", " + s.Weight + "\n" +
			formatter.Dim("Pickup "+s.Date+"  ·  "+formatter.Rupees(s.Cost)+"  ·  ETA "+s.ETA)
		b.WriteString(indent(formatter.RenderBox("", content), 2))
		b.WriteString("\n")
	}

	return b.String()
}
