package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/domain"
)

// saarthiHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func saarthiHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty input for a named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// preferencesFormValues is the bound storage for the setup form.
type preferencesFormValues struct {
	Location    string
	PrimaryCrop string
	LoadSize    string
	Urgency     string
}

// preferencesForm builds the profile setup form. values is pre-seeded when
// editing an existing profile.
func preferencesForm(values *preferencesFormValues) *huh.Form {
	if values.Urgency == "" {
		values.Urgency = string(domain.UrgencyNormal)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your Location / Mandi").
				Placeholder("e.g. Nashik, Pune").
				Value(&values.Location).
				Validate(validateRequired("location")),
			huh.NewInput().
				Title("Primary Crop").
				Placeholder("e.g. Onion, Tomato").
				Value(&values.PrimaryCrop).
				Validate(validateRequired("primary crop")),
			huh.NewInput().
				Title("Typical Load Size").
				Placeholder("e.g. 2 Tons").
				Value(&values.LoadSize),
			huh.NewSelect[string]().
				Title("Delivery Urgency").
				Options(
					huh.NewOption("Normal Delivery", string(domain.UrgencyNormal)),
					huh.NewOption("Urgent (Perishable)", string(domain.UrgencyUrgent)),
					huh.NewOption("Flexible Schedule", string(domain.UrgencyFlexible)),
				).
				Value(&values.Urgency),
		),
	).WithTheme(saarthiHuhTheme()).WithShowHelp(false)
}

// bookingFormValues is the bound storage for the booking search form.
type bookingFormValues struct {
	Source      string
	Destination string
	Crop        string
	Weight      string
	Date        string
}

// bookingForm builds the transport search form, pre-seeded from the active
// profile where possible.
func bookingForm(values *bookingFormValues) *huh.Form {
	if values.Date == "" {
		values.Date = time.Now().Format("2006-01-02")
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Source Location").
				Placeholder("e.g. Nashik Mandi").
				Value(&values.Source).
				Validate(validateRequired("source")),
			huh.NewInput().
				Title("Destination").
				Placeholder("e.g. Vashi Market, Mumbai").
				Value(&values.Destination).
				Validate(validateRequired("destination")),
			huh.NewInput().
				Title("Crop Type").
				Placeholder("Onion").
				Value(&values.Crop).
				Validate(validateRequired("crop")),
			huh.NewInput().
				Title("Weight (Tons/Kg)").
				Placeholder("5 Tons").
				Value(&values.Weight).
				Validate(validateRequired("weight")),
			huh.NewInput().
				Title("Pickup Date").
				Value(&values.Date).
				Validate(validateDate),
		),
	).WithTheme(saarthiHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(saarthiHuhTheme()).WithShowHelp(false)
}
