package formatter

import (
	"fmt"
	"strings"

	"saarthi/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RoleBadge returns the active role rendered as a purple badge.
func RoleBadge(role domain.Role) string {
	if role == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(role.ShortName())
}

// TrendArrow returns a colored arrow plus percent change for a price trend.
func TrendArrow(trend domain.PriceTrend, change float64) string {
	switch trend {
	case domain.TrendUp:
		return StyleGreen.Render(fmt.Sprintf("▲ %.1f%%", change))
	case domain.TrendDown:
		return StyleRed.Render(fmt.Sprintf("▼ %.1f%%", change))
	default:
		return StyleDim.Render("— stable")
	}
}

// ShipmentStatusPill returns a colored indicator for a shipment status.
func ShipmentStatusPill(status domain.ShipmentStatus) string {
	switch status {
	case domain.ShipmentBooked:
		return StyleBlue.Render("○ Booked")
	case domain.ShipmentPickedUp:
		return StyleYellow.Render("◐ Picked Up")
	case domain.ShipmentInTransit:
		return StyleYellow.Render("● In Transit")
	case domain.ShipmentDelivered:
		return StyleGreen.Render("✔ Delivered")
	default:
		return StyleDim.Render(string(status))
	}
}

// TxStatusPill returns a colored indicator for a wallet transaction status.
func TxStatusPill(status domain.TransactionStatus) string {
	switch status {
	case domain.TxCompleted:
		return StyleGreen.Render("✔ completed")
	case domain.TxPending:
		return StyleYellow.Render("… pending")
	case domain.TxFailed:
		return StyleRed.Render("✖ failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// TagPill returns a colored badge for a discovery listing tag.
func TagPill(tag domain.ListingTag) string {
	switch tag {
	case domain.TagCheapest:
		return StyleGreen.Render("[Cheapest]")
	case domain.TagFastest:
		return StyleBlue.Render("[Fastest]")
	case domain.TagBestValue:
		return StyleYellow.Render("[Best Value]")
	default:
		return StyleDim.Render("[" + string(tag) + "]")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
