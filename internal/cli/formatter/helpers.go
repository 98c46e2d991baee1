package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Rupees formats an amount as "₹1,23,456" using Indian digit grouping
// (last three digits, then pairs).
func Rupees(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return "₹" + sign + s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "₹" + sign + strings.Join(groups, ",") + "," + tail
}

// SignedRupees renders a wallet amount with its sign, green for credits and
// red for debits.
func SignedRupees(amount int, credit bool) string {
	if credit {
		return StyleGreen.Render("+" + Rupees(amount))
	}
	return StyleRed.Render("-" + Rupees(amount))
}

// ProgressStages renders an ordered pipeline with the completed stages
// filled in, e.g. "●──●──◐──○".
func ProgressStages(stages []string, current int) string {
	var b strings.Builder
	for i, stage := range stages {
		if i > 0 {
			b.WriteString(StyleDim.Render("──"))
		}
		switch {
		case i < current:
			b.WriteString(StyleGreen.Render("●"))
		case i == current:
			b.WriteString(StyleYellow.Render("◐"))
		default:
			b.WriteString(StyleDim.Render("○"))
		}
		_ = stage
	}
	b.WriteString("\n")
	for i, stage := range stages {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == current {
			b.WriteString(StyleYellow.Render(stage))
		} else {
			b.WriteString(StyleDim.Render(stage))
		}
	}
	return b.String()
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
