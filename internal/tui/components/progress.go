package components

import (
	"fmt"

	"github.com/theirongolddev/savr/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns red/orange/yellow/green as savings approach the target,
// and the saved color once it is met.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Saved)
	case pct >= 0.9:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Yellow)
	case pct >= 0.25:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// GoalBar renders a labeled progress bar toward a savings target.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// StatusLegend summarises a week's row states in the theme's status colors.
func StatusLegend(saved, skipped, total int) string {
	t := theme.Active
	savedStyle := lipgloss.NewStyle().Foreground(t.Saved).Bold(true)
	skippedStyle := lipgloss.NewStyle().Foreground(t.Skipped)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	pending := total - saved - skipped
	if pending < 0 {
		pending = 0
	}
	return savedStyle.Render(fmt.Sprintf("✓ %d saved", saved)) +
		mutedStyle.Render("  ·  ") +
		skippedStyle.Render(fmt.Sprintf("%d skipped", skipped)) +
		mutedStyle.Render(fmt.Sprintf("  ·  %d pending", pending))
}
