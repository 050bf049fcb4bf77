package components

import (
	"strings"

	"github.com/theirongolddev/savr/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// WeekTabWidth returns the rendered width of a week tab.
func WeekTabWidth(label string) int {
	return lipgloss.Width(label) + 2 // horizontal padding
}

// RenderWeekBar renders one tab per week, highlighting the active one.
// Tabs that don't fit in width are dropped from the left so the active tab
// stays visible.
func RenderWeekBar(labels []string, active, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 1)

	if len(labels) == 0 {
		return inactiveStyle.Render("no weeks yet, press n to add one")
	}

	start := 0
	for start < active && barWidth(labels[start:active+1]) > width {
		start++
	}

	var parts []string
	used := 0
	for i := start; i < len(labels); i++ {
		w := WeekTabWidth(labels[i])
		if used+w > width && i > active {
			break
		}
		used += w + 1
		if i == active {
			parts = append(parts, activeStyle.Render(labels[i]))
		} else {
			parts = append(parts, inactiveStyle.Render(labels[i]))
		}
	}

	return strings.Join(parts, " ")
}

func barWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w += WeekTabWidth(l) + 1
	}
	return w
}
