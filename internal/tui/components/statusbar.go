package components

import (
	"strings"

	"github.com/theirongolddev/savr/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. notice, when set, is shown
// on the right in the accent color.
func RenderStatusBar(width int, notice string, busy bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)
	noticeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	left := " [?]help  [n]ew week  [s]ave week  [S]ave month  [q]uit"
	right := ""
	switch {
	case busy:
		right = "working… "
	case notice != "":
		right = notice + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left+strings.Repeat(" ", padding)) + noticeStyle.Render(right)
}
