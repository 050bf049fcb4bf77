package cmd

import (
	"fmt"

	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/tui"
	"github.com/theirongolddev/savr/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	wb, cfg, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	theme.SetActive(cfg.Appearance.Theme)

	// Without a forced profile lipgloss may pick Ascii and drop backgrounds.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(wb, cfg, !config.Exists(), logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
