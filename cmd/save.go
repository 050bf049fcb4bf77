package cmd

import (
	"fmt"

	"github.com/theirongolddev/savr/internal/cli"
	"github.com/theirongolddev/savr/internal/tui"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Acknowledge saving the week or month (demo, nothing is written)",
}

var saveWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Save the current week (demo)",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(cli.RenderNotice(tui.SaveWeekNotice))
	},
}

var saveMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Save the monthly table (demo)",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(cli.RenderNotice(tui.SaveMonthNotice))
	},
}

func init() {
	saveCmd.AddCommand(saveWeekCmd, saveMonthCmd)
	rootCmd.AddCommand(saveCmd)
}
