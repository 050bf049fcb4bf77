package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/savr/internal/cli"
	"github.com/theirongolddev/savr/internal/model"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the budget overview",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

// overviewOnly draws the overview and skips the week table.
type overviewOnly struct{ discard }

func (overviewOnly) UpdateBudgetOverview(_ context.Context, ov model.BudgetOverview) error {
	fmt.Println(cli.RenderOverview(ov))
	return nil
}

func runOverview(_ *cobra.Command, _ []string) error {
	wb, cfg, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET OVERVIEW"))
	fmt.Println()
	_, err = recalculate(context.Background(), wb, cfg, overviewOnly{})
	return err
}
