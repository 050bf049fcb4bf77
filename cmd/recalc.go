package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/theirongolddev/savr/internal/cli"

	"github.com/spf13/cobra"
)

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recalculate the daily amount and refresh the weekly table",
	RunE:  runRecalc,
}

func init() {
	rootCmd.AddCommand(recalcCmd)
}

func runRecalc(_ *cobra.Command, _ []string) error {
	wb, cfg, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	fmt.Println()
	res, err := recalculate(context.Background(), wb, cfg, cli.Renderer{Out: os.Stdout})
	if err != nil {
		return err
	}

	if len(res.Weeks) == 0 {
		fmt.Println()
		fmt.Println("  No weeks yet. Run `savr week add` to start one.")
	}
	progressf("\n  %s rule · rate %s · %s/day across %d weeks\n",
		res.Classification.Rule,
		cli.FormatRate(res.Classification.Rate),
		cli.FormatMoney(res.DailySuggested),
		len(res.Weeks),
	)
	return nil
}
