package cmd

import (
	"fmt"

	"github.com/theirongolddev/savr/internal/cli"
	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/rate"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show the savings rate and daily amount for your profile",
	RunE:  runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	profile, err := config.GetProfile(cfg)
	if err != nil {
		return err
	}

	c := rate.Classify(profile, config.GetRates(cfg))
	daily := rate.DailySuggested(profile.MonthlyIncome, c.Rate)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS RATE"))
	fmt.Println()
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Student", profile.Student},
		{"Marital", profile.Marital},
		{"Monthly income", cli.FormatMoney(profile.MonthlyIncome)},
		{"Matched rule", c.Rule},
		{"Rate", cli.FormatRate(c.Rate)},
		{"Daily suggested", cli.FormatMoney(daily)},
	}))
	fmt.Println()
	return nil
}
