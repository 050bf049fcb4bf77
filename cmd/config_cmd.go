package cmd

import (
	"fmt"

	"github.com/theirongolddev/savr/internal/cli"
	"github.com/theirongolddev/savr/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	profile, err := config.GetProfile(cfg)
	if err != nil {
		return err
	}
	fmt.Println("  [Profile]")
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Student", profile.Student},
		{"Marital", profile.Marital},
		{"Monthly income", cli.FormatMoney(profile.MonthlyIncome)},
	}))
	fmt.Println()

	rates := config.GetRates(cfg)
	fmt.Println("  [Rates]")
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Married", rateSource(cli.FormatRate(rates.Married), cfg.Rates.Married != nil)},
		{"Student", rateSource(cli.FormatRate(rates.Student), cfg.Rates.Student != nil)},
		{"Default", rateSource(cli.FormatRate(rates.Default), cfg.Rates.Default != nil)},
	}))
	fmt.Println()

	path := flagWorkbook
	if path == "" {
		path = config.WorkbookPath(cfg)
	}
	fmt.Println("  [General]")
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Workbook", path},
		{"Rows per week", fmt.Sprintf("%d", len(config.Days(cfg)))},
	}))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `savr setup` to reconfigure.")
	return nil
}

func rateSource(v string, overridden bool) string {
	if overridden {
		return v + " (config)"
	}
	return v
}
