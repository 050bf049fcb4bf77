package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/pipeline"
	"github.com/theirongolddev/savr/internal/rate"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the workbook to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", formatYAML, "Output format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}

type exportDoc struct {
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Rule       string         `json:"rule" yaml:"rule"`
	Rate       string         `json:"rate" yaml:"rate"`
	Daily      string         `json:"daily_suggested" yaml:"daily_suggested"`
	ActiveWeek string         `json:"active_week,omitempty" yaml:"active_week,omitempty"`
	Overview   exportOverview `json:"overview" yaml:"overview"`
	Weeks      []exportWeek   `json:"weeks" yaml:"weeks"`
}

type exportOverview struct {
	Weeks         int     `json:"weeks" yaml:"weeks"`
	Rows          int     `json:"rows" yaml:"rows"`
	SavedRows     int     `json:"saved_rows" yaml:"saved_rows"`
	WeeklyTarget  string  `json:"weekly_target" yaml:"weekly_target"`
	MonthlyTarget string  `json:"monthly_target" yaml:"monthly_target"`
	TotalSaved    string  `json:"total_saved" yaml:"total_saved"`
	SavedPercent  float64 `json:"saved_percent" yaml:"saved_percent"`
}

type exportWeek struct {
	ID        string      `json:"id" yaml:"id"`
	Label     string      `json:"label" yaml:"label"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	Rows      []exportRow `json:"rows" yaml:"rows"`
}

type exportRow struct {
	Day       string `json:"day" yaml:"day"`
	Status    string `json:"status" yaml:"status"`
	Suggested string `json:"suggested" yaml:"suggested"`
	Goal      string `json:"goal,omitempty" yaml:"goal,omitempty"`
}

func runExport(_ *cobra.Command, _ []string) error {
	if flagExportFormat != formatYAML && flagExportFormat != formatJSON {
		return fmt.Errorf("unknown format %q (want yaml or json)", flagExportFormat)
	}

	wb, cfg, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	ctx := context.Background()
	profile, err := config.GetProfile(cfg)
	if err != nil {
		return err
	}
	weeks, err := wb.LoadWeeks(ctx)
	if err != nil {
		return err
	}
	active, err := activeWeekID(ctx, wb)
	if err != nil {
		return err
	}

	doc := buildExport(profile, config.GetRates(cfg), weeks, active, time.Now())
	return writeExport(os.Stdout, flagExportFormat, doc)
}

func buildExport(p model.Profile, rates rate.Rates, weeks []model.Week, active string, now time.Time) exportDoc {
	c := rate.Classify(p, rates)
	daily := rate.DailySuggested(p.MonthlyIncome, c.Rate)
	ov := pipeline.BuildOverview(weeks, daily)

	doc := exportDoc{
		ExportedAt: now.UTC(),
		Rule:       c.Rule,
		Rate:       c.Rate.String(),
		Daily:      daily.String(),
		ActiveWeek: active,
		Overview: exportOverview{
			Weeks:         ov.Weeks,
			Rows:          ov.Rows,
			SavedRows:     ov.SavedRows,
			WeeklyTarget:  ov.WeeklyTarget.String(),
			MonthlyTarget: ov.MonthlyTarget.String(),
			TotalSaved:    ov.TotalSaved.String(),
			SavedPercent:  ov.SavedPercent,
		},
		Weeks: make([]exportWeek, 0, len(weeks)),
	}

	for _, w := range weeks {
		ew := exportWeek{
			ID:        w.ID,
			Label:     w.Label,
			CreatedAt: w.CreatedAt.UTC(),
			Rows:      make([]exportRow, 0, len(w.Rows)),
		}
		for _, r := range w.Rows {
			er := exportRow{
				Day:       r.Day,
				Status:    string(r.Status),
				Suggested: r.Suggested.String(),
			}
			if r.Goal.Valid {
				er.Goal = r.Goal.Decimal.String()
			}
			ew.Rows = append(ew.Rows, er)
		}
		doc.Weeks = append(doc.Weeks, ew)
	}
	return doc
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
