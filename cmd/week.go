package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/theirongolddev/savr/internal/cli"
	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/rate"
	"github.com/theirongolddev/savr/internal/store"

	"github.com/spf13/cobra"
)

var flagWeekLabel string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Manage weeks in the savings table",
}

var weekAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new week and make it active",
	Args:  cobra.NoArgs,
	RunE:  runWeekAdd,
}

var weekListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weeks",
	Args:  cobra.NoArgs,
	RunE:  runWeekList,
}

var weekShowCmd = &cobra.Command{
	Use:   "show [week-id]",
	Short: "Show a week's table (defaults to the active week)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeekShow,
}

var weekUseCmd = &cobra.Command{
	Use:   "use <week-id>",
	Short: "Set the active week",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeekUse,
}

var weekMarkCmd = &cobra.Command{
	Use:   "mark <week-id> <day> <pending|saved|skipped>",
	Short: "Set the status of one day",
	Args:  cobra.ExactArgs(3),
	RunE:  runWeekMark,
}

func init() {
	weekAddCmd.Flags().StringVarP(&flagWeekLabel, "label", "l", "", "Week label (default \"Week N\")")
	weekCmd.AddCommand(weekAddCmd, weekListCmd, weekShowCmd, weekUseCmd, weekMarkCmd)
	rootCmd.AddCommand(weekCmd)
}

func runWeekAdd(_ *cobra.Command, _ []string) error {
	wb, cfg, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	profile, err := config.GetProfile(cfg)
	if err != nil {
		return err
	}
	c := rate.Classify(profile, config.GetRates(cfg))
	daily := rate.DailySuggested(profile.MonthlyIncome, c.Rate)

	w, err := wb.AddWeek(context.Background(), flagWeekLabel, config.Days(cfg), daily)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderWeek(w))
	progressf("  Added %s (%s), now active\n", w.Label, cli.ShortID(w.ID))
	return nil
}

func runWeekList(_ *cobra.Command, _ []string) error {
	wb, _, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	ctx := context.Background()
	weeks, err := wb.LoadWeeks(ctx)
	if err != nil {
		return err
	}
	if len(weeks) == 0 {
		fmt.Println("\n  No weeks yet. Run `savr week add` to start one.")
		return nil
	}
	active, err := activeWeekID(ctx, wb)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		marker := ""
		if w.ID == active {
			marker = "●"
		}
		saved := 0
		for _, r := range w.Rows {
			if r.Status == model.StatusSaved {
				saved++
			}
		}
		rows = append(rows, []string{
			marker,
			cli.ShortID(w.ID),
			w.Label,
			w.CreatedAt.Local().Format("2006-01-02"),
			fmt.Sprintf("%d/%d", saved, len(w.Rows)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"", "ID", "Label", "Created", "Saved"},
		Rows:     rows,
		LeftCols: 4,
	}))
	return nil
}

func runWeekShow(_ *cobra.Command, args []string) error {
	wb, _, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	ctx := context.Background()
	var id string
	if len(args) == 1 {
		id, err = wb.ResolveWeekID(ctx, args[0])
	} else {
		id, err = wb.ActiveWeekID(ctx)
	}
	if errors.Is(err, store.ErrNoActiveWeek) {
		return errors.New("no active week; pass a week id or run `savr week add`")
	}
	if err != nil {
		return err
	}

	weeks, err := wb.LoadWeeks(ctx)
	if err != nil {
		return err
	}
	w, ok := model.FindWeek(weeks, id)
	if !ok {
		return fmt.Errorf("%q: %w", id, store.ErrWeekNotFound)
	}

	fmt.Println()
	fmt.Println(cli.RenderWeek(w))
	return nil
}

func runWeekUse(_ *cobra.Command, args []string) error {
	wb, _, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	ctx := context.Background()
	id, err := wb.ResolveWeekID(ctx, args[0])
	if err != nil {
		return err
	}
	if err := wb.SetActiveWeek(ctx, id); err != nil {
		return err
	}

	progressf("  Active week: %s\n", cli.ShortID(id))
	return nil
}

func runWeekMark(_ *cobra.Command, args []string) error {
	status, err := model.ParseRowStatus(args[2])
	if err != nil {
		return err
	}

	wb, cfg, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	ctx := context.Background()
	id, err := wb.ResolveWeekID(ctx, args[0])
	if err != nil {
		return err
	}
	if err := wb.SetRowStatus(ctx, id, args[1], status); err != nil {
		return err
	}

	// Saved rows take the current daily amount as their goal.
	res, err := recalculate(ctx, wb, cfg, discard{})
	if err != nil {
		return err
	}
	w, _ := model.FindWeek(res.Weeks, id)

	fmt.Println()
	fmt.Println(cli.RenderWeek(w))
	return nil
}
