package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/pipeline"
	"github.com/theirongolddev/savr/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagWorkbook string
	flagQuiet    bool
	flagVerbose  bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "savr",
	Short: "Daily savings planner",
	Long: `Suggest a daily savings amount from your income and profile, and keep
a weekly table of savings goals in sync with it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if !flagVerbose {
			return nil
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	RunE: runRecalc,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagWorkbook, "workbook", "w", "", "Workbook database (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging to stderr")
}

func progressf(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// openWorkbook loads config and opens the workbook it points at.
func openWorkbook() (*store.Workbook, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	path := flagWorkbook
	if path == "" {
		path = config.WorkbookPath(cfg)
	}

	wb, err := store.Open(path, logger)
	if err != nil {
		return nil, cfg, err
	}
	return wb, cfg, nil
}

// activeWeekID returns the active week, or "" when none is set.
func activeWeekID(ctx context.Context, wb *store.Workbook) (string, error) {
	id, err := wb.ActiveWeekID(ctx)
	if errors.Is(err, store.ErrNoActiveWeek) {
		return "", nil
	}
	return id, err
}

// recalculate runs the rate calculation over the workbook, draws through r,
// and writes the propagated rows back.
func recalculate(ctx context.Context, wb *store.Workbook, cfg config.Config, r pipeline.Renderer) (pipeline.Result, error) {
	profile, err := config.GetProfile(cfg)
	if err != nil {
		return pipeline.Result{}, err
	}

	weeks, err := wb.LoadWeeks(ctx)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("loading weeks: %w", err)
	}
	active, err := activeWeekID(ctx, wb)
	if err != nil {
		return pipeline.Result{}, err
	}

	res, err := pipeline.Recalculate(ctx, pipeline.Inputs{
		Profile:      profile,
		Rates:        config.GetRates(cfg),
		Weeks:        weeks,
		ActiveWeekID: active,
		Logger:       logger,
	}, r)
	if err != nil {
		return res, err
	}

	if err := wb.SaveRows(ctx, res.Weeks); err != nil {
		return res, fmt.Errorf("saving rows: %w", err)
	}
	return res, nil
}

// discard is a renderer for commands that only need the recalculated table.
type discard struct{}

func (discard) LoadWeekTable(context.Context, model.Week) error { return nil }

func (discard) UpdateBudgetOverview(context.Context, model.BudgetOverview) error { return nil }
