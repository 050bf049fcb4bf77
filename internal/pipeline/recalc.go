package pipeline

import (
	"context"
	"fmt"

	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/rate"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Renderer redraws the views that depend on the weekly table.
type Renderer interface {
	LoadWeekTable(ctx context.Context, week model.Week) error
	UpdateBudgetOverview(ctx context.Context, overview model.BudgetOverview) error
}

// Inputs are everything a recalculation reads.
type Inputs struct {
	Profile      model.Profile
	Rates        rate.Rates
	Weeks        []model.Week
	ActiveWeekID string
	Logger       *zap.Logger // nil disables logging
}

// Result is the table state produced by a recalculation.
type Result struct {
	Classification rate.Classification
	DailySuggested decimal.Decimal
	Weeks          []model.Week
	Overview       model.BudgetOverview
}

// Recalculate classifies the profile, propagates the daily amount into a
// copy of the weeks, then asks r to redraw the active week (when one is set)
// and the budget overview (always, exactly once).
func Recalculate(ctx context.Context, in Inputs, r Renderer) (Result, error) {
	log := in.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c := rate.Classify(in.Profile, in.Rates)
	daily := rate.DailySuggested(in.Profile.MonthlyIncome, c.Rate)
	log.Debug("classified profile",
		zap.String("rule", c.Rule),
		zap.String("rate", c.Rate.String()),
		zap.String("daily", daily.String()))

	weeks := Propagate(in.Weeks, daily)
	res := Result{
		Classification: c,
		DailySuggested: daily,
		Weeks:          weeks,
		Overview:       BuildOverview(weeks, daily),
	}

	if in.ActiveWeekID != "" {
		if w, ok := model.FindWeek(weeks, in.ActiveWeekID); ok {
			if err := r.LoadWeekTable(ctx, w); err != nil {
				return res, fmt.Errorf("loading week table: %w", err)
			}
		} else {
			log.Debug("active week not in table", zap.String("week", in.ActiveWeekID))
		}
	}

	if err := r.UpdateBudgetOverview(ctx, res.Overview); err != nil {
		return res, fmt.Errorf("updating budget overview: %w", err)
	}

	return res, nil
}
