package pipeline

import (
	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/rate"

	"github.com/shopspring/decimal"
)

// DaysPerWeek is the multiplier for the weekly target.
const DaysPerWeek = 7

// BuildOverview aggregates the weekly table into a budget overview for the
// given daily amount.
func BuildOverview(weeks []model.Week, daily decimal.Decimal) model.BudgetOverview {
	ov := model.BudgetOverview{
		Weeks:          len(weeks),
		DailySuggested: daily,
		WeeklyTarget:   daily.Mul(decimal.NewFromInt(DaysPerWeek)),
		MonthlyTarget:  daily.Mul(decimal.NewFromInt(rate.DaysPerMonth)),
		TotalSuggested: decimal.Zero,
		TotalSaved:     decimal.Zero,
	}

	for _, w := range weeks {
		for _, r := range w.Rows {
			ov.Rows++
			ov.TotalSuggested = ov.TotalSuggested.Add(r.Suggested)
			if r.Status != model.StatusSaved {
				continue
			}
			ov.SavedRows++
			if r.Goal.Valid {
				ov.TotalSaved = ov.TotalSaved.Add(r.Goal.Decimal)
			}
		}
	}

	if ov.MonthlyTarget.IsPositive() {
		ov.SavedPercent = ov.TotalSaved.Div(ov.MonthlyTarget).InexactFloat64()
	}

	return ov
}
