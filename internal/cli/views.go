package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/theirongolddev/savr/internal/model"
)

// RenderWeek renders one week's savings table.
func RenderWeek(w model.Week) string {
	rows := make([][]string, 0, len(w.Rows)+2)
	saved := 0
	for _, r := range w.Rows {
		if r.Status == model.StatusSaved {
			saved++
		}
		rows = append(rows, []string{
			r.Day,
			string(r.Status),
			FormatMoney(r.Suggested),
			FormatOptionalMoney(r.Goal),
		})
	}
	if len(w.Rows) > 0 {
		rows = append(rows, Separator, []string{
			"Saved", fmt.Sprintf("%d/%d", saved, len(w.Rows)), "", "",
		})
	}

	return RenderTable(Table{
		Title:    fmt.Sprintf("%s  %s", w.Label, ShortID(w.ID)),
		Headers:  []string{"Day", "Status", "Suggested", "Goal"},
		Rows:     rows,
		LeftCols: 2,
	})
}

// RenderOverview renders the budget overview block.
func RenderOverview(ov model.BudgetOverview) string {
	return headerStyle.Render("  Budget overview") + "\n" + RenderKeyValues([][2]string{
		{"Daily suggested", FormatMoney(ov.DailySuggested)},
		{"Weekly target", FormatMoney(ov.WeeklyTarget)},
		{"Monthly target", FormatMoney(ov.MonthlyTarget)},
		{"Weeks", FormatNumber(int64(ov.Weeks))},
		{"Days saved", fmt.Sprintf("%d of %d", ov.SavedRows, ov.Rows)},
		{"Total suggested", FormatMoney(ov.TotalSuggested)},
		{"Total saved", FormatMoney(ov.TotalSaved)},
		{"Month progress", RenderProgressBar(ov.SavedPercent, 30)},
	})
}

// Renderer prints week tables and the budget overview to a writer.
type Renderer struct {
	Out io.Writer
}

// LoadWeekTable prints the table for w.
func (r Renderer) LoadWeekTable(_ context.Context, w model.Week) error {
	_, err := fmt.Fprintln(r.Out, RenderWeek(w))
	return err
}

// UpdateBudgetOverview prints the overview block.
func (r Renderer) UpdateBudgetOverview(_ context.Context, ov model.BudgetOverview) error {
	_, err := fmt.Fprintln(r.Out, RenderOverview(ov))
	return err
}
