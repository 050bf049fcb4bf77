package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/theirongolddev/savr/internal/model"

	"github.com/shopspring/decimal"
)

func TestRenderWeek(t *testing.T) {
	w := model.Week{
		ID:    "0123456789abcdef",
		Label: "Week 3",
		Rows: []model.Row{
			{Day: "Mon", Status: model.StatusSaved, Suggested: decimal.NewFromInt(12), Goal: decimal.NewNullDecimal(decimal.NewFromInt(12))},
			{Day: "Tue", Status: model.StatusPending, Suggested: decimal.NewFromInt(12)},
		},
	}

	out := RenderWeek(w)
	for _, want := range []string{"Week 3", "01234567", "Mon", "saved", "pending", "Goal", "1/2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("RenderWeek output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWeek_Empty(t *testing.T) {
	out := RenderWeek(model.Week{ID: "w", Label: "Empty"})
	if !strings.Contains(out, "Empty") || strings.Contains(out, "Saved") {
		t.Fatalf("unexpected empty week output:\n%s", out)
	}
}

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := Renderer{Out: &buf}

	if err := r.UpdateBudgetOverview(context.Background(), model.BudgetOverview{
		DailySuggested: decimal.NewFromInt(7),
		MonthlyTarget:  decimal.NewFromInt(210),
	}); err != nil {
		t.Fatalf("UpdateBudgetOverview: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Budget overview") || !strings.Contains(out, "210") {
		t.Fatalf("overview output:\n%s", out)
	}
}

func TestRenderTable_AlignsWideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"✓", "1"}, {"long", "1000"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := len([]rune(lines[0]))
	for _, l := range lines {
		if got := len([]rune(l)); got != width {
			t.Fatalf("line %q has %d runes, want %d", l, got, width)
		}
	}
}
