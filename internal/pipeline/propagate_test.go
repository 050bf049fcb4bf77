package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/savr/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func goal(n int64) decimal.NullDecimal { return decimal.NewNullDecimal(dec(n)) }

func sampleWeeks() []model.Week {
	created := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	return []model.Week{
		{
			ID: "w1", Label: "Week 1", CreatedAt: created,
			Rows: []model.Row{
				{Day: "Mon", Status: model.StatusSaved, Suggested: dec(3), Goal: goal(3)},
				{Day: "Tue", Status: model.StatusPending, Suggested: dec(3), Goal: goal(5)},
				{Day: "Wed", Status: model.StatusSkipped, Suggested: dec(3)},
			},
		},
		{
			ID: "w2", Label: "Week 2", CreatedAt: created.AddDate(0, 0, 7),
			Rows: []model.Row{
				{Day: "Mon", Status: model.StatusSaved, Suggested: dec(1)},
				{Day: "Tue", Status: "custom", Suggested: dec(1), Goal: goal(9)},
			},
		},
		{ID: "w3", Label: "Empty", CreatedAt: created.AddDate(0, 0, 14)},
	}
}

func TestPropagate(t *testing.T) {
	in := sampleWeeks()
	got := Propagate(in, dec(7))

	want := sampleWeeks()
	want[0].Rows[0].Suggested, want[0].Rows[0].Goal = dec(7), goal(7)
	want[0].Rows[1].Suggested = dec(7) // pending keeps goal 5
	want[0].Rows[2].Suggested = dec(7) // skipped keeps no goal
	want[1].Rows[0].Suggested, want[1].Rows[0].Goal = dec(7), goal(7)
	want[1].Rows[1].Suggested = dec(7)

	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Fatalf("Propagate mismatch (-want +got):\n%s", diff)
	}
}

func TestPropagate_DoesNotMutateInput(t *testing.T) {
	in := sampleWeeks()
	_ = Propagate(in, dec(42))

	if diff := cmp.Diff(sampleWeeks(), in, decimalEqual); diff != "" {
		t.Fatalf("input was modified (-want +got):\n%s", diff)
	}
}

func TestPropagate_Idempotent(t *testing.T) {
	once := Propagate(sampleWeeks(), dec(12))
	twice := Propagate(once, dec(12))

	if diff := cmp.Diff(once, twice, decimalEqual); diff != "" {
		t.Fatalf("second pass changed the table (-first +second):\n%s", diff)
	}
}

func TestPropagate_EveryRowSuggestsAmount(t *testing.T) {
	amount := dec(12)
	for _, w := range Propagate(sampleWeeks(), amount) {
		for i, r := range w.Rows {
			if !r.Suggested.Equal(amount) {
				t.Fatalf("week %s row %d Suggested = %s, want %s", w.ID, i, r.Suggested, amount)
			}
			if r.Status == model.StatusSaved && (!r.Goal.Valid || !r.Goal.Decimal.Equal(amount)) {
				t.Fatalf("week %s row %d saved but Goal = %v, want %s", w.ID, i, r.Goal, amount)
			}
		}
	}
}

func TestPropagate_Empty(t *testing.T) {
	if got := Propagate(nil, dec(5)); len(got) != 0 {
		t.Fatalf("Propagate(nil) len = %d, want 0", len(got))
	}
}

func TestBuildOverview(t *testing.T) {
	weeks := Propagate(sampleWeeks(), dec(10))
	ov := BuildOverview(weeks, dec(10))

	if ov.Weeks != 3 || ov.Rows != 5 || ov.SavedRows != 2 {
		t.Fatalf("counts = %d weeks / %d rows / %d saved, want 3/5/2", ov.Weeks, ov.Rows, ov.SavedRows)
	}
	if !ov.WeeklyTarget.Equal(dec(70)) {
		t.Fatalf("WeeklyTarget = %s, want 70", ov.WeeklyTarget)
	}
	if !ov.MonthlyTarget.Equal(dec(300)) {
		t.Fatalf("MonthlyTarget = %s, want 300", ov.MonthlyTarget)
	}
	if !ov.TotalSuggested.Equal(dec(50)) {
		t.Fatalf("TotalSuggested = %s, want 50", ov.TotalSuggested)
	}
	if !ov.TotalSaved.Equal(dec(20)) {
		t.Fatalf("TotalSaved = %s, want 20", ov.TotalSaved)
	}
	if ov.SavedPercent < 0.0666 || ov.SavedPercent > 0.0667 {
		t.Fatalf("SavedPercent = %f, want ~0.0667", ov.SavedPercent)
	}
}

func TestBuildOverview_ZeroTarget(t *testing.T) {
	ov := BuildOverview(sampleWeeks(), decimal.Zero)
	if ov.SavedPercent != 0 {
		t.Fatalf("SavedPercent = %f, want 0 for zero target", ov.SavedPercent)
	}
}
