package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

type fakeWorkbook struct {
	weeks     []model.Week
	active    string
	activeErr error
	saved     int
	added     int
}

func (f *fakeWorkbook) LoadWeeks(context.Context) ([]model.Week, error) {
	out := make([]model.Week, len(f.weeks))
	for i, w := range f.weeks {
		out[i] = w.Clone()
	}
	return out, nil
}

func (f *fakeWorkbook) SaveRows(_ context.Context, weeks []model.Week) error {
	f.saved++
	f.weeks = weeks
	return nil
}

func (f *fakeWorkbook) AddWeek(_ context.Context, label string, days []string, suggested decimal.Decimal) (model.Week, error) {
	f.added++
	w := model.Week{ID: "added", Label: "Week new"}
	for _, d := range days {
		w.Rows = append(w.Rows, model.Row{Day: d, Status: model.StatusPending, Suggested: suggested})
	}
	f.weeks = append(f.weeks, w)
	f.active = w.ID
	return w, nil
}

func (f *fakeWorkbook) ActiveWeekID(context.Context) (string, error) {
	if f.activeErr != nil {
		return "", f.activeErr
	}
	if f.active == "" {
		return "", store.ErrNoActiveWeek
	}
	return f.active, nil
}

func (f *fakeWorkbook) SetActiveWeek(_ context.Context, id string) error {
	f.active = id
	return nil
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Profile.Student = "yes"
	cfg.Profile.Marital = "single"
	cfg.Profile.MonthlyIncome = decimal.NewFromInt(3000)
	return cfg
}

func testWorkbook() *fakeWorkbook {
	return &fakeWorkbook{
		active: "w1",
		weeks: []model.Week{{
			ID:    "w1",
			Label: "Week 1",
			Rows: []model.Row{
				{Day: "Mon", Status: model.StatusSaved},
				{Day: "Tue", Status: model.StatusPending},
			},
		}},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp(t *testing.T, wb *fakeWorkbook) App {
	t.Helper()
	a := NewApp(wb, testConfig(), false, nil)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	msg := a.recalcCmd("")()
	m, _ = m.(App).Update(msg)
	return m.(App)
}

func TestSaveKeysShowAcknowledgement(t *testing.T) {
	a := loadedApp(t, testWorkbook())

	m, cmd := a.Update(keyMsg("s"))
	if got := m.(App).notice; got != SaveWeekNotice {
		t.Fatalf("notice after s = %q, want %q", got, SaveWeekNotice)
	}
	if cmd != nil {
		t.Fatal("save week should not schedule any work")
	}

	m, _ = m.(App).Update(keyMsg("S"))
	if got := m.(App).notice; got != SaveMonthNotice {
		t.Fatalf("notice after S = %q, want %q", got, SaveMonthNotice)
	}
}

func TestRecalculatePropagatesAndSaves(t *testing.T) {
	wb := testWorkbook()
	a := loadedApp(t, wb)

	if !a.result.DailySuggested.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("DailySuggested = %s, want 7", a.result.DailySuggested)
	}
	if a.week == nil || a.week.ID != "w1" {
		t.Fatalf("active week not loaded: %+v", a.week)
	}
	if wb.saved != 1 {
		t.Fatalf("SaveRows calls = %d, want 1", wb.saved)
	}
	mon := wb.weeks[0].Rows[0]
	if !mon.Goal.Valid || !mon.Goal.Decimal.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("saved row goal = %v, want 7", mon.Goal)
	}
	if rows := a.table.Rows(); len(rows) != 2 || rows[0][2] != "7" {
		t.Fatalf("table rows = %v", rows)
	}
}

func TestRecalculateWithoutActiveWeek(t *testing.T) {
	wb := testWorkbook()
	wb.active = ""
	a := loadedApp(t, wb)

	if a.week != nil {
		t.Fatalf("week = %+v, want nil with no active week", a.week)
	}
	if a.result.Overview.Weeks != 1 {
		t.Fatalf("overview weeks = %d, want 1", a.result.Overview.Weeks)
	}
}

func TestNewWeekKeyAddsWeek(t *testing.T) {
	wb := testWorkbook()
	a := loadedApp(t, wb)

	m, cmd := a.Update(keyMsg("n"))
	if !m.(App).busy {
		t.Fatal("app should be busy while adding a week")
	}
	if cmd == nil {
		t.Fatal("n should schedule a command")
	}

	m, _ = m.(App).Update(cmd())
	a = m.(App)
	if wb.added != 1 {
		t.Fatalf("AddWeek calls = %d, want 1", wb.added)
	}
	if a.activeID != "added" || len(a.week.Rows) != 7 {
		t.Fatalf("active = %q rows = %d, want added/7", a.activeID, len(a.week.Rows))
	}
	if a.busy {
		t.Fatal("app still busy after recalculation")
	}
}

func TestToggleRowMarksSaved(t *testing.T) {
	wb := testWorkbook()
	a := loadedApp(t, wb)
	a.table.SetCursor(1)

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should schedule a command")
	}
	m, _ = m.(App).Update(cmd())
	a = m.(App)

	tue := a.week.Rows[1]
	if tue.Status != model.StatusSaved {
		t.Fatalf("Tue status = %q, want saved", tue.Status)
	}
	if !tue.Goal.Valid || !tue.Goal.Decimal.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("Tue goal = %v, want 7", tue.Goal)
	}
}

func TestSwitchWeekBounds(t *testing.T) {
	a := loadedApp(t, testWorkbook())
	if _, cmd := a.Update(keyMsg("l")); cmd != nil {
		t.Fatal("moving past the last week should be a no-op")
	}
	if _, cmd := a.Update(keyMsg("h")); cmd != nil {
		t.Fatal("moving before the first week should be a no-op")
	}
}

func TestSetupValuesApply(t *testing.T) {
	v := &SetupValues{Student: "yes", Marital: "married", Income: " 4200 ", Theme: "tokyo-night"}
	cfg, err := v.Apply(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !cfg.Profile.MonthlyIncome.Equal(decimal.NewFromInt(4200)) || cfg.Profile.Marital != "married" {
		t.Fatalf("profile = %+v", cfg.Profile)
	}
	if cfg.Appearance.Theme != "tokyo-night" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}

	if _, err := (&SetupValues{Income: "abc"}).Apply(config.DefaultConfig()); err == nil {
		t.Fatal("Apply accepted a non-numeric income")
	}
	if validateIncome("") == nil {
		t.Fatal("validateIncome accepted empty input")
	}
}

func TestSetupValuesApplyRates(t *testing.T) {
	base := config.DefaultConfig()
	old := decimal.RequireFromString("0.2")
	base.Rates.Married = &old

	v := NewSetupValues(base)
	if v.RateMarried != "0.2" || v.RateDefault != "" {
		t.Fatalf("seeded rates = %q/%q", v.RateDefault, v.RateMarried)
	}

	v.Income = "3000"
	v.RateStudent = " 0.05 "
	v.RateMarried = ""
	cfg, err := v.Apply(base)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Rates.Student == nil || !cfg.Rates.Student.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("student rate = %v, want 0.05", cfg.Rates.Student)
	}
	if cfg.Rates.Married != nil {
		t.Fatalf("married rate = %v, want cleared", cfg.Rates.Married)
	}
	if cfg.Rates.Default != nil {
		t.Fatalf("default rate = %v, want unset", cfg.Rates.Default)
	}
	if got := config.GetRates(cfg).Student; !got.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("effective student rate = %s", got)
	}

	v.RateDefault = "twelve"
	if _, err := v.Apply(base); err == nil {
		t.Fatal("Apply accepted a non-numeric rate")
	}
	if validateRate("") != nil || validateRate("0.1") != nil {
		t.Fatal("validateRate rejected a blank or numeric rate")
	}
	if validateRate("x") == nil {
		t.Fatal("validateRate accepted a non-numeric rate")
	}
}

func TestRecalculateSurfacesActiveWeekError(t *testing.T) {
	wb := testWorkbook()
	wb.activeErr = errors.New("disk I/O error")
	a := loadedApp(t, wb)

	if a.err == nil || !strings.Contains(a.err.Error(), "disk I/O error") {
		t.Fatalf("err = %v, want the workbook error", a.err)
	}
	if wb.saved != 0 {
		t.Fatalf("SaveRows calls = %d, want 0 after a failed read", wb.saved)
	}
}

func TestWeekViewShowsStatusLegend(t *testing.T) {
	a := loadedApp(t, testWorkbook())

	view := a.View()
	for _, want := range []string{"✓ 1 saved", "0 skipped", "1 pending"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
