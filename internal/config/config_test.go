package config

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/savr/internal/rate"

	"github.com/shopspring/decimal"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.General.RowsPerWeek != 7 {
		t.Fatalf("RowsPerWeek = %d, want 7", cfg.General.RowsPerWeek)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savr", "config.toml")

	studentRate := decimal.RequireFromString("0.05")
	cfg := DefaultConfig()
	cfg.Profile.Student = "yes"
	cfg.Profile.MonthlyIncome = decimal.RequireFromString("3000")
	cfg.Rates.Student = &studentRate

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Profile.Student != "yes" {
		t.Fatalf("Student = %q, want yes", got.Profile.Student)
	}
	if !got.Profile.MonthlyIncome.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("MonthlyIncome = %s, want 3000", got.Profile.MonthlyIncome)
	}
	if got.Rates.Student == nil || !got.Rates.Student.Equal(studentRate) {
		t.Fatalf("Rates.Student = %v, want 0.05", got.Rates.Student)
	}
	if got.Rates.Married != nil {
		t.Fatalf("Rates.Married = %v, want unset", got.Rates.Married)
	}
}

func TestGetRates_Overrides(t *testing.T) {
	married := decimal.RequireFromString("0.10")
	cfg := DefaultConfig()
	cfg.Rates.Married = &married

	r := GetRates(cfg)
	if !r.Married.Equal(married) {
		t.Fatalf("Married = %s, want 0.10", r.Married)
	}
	if !r.Student.Equal(rate.DefaultRates().Student) {
		t.Fatalf("Student = %s, want default", r.Student)
	}
}

func TestGetProfile_EnvOverrides(t *testing.T) {
	t.Setenv("SAVR_STUDENT", "yes")
	t.Setenv("SAVR_MARITAL", "married")
	t.Setenv("SAVR_MONTHLY_INCOME", "4500.50")

	p, err := GetProfile(DefaultConfig())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Student != "yes" || p.Marital != "married" {
		t.Fatalf("tags = %q/%q, want yes/married", p.Student, p.Marital)
	}
	if !p.MonthlyIncome.Equal(decimal.RequireFromString("4500.50")) {
		t.Fatalf("MonthlyIncome = %s, want 4500.50", p.MonthlyIncome)
	}
}

func TestGetProfile_BadIncome(t *testing.T) {
	t.Setenv("SAVR_MONTHLY_INCOME", "lots")
	if _, err := GetProfile(DefaultConfig()); err == nil {
		t.Fatal("GetProfile accepted a non-numeric income")
	}
}

func TestDays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.RowsPerWeek = 9
	days := Days(cfg)
	if len(days) != 9 || days[0] != "Mon" || days[6] != "Sun" || days[8] != "Day 9" {
		t.Fatalf("Days = %v", days)
	}

	cfg.General.RowsPerWeek = 0
	if got := len(Days(cfg)); got != 7 {
		t.Fatalf("Days with zero rows = %d, want 7", got)
	}
}
