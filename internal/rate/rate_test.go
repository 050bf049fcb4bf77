package rate

import (
	"testing"

	"github.com/theirongolddev/savr/internal/model"

	"github.com/shopspring/decimal"
)

func profile(student, marital string, income int64) model.Profile {
	return model.Profile{
		Student:       student,
		Marital:       marital,
		MonthlyIncome: decimal.NewFromInt(income),
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		p        model.Profile
		wantRule string
		wantRate string
		wantDay  int64
	}{
		{"student single", profile("yes", "single", 3000), RuleStudent, "0.07", 7},
		{"married student", profile("yes", "married", 3000), RuleMarried, "0.12", 12},
		{"married", profile("no", "married", 3000), RuleMarried, "0.12", 12},
		{"neither", profile("no", "single", 3000), RuleDefault, "0.12", 12},
		{"empty tags", profile("", "", 3000), RuleDefault, "0.12", 12},
		{"tags are case sensitive", profile("Yes", "Married", 3000), RuleDefault, "0.12", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.p, DefaultRates())
			if c.Rule != tt.wantRule {
				t.Fatalf("Rule = %q, want %q", c.Rule, tt.wantRule)
			}
			if !c.Rate.Equal(decimal.RequireFromString(tt.wantRate)) {
				t.Fatalf("Rate = %s, want %s", c.Rate, tt.wantRate)
			}
			got := DailySuggested(tt.p.MonthlyIncome, c.Rate)
			if !got.Equal(decimal.NewFromInt(tt.wantDay)) {
				t.Fatalf("DailySuggested = %s, want %d", got, tt.wantDay)
			}
		})
	}
}

func TestClassify_UsesConfiguredRates(t *testing.T) {
	rates := DefaultRates()
	rates.Student = decimal.RequireFromString("0.05")

	c := Classify(profile("yes", "single", 6000), rates)
	if !c.Rate.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("Rate = %s, want 0.05", c.Rate)
	}
	if got := DailySuggested(decimal.NewFromInt(6000), c.Rate); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("DailySuggested = %s, want 10", got)
	}
}

func TestDailySuggested_Rounding(t *testing.T) {
	tests := []struct {
		income string
		rate   string
		want   int64
	}{
		{"2500", "0.07", 6},   // 5.8333
		{"2250", "0.12", 9},   // 9.0
		{"1125", "0.08", 3},   // 3.0
		{"1875", "0.08", 5},   // 5.0
		{"375", "0.12", 2},    // 1.5 rounds up
		{"1625", "0.12", 7},   // 6.5 rounds up
		{"-375", "0.12", -2},  // -1.5 rounds away from zero
		{"0", "0.12", 0},
	}

	for _, tt := range tests {
		got := DailySuggested(decimal.RequireFromString(tt.income), decimal.RequireFromString(tt.rate))
		if !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Fatalf("DailySuggested(%s, %s) = %s, want %d", tt.income, tt.rate, got, tt.want)
		}
	}
}
