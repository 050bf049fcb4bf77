// Package rate selects a savings rate from a user profile and derives the
// suggested daily savings amount from it.
package rate

import (
	"github.com/theirongolddev/savr/internal/model"

	"github.com/shopspring/decimal"
)

// DaysPerMonth is the divisor used to turn a monthly amount into a daily one.
const DaysPerMonth = 30

// Rule names reported by Classify.
const (
	RuleMarried = "married"
	RuleStudent = "student"
	RuleDefault = "default"
)

// Rates holds the fractional savings rate for each rule.
type Rates struct {
	Default decimal.Decimal
	Student decimal.Decimal
	Married decimal.Decimal
}

// DefaultRates returns the built-in rates: 12% baseline, 7% for students,
// 12% for married users.
func DefaultRates() Rates {
	return Rates{
		Default: decimal.RequireFromString("0.12"),
		Student: decimal.RequireFromString("0.07"),
		Married: decimal.RequireFromString("0.12"),
	}
}

// Rule is one entry in the ordered classification table.
type Rule struct {
	Name    string
	Matches func(model.Profile) bool
	Rate    func(Rates) decimal.Decimal
}

// Rules is evaluated top to bottom; the first match wins.
// Married outranks student, so a married student gets the married rate.
var Rules = []Rule{
	{
		Name:    RuleMarried,
		Matches: func(p model.Profile) bool { return p.Marital == model.MaritalMarried },
		Rate:    func(r Rates) decimal.Decimal { return r.Married },
	},
	{
		Name:    RuleStudent,
		Matches: func(p model.Profile) bool { return p.Student == model.StudentYes },
		Rate:    func(r Rates) decimal.Decimal { return r.Student },
	},
	{
		Name:    RuleDefault,
		Matches: func(model.Profile) bool { return true },
		Rate:    func(r Rates) decimal.Decimal { return r.Default },
	},
}

// Classification is the outcome of matching a profile against Rules.
type Classification struct {
	Rule string
	Rate decimal.Decimal
}

// Classify returns the first rule in Rules that matches p.
func Classify(p model.Profile, rates Rates) Classification {
	for _, r := range Rules {
		if r.Matches(p) {
			return Classification{Rule: r.Name, Rate: r.Rate(rates)}
		}
	}
	return Classification{Rule: RuleDefault, Rate: rates.Default}
}

// DailySuggested computes round(income * rate / 30), rounding half away
// from zero to a whole unit.
func DailySuggested(monthlyIncome, rate decimal.Decimal) decimal.Decimal {
	return monthlyIncome.Mul(rate).Div(decimal.NewFromInt(DaysPerMonth)).Round(0)
}
