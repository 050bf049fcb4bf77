package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// SetupValues are the answers collected by the setup form.
type SetupValues struct {
	Student string
	Marital string
	Income  string
	Theme   string

	// Rate overrides; blank keeps the built-in rate.
	RateDefault string
	RateStudent string
	RateMarried string
}

// NewSetupValues seeds the form with the current configuration.
func NewSetupValues(cfg config.Config) *SetupValues {
	income := ""
	if !cfg.Profile.MonthlyIncome.IsZero() {
		income = cfg.Profile.MonthlyIncome.String()
	}
	return &SetupValues{
		Student: cfg.Profile.Student,
		Marital: cfg.Profile.Marital,
		Income:  income,
		Theme:   cfg.Appearance.Theme,

		RateDefault: rateString(cfg.Rates.Default),
		RateStudent: rateString(cfg.Rates.Student),
		RateMarried: rateString(cfg.Rates.Married),
	}
}

func rateString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// NewSetupForm builds the profile setup form bound to v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to savr").
				Description("A few questions to size your daily savings."),
			huh.NewInput().
				Title("Monthly income").
				Placeholder("3000").
				Value(&v.Income).
				Validate(validateIncome),
			huh.NewSelect[string]().
				Title("Are you a student?").
				Options(
					huh.NewOption("No", "no"),
					huh.NewOption("Yes", "yes"),
				).
				Value(&v.Student),
			huh.NewSelect[string]().
				Title("Marital status").
				Options(
					huh.NewOption("Single", "single"),
					huh.NewOption("Married", "married"),
				).
				Value(&v.Marital),
		),
		huh.NewGroup(
			huh.NewNote().
				Title("Savings rates").
				Description("Leave blank to keep the built-in rate."),
			huh.NewInput().
				Title("Default rate").
				Placeholder("0.12").
				Value(&v.RateDefault).
				Validate(validateRate),
			huh.NewInput().
				Title("Student rate").
				Placeholder("0.07").
				Value(&v.RateStudent).
				Validate(validateRate),
			huh.NewInput().
				Title("Married rate").
				Placeholder("0.12").
				Value(&v.RateMarried).
				Validate(validateRate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	)
}

func validateIncome(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter your monthly income")
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return errors.New("income must be a number")
	}
	return nil
}

func validateRate(s string) error {
	if _, err := parseRate(s); err != nil {
		return errors.New("rate must be a number such as 0.12")
	}
	return nil
}

// parseRate returns nil for blank input.
func parseRate(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Apply copies the answers onto cfg.
func (v *SetupValues) Apply(cfg config.Config) (config.Config, error) {
	income, err := decimal.NewFromString(strings.TrimSpace(v.Income))
	if err != nil {
		return cfg, fmt.Errorf("monthly income: %w", err)
	}
	cfg.Profile.MonthlyIncome = income

	rates := []struct {
		name string
		in   string
		out  **decimal.Decimal
	}{
		{"default rate", v.RateDefault, &cfg.Rates.Default},
		{"student rate", v.RateStudent, &cfg.Rates.Student},
		{"married rate", v.RateMarried, &cfg.Rates.Married},
	}
	for _, r := range rates {
		d, err := parseRate(r.in)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", r.name, err)
		}
		*r.out = d
	}

	cfg.Profile.Student = v.Student
	cfg.Profile.Marital = v.Marital
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	return cfg, nil
}
