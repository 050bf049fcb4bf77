// Package config loads and saves the savr TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/rate"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/shopspring/decimal"
)

const appName = "savr"

// Config holds all savr configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Profile    ProfileConfig    `toml:"profile"`
	Rates      RateOverrides    `toml:"rates"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Workbook    string `toml:"workbook,omitempty"`
	RowsPerWeek int    `toml:"rows_per_week"`
}

// ProfileConfig holds the classifier tags and income used for the rate.
type ProfileConfig struct {
	Student       string          `toml:"student"`
	Marital       string          `toml:"marital"`
	MonthlyIncome decimal.Decimal `toml:"monthly_income"`
}

// RateOverrides replaces individual built-in rates.
type RateOverrides struct {
	Default *decimal.Decimal `toml:"default,omitempty"`
	Student *decimal.Decimal `toml:"student,omitempty"`
	Married *decimal.Decimal `toml:"married,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			RowsPerWeek: len(model.Weekdays),
		},
		Profile: ProfileConfig{
			Student:       "no",
			Marital:       "single",
			MonthlyIncome: decimal.Zero,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG config directory for savr.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultWorkbookPath returns the XDG data location of the workbook.
func DefaultWorkbookPath() string {
	return filepath.Join(xdg.DataHome, appName, "workbook.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetProfile returns the profile from config, with SAVR_STUDENT,
// SAVR_MARITAL and SAVR_MONTHLY_INCOME taking precedence when set.
func GetProfile(cfg Config) (model.Profile, error) {
	p := model.Profile{
		Student:       cfg.Profile.Student,
		Marital:       cfg.Profile.Marital,
		MonthlyIncome: cfg.Profile.MonthlyIncome,
	}

	if v := os.Getenv("SAVR_STUDENT"); v != "" {
		p.Student = v
	}
	if v := os.Getenv("SAVR_MARITAL"); v != "" {
		p.Marital = v
	}
	if v := os.Getenv("SAVR_MONTHLY_INCOME"); v != "" {
		income, err := decimal.NewFromString(v)
		if err != nil {
			return p, fmt.Errorf("SAVR_MONTHLY_INCOME: %w", err)
		}
		p.MonthlyIncome = income
	}

	return p, nil
}

// GetRates returns the built-in rates with any configured overrides applied.
func GetRates(cfg Config) rate.Rates {
	r := rate.DefaultRates()
	if cfg.Rates.Default != nil {
		r.Default = *cfg.Rates.Default
	}
	if cfg.Rates.Student != nil {
		r.Student = *cfg.Rates.Student
	}
	if cfg.Rates.Married != nil {
		r.Married = *cfg.Rates.Married
	}
	return r
}

// WorkbookPath returns the configured workbook path or the XDG default.
func WorkbookPath(cfg Config) string {
	if cfg.General.Workbook != "" {
		return cfg.General.Workbook
	}
	return DefaultWorkbookPath()
}

// Days returns the day labels for a new week. Counts beyond seven are
// numbered "Day N".
func Days(cfg Config) []string {
	n := cfg.General.RowsPerWeek
	if n <= 0 {
		n = len(model.Weekdays)
	}
	days := make([]string, n)
	for i := range days {
		if i < len(model.Weekdays) {
			days[i] = model.Weekdays[i]
		} else {
			days[i] = fmt.Sprintf("Day %d", i+1)
		}
	}
	return days
}
