// Package pipeline computes the suggested daily amount, propagates it into
// the weekly table, and drives the views that depend on it.
package pipeline

import (
	"github.com/theirongolddev/savr/internal/model"

	"github.com/shopspring/decimal"
)

// Propagate returns a copy of weeks in which every row suggests amount.
// Rows already marked saved also take amount as their goal; all other rows
// keep whatever goal they had. The input slice is not modified.
func Propagate(weeks []model.Week, amount decimal.Decimal) []model.Week {
	out := make([]model.Week, len(weeks))
	for i, w := range weeks {
		c := w.Clone()
		for j := range c.Rows {
			c.Rows[j].Suggested = amount
			if c.Rows[j].Status == model.StatusSaved {
				c.Rows[j].Goal = decimal.NewNullDecimal(amount)
			}
		}
		out[i] = c
	}
	return out
}
