// Package model defines the core data types for savr.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RowStatus is the save state of a single day in a week.
type RowStatus string

const (
	StatusPending RowStatus = "pending"
	StatusSaved   RowStatus = "saved"
	StatusSkipped RowStatus = "skipped"
)

// Statuses lists every known row status in display order.
var Statuses = []RowStatus{StatusPending, StatusSaved, StatusSkipped}

// ParseRowStatus converts a user-supplied string into a RowStatus.
func ParseRowStatus(s string) (RowStatus, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown row status %q (want pending, saved or skipped)", s)
}

// Weekdays are the default day labels for a new week.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Row is one entry in a week's savings table.
type Row struct {
	Day       string              `json:"day"`
	Status    RowStatus           `json:"status"`
	Suggested decimal.Decimal     `json:"suggested"`
	Goal      decimal.NullDecimal `json:"goal"`
}

// Week is an ordered set of rows with a stable identifier.
type Week struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	Rows      []Row     `json:"rows"`
}

// Clone returns a deep copy of the week. A nil Rows slice stays nil.
func (w Week) Clone() Week {
	c := w
	if w.Rows == nil {
		return c
	}
	c.Rows = make([]Row, len(w.Rows))
	copy(c.Rows, w.Rows)
	return c
}

// FindWeek returns the week with the given ID.
func FindWeek(weeks []Week, id string) (Week, bool) {
	for _, w := range weeks {
		if w.ID == id {
			return w, true
		}
	}
	return Week{}, false
}
