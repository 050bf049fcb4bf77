package model

import "github.com/shopspring/decimal"

// Classifier tag values compared by exact equality.
const (
	StudentYes     = "yes"
	MaritalMarried = "married"
)

// Profile holds the inputs to the savings rate calculation.
type Profile struct {
	Student       string
	Marital       string
	MonthlyIncome decimal.Decimal
}
