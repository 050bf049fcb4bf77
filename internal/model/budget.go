package model

import "github.com/shopspring/decimal"

// BudgetOverview is the aggregate view over every week in the workbook.
type BudgetOverview struct {
	Weeks          int
	Rows           int
	SavedRows      int
	DailySuggested decimal.Decimal
	WeeklyTarget   decimal.Decimal
	MonthlyTarget  decimal.Decimal
	TotalSuggested decimal.Decimal
	TotalSaved     decimal.Decimal
	SavedPercent   float64 // 0-1, TotalSaved / MonthlyTarget
}
