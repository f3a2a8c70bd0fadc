package models

import (
	"github.com/shopspring/decimal"
)

// MonthlyBudget is the user-set spending ceiling for one calendar month.
//
// TotalExpenses and TotalIncome are kept for compatibility with previously
// persisted documents. The authoritative totals are always recomputed live
// from the transaction list by the aggregate package; these fields are
// preserved on upsert but never read.
type MonthlyBudget struct {
	Month         string          `json:"month" example:"2024-03"`
	TotalBudget   decimal.Decimal `json:"totalBudget" example:"500"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"0"`
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"0"`
}
