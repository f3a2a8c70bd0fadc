package models

import (
	"strings"

	"github.com/budgetcopain/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType partitions transactions into money going out and money
// coming in.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// TransactionSource records how a transaction entered the app.
type TransactionSource string

const (
	SourceManual TransactionSource = "manual"
	SourceBank   TransactionSource = "bank"
)

func (s TransactionSource) Valid() bool {
	return s == SourceManual || s == SourceBank
}

// Transaction is a single money movement.
//
// The date is kept as the ISO 8601 string it was recorded with. Monthly
// aggregation matches on the "YYYY-MM" prefix of this string, without any
// timezone normalization, so the raw form is authoritative.
type Transaction struct {
	ID         string            `json:"id" example:"d1b2b2f7-9d75-43a9-b2a9-0ac1b15e0d66"`
	Amount     decimal.Decimal   `json:"amount" example:"14.03" minimum:"0.00000001"`
	Type       TransactionType   `json:"type" example:"expense"`
	CategoryID string            `json:"categoryId" example:"alimentation"`
	Date       string            `json:"date" example:"2024-03-05T12:30:00Z"`
	Note       string            `json:"note" example:"Lunch" default:""`
	Source     TransactionSource `json:"source" example:"manual" default:"manual"`
}

// Month returns the month key the transaction belongs to.
//
// This is a pure prefix operation on the stored date string. Dates shorter
// than a full month prefix yield a zero Month.
func (t Transaction) Month() types.Month {
	if len(t.Date) < 7 {
		return types.Month{}
	}

	month, err := types.ParseMonth(t.Date[:7])
	if err != nil {
		return types.Month{}
	}
	return month
}

// InMonth reports whether the transaction's date falls into the given month,
// matching on the date's "YYYY-MM" prefix.
func (t Transaction) InMonth(month types.Month) bool {
	return strings.HasPrefix(t.Date, month.String())
}
