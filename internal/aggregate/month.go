// Package aggregate computes the monthly view of the application
// state. All functions are pure, they only read the state they are
// given.
package aggregate

import (
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategorySum is the share of one category in a month's expenses.
type CategorySum struct {
	Category models.Category `json:"category"`
	// Total is the sum of all expenses for this category in the month.
	Total decimal.Decimal `json:"total" example:"180.50"`
	// Percentage is Total relative to the month's total expenses, in
	// percent. It is 0 when the month has no expenses.
	Percentage decimal.Decimal `json:"percentage" example:"42.5"`
}

// MonthData is everything the app shows for one month.
type MonthData struct {
	Month types.Month `json:"month" example:"2026-03"`

	// Transactions are the month's transactions, newest first.
	Transactions []models.Transaction `json:"transactions"`

	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"420.00"`
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"2100.00"`

	// Budget is the configured total budget for the month, 0 when no
	// budget is configured.
	Budget decimal.Decimal `json:"budget" example:"1000"`

	// Remaining is Budget minus TotalExpenses. It goes negative when
	// the month is overspent.
	Remaining decimal.Decimal `json:"remaining" example:"580.00"`

	// ByCategory lists the categories with expenses in this month,
	// largest share first. Categories without expenses are omitted.
	ByCategory []CategorySum `json:"byCategory"`
}

var hundred = decimal.NewFromInt(100)

// ForMonth computes the monthly view for one month of the given state.
func ForMonth(state models.AppState, month types.Month) MonthData {
	data := MonthData{
		Month:        month,
		Transactions: []models.Transaction{},
		ByCategory:   []CategorySum{},
	}

	byCategory := make(map[string]decimal.Decimal)

	for _, transaction := range state.Transactions {
		if !transaction.InMonth(month) {
			continue
		}

		data.Transactions = append(data.Transactions, transaction)

		switch transaction.Type {
		case models.TypeExpense:
			data.TotalExpenses = data.TotalExpenses.Add(transaction.Amount)
			byCategory[transaction.CategoryID] = byCategory[transaction.CategoryID].Add(transaction.Amount)
		case models.TypeIncome:
			data.TotalIncome = data.TotalIncome.Add(transaction.Amount)
		}
	}

	if budget, ok := state.MonthlyBudgets[month.String()]; ok {
		data.Budget = budget.TotalBudget
	}
	data.Remaining = data.Budget.Sub(data.TotalExpenses)

	for id, total := range byCategory {
		if !total.IsPositive() {
			continue
		}

		category, ok := state.Category(id)
		if !ok {
			// The category was referenced by a transaction but no
			// longer exists in the document
			category = models.Category{ID: id, Name: id}
		}

		percentage := decimal.Zero
		if data.TotalExpenses.IsPositive() {
			percentage = total.Div(data.TotalExpenses).Mul(hundred)
		}

		data.ByCategory = append(data.ByCategory, CategorySum{
			Category:   category,
			Total:      total,
			Percentage: percentage,
		})
	}

	slices.SortStableFunc(data.ByCategory, func(a, b CategorySum) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmpString(a.Category.ID, b.Category.ID)
	})

	return data
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
