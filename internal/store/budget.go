package store

import (
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyBudgets returns all configured monthly budgets keyed by month.
func (s *Store) MonthlyBudgets() map[string]models.MonthlyBudget {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := make(map[string]models.MonthlyBudget, len(s.state.MonthlyBudgets))
	for month, budget := range s.state.MonthlyBudgets {
		budgets[month] = budget
	}
	return budgets
}

// MonthlyBudget returns the budget configured for a month.
func (s *Store) MonthlyBudget(month types.Month) (models.MonthlyBudget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.state.MonthlyBudgets[month.String()]
	if !ok {
		return models.MonthlyBudget{}, models.ErrBudgetNotFound
	}

	return budget, nil
}

// SetMonthlyBudget sets the total budget for a month, creating the
// entry when the month has no budget yet. The stored expense and income
// totals survive the update, they are kept for older documents but
// never read.
func (s *Store) SetMonthlyBudget(month types.Month, total decimal.Decimal) (models.MonthlyBudget, error) {
	if total.IsNegative() {
		return models.MonthlyBudget{}, models.ErrBudgetNegative
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.state.MonthlyBudgets[month.String()]
	if !ok {
		budget = models.MonthlyBudget{Month: month.String()}
	}
	budget.TotalBudget = total

	s.state.MonthlyBudgets[month.String()] = budget
	s.persist()

	return budget, nil
}
