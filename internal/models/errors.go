package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrUserConfigNotFound  = fmt.Errorf("%w user configuration yet", ErrResourceNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w transaction matching your query", ErrResourceNotFound)
	ErrCategoryNotFound    = fmt.Errorf("%w category matching your query", ErrResourceNotFound)
	ErrBudgetNotFound      = fmt.Errorf("%w monthly budget matching your query", ErrResourceNotFound)
)

var (
	ErrAmountNotPositive    = errors.New("the amount of a transaction must be positive")
	ErrTransactionType      = errors.New("the transaction type must be expense or income")
	ErrTransactionSource    = errors.New("the transaction source must be manual or bank")
	ErrCategoryIDEmpty      = errors.New("the category ID must not be empty")
	ErrCategoryIDNotUnique  = errors.New("a category with this ID already exists")
	ErrMainGoal             = errors.New("the main goal must be one of save, control, invest or clear")
	ErrFinancialComfort     = errors.New("the financial comfort must be one of comfortable, balanced or tight")
	ErrUsageMode            = errors.New("the usage mode must be one of manual, bank or mixed")
	ErrSubscriptionPlan     = errors.New("the subscription plan must be one of free, monthly, annual or lifetime")
	ErrCurrencyCodeUnknown  = errors.New("the currency code is not a known ISO 4217 code")
	ErrTransactionDateEmpty = errors.New("the date of a transaction must be set")
	ErrBudgetNegative       = errors.New("the total budget of a month must not be negative")
)
