package models

import (
	"fmt"

	"golang.org/x/text/currency"
)

// CurrencySymbol resolves an ISO 4217 currency code like "EUR" to the symbol
// stored in the user configuration, e.g. "€".
func CurrencySymbol(code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrCurrencyCodeUnknown, code)
	}

	return fmt.Sprintf("%v", currency.Symbol(unit)), nil
}
