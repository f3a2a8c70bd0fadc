package v1

import (
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/store"
)

// UserConfigEditable are the fields of the user configuration that can
// be set through the API. Fields that are not sent stay unchanged.
type UserConfigEditable struct {
	store.UserConfigPatch

	// CurrencyCode is an ISO 4217 code, e.g. "EUR". When set, the
	// currency symbol is derived from it and takes precedence over the
	// currency field.
	CurrencyCode *string `json:"currencyCode" example:"EUR"`
}

func (editable UserConfigEditable) patch() (store.UserConfigPatch, error) {
	patch := editable.UserConfigPatch

	if editable.CurrencyCode != nil {
		symbol, err := models.CurrencySymbol(*editable.CurrencyCode)
		if err != nil {
			return store.UserConfigPatch{}, err
		}
		patch.Currency = &symbol
	}

	return patch, nil
}

type UserConfigResponse struct {
	Data  *models.UserConfig `json:"data"`                                             // The user configuration
	Error *string            `json:"error" example:"there is no user configuration yet"` // The error, if any occurred
}
