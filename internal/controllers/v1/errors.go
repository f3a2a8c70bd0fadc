package v1

import (
	"errors"
	"net/http"

	"github.com/budgetcopain/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate status for a store or service error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errTransactionTypeInvalid   = errors.New("the specified transaction type is invalid")
	errTransactionSourceInvalid = errors.New("the specified transaction source is invalid")
)

// Vendor service errors
var (
	errIdentityNotConfigured = errors.New("sign-in is not configured on this server")
	errBankNotConfigured     = errors.New("bank connections are not configured on this server")
	errPaymentNotConfigured  = errors.New("subscriptions are not configured on this server")
	errCodeNotSet            = errors.New("the code parameter must be set")
	errReceiptNotSet         = errors.New("the receipt parameter must be set")
)
