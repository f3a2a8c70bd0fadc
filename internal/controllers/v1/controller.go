// Package v1 implements API v1.
package v1

import (
	"github.com/budgetcopain/backend/internal/identity"
	"github.com/budgetcopain/backend/internal/payment"
	"github.com/budgetcopain/backend/internal/powens"
	"github.com/budgetcopain/backend/internal/store"
)

// Controller holds the dependencies of API v1. The vendor services can
// be nil, their endpoints then report that the feature is not
// configured.
type Controller struct {
	Store    *store.Store
	Identity identity.Service
	Bank     powens.Service
	Payment  payment.Service
}
