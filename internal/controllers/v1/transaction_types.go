package v1

import (
	"time"

	"github.com/budgetcopain/backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionEditable are the fields of a transaction that can be set
// when creating it.
type TransactionEditable struct {
	Amount decimal.Decimal `json:"amount" example:"14.03"` // The amount of the transaction, always positive

	Type       models.TransactionType   `json:"type" example:"expense"`            // Whether money was spent or received
	CategoryID string                   `json:"categoryId" example:"alimentation"` // ID of the category
	Date       string                   `json:"date" example:"2026-03-15T10:00:00.000Z"`
	Note       string                   `json:"note" example:"Lunch" default:""` // A note
	Source     models.TransactionSource `json:"source" example:"manual" default:"manual"`
}

// model returns the store resource for the API representation of the
// editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:     editable.Amount,
		Type:       editable.Type,
		CategoryID: editable.CategoryID,
		Date:       editable.Date,
		Note:       editable.Note,
		Source:     editable.Source,
	}
}

type TransactionQueryFilter struct {
	Month      time.Time                `form:"month" time_format:"2006-01" time_utc:"1"` // Only transactions in this month, YYYY-MM format
	Type       models.TransactionType   `form:"type"`                                     // Filter by type
	CategoryID string                   `form:"category"`                                 // Filter by category ID
	Source     models.TransactionSource `form:"source"`                                   // Filter by source
	Note       string                   `form:"note"`                                     // Filter by note, supports globbing
	Offset     uint                     `form:"offset"`                                   // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                      `form:"limit" default:"50"`                       // Maximum number of Transactions to return. Defaults to 50.
}

type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`                                                // List of transactions
	Error      *string              `json:"error" example:"the specified transaction type is invalid"` // The error, if any occurred
	Pagination *Pagination          `json:"pagination"`                                          // Pagination information
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                                     // The transaction
	Error *string             `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
}
