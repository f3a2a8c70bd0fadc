package v1

import (
	"time"

	"github.com/budgetcopain/backend/internal/types"
)

type URIID struct {
	ID string `uri:"id" binding:"required"` // ID of the resource
}

type URIMonth struct {
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" binding:"required" example:"2026-03"` // Year and month in YYYY-MM format
}

func (u URIMonth) month() types.Month {
	return types.MonthOf(u.Month)
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}
