package v1

import (
	"github.com/budgetcopain/backend/internal/models"
)

// CategoryEditable are the fields of a category that can be set when
// creating it. New categories are always active.
type CategoryEditable struct {
	ID    string `json:"id" example:"abonnements"` // Unique ID, chosen by the client
	Name  string `json:"name" example:"Abonnements"`
	Icon  string `json:"icon" example:"📺"`
	Color string `json:"color" example:"#0EA5E9"` // Hex color for the category
}

// model returns the store resource for the API representation of the
// editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		ID:    editable.ID,
		Name:  editable.Name,
		Icon:  editable.Icon,
		Color: editable.Color,
	}
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                               // List of categories
	Error *string           `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                               // The category
	Error *string          `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}
