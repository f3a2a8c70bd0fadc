package store

import (
	"github.com/budgetcopain/backend/internal/models"
)

// CategoryPatch is a partial update of a category. Only fields that are
// set are changed, the ID of a category never changes.
type CategoryPatch struct {
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	Color    *string `json:"color"`
	IsActive *bool   `json:"isActive"`
}

// Categories returns all categories in their seeded order.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]models.Category, len(s.state.Categories))
	copy(categories, s.state.Categories)
	return categories
}

// Category returns the category with the given ID.
func (s *Store) Category(id string) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.state.Category(id)
	if !ok {
		return models.Category{}, models.ErrCategoryNotFound
	}

	return category, nil
}

// AddCategory appends a custom category. The ID must be set and unique,
// new categories are always active.
func (s *Store) AddCategory(category models.Category) (models.Category, error) {
	if category.ID == "" {
		return models.Category{}, models.ErrCategoryIDEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Category(category.ID); ok {
		return models.Category{}, models.ErrCategoryIDNotUnique
	}

	category.IsActive = true

	s.state.Categories = append(s.state.Categories, category)
	s.persist()

	return category, nil
}

// UpdateCategory applies a partial update to the category with the
// given ID. Deactivating a category hides it from pickers without
// touching the transactions that reference it.
func (s *Store) UpdateCategory(id string, patch CategoryPatch) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, category := range s.state.Categories {
		if category.ID != id {
			continue
		}

		if patch.Name != nil {
			category.Name = *patch.Name
		}
		if patch.Icon != nil {
			category.Icon = *patch.Icon
		}
		if patch.Color != nil {
			category.Color = *patch.Color
		}
		if patch.IsActive != nil {
			category.IsActive = *patch.IsActive
		}

		s.state.Categories[i] = category
		s.persist()

		return category, nil
	}

	return models.Category{}, models.ErrCategoryNotFound
}
