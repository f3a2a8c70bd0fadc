package models

// AppState is the aggregate root that is serialized as one JSON document
// under a single storage key.
type AppState struct {
	UserConfig     *UserConfig              `json:"userConfig"`
	Transactions   []Transaction            `json:"transactions"`
	Categories     []Category               `json:"categories"`
	MonthlyBudgets map[string]MonthlyBudget `json:"monthlyBudgets"`
}

// Bootstrap returns the state the app starts out with before a persisted
// document has been loaded: no user configuration, no transactions, the ten
// seeded default categories and no monthly budgets.
func Bootstrap() AppState {
	return AppState{
		UserConfig:     nil,
		Transactions:   []Transaction{},
		Categories:     DefaultCategories(),
		MonthlyBudgets: map[string]MonthlyBudget{},
	}
}

// Clone returns a deep copy of the state. Mutating the copy never affects
// the original, so clones can be handed out as read-only snapshots.
func (s AppState) Clone() AppState {
	clone := AppState{
		Transactions:   make([]Transaction, len(s.Transactions)),
		Categories:     make([]Category, len(s.Categories)),
		MonthlyBudgets: make(map[string]MonthlyBudget, len(s.MonthlyBudgets)),
	}

	if s.UserConfig != nil {
		config := *s.UserConfig
		clone.UserConfig = &config
	}

	copy(clone.Transactions, s.Transactions)
	copy(clone.Categories, s.Categories)

	for month, budget := range s.MonthlyBudgets {
		clone.MonthlyBudgets[month] = budget
	}

	return clone
}

// Category returns the category with the given ID.
func (s AppState) Category(id string) (Category, bool) {
	for _, category := range s.Categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}
