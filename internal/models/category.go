package models

// Category is a spending or income bucket that transactions reference by ID.
type Category struct {
	ID       string `json:"id" example:"alimentation"`
	Name     string `json:"name" example:"Alimentation"`
	Icon     string `json:"icon" example:"🍕"`
	Color    string `json:"color" example:"#EF4444"`
	IsActive bool   `json:"isActive" example:"true"`
}

// DefaultCategories returns a fresh copy of the ten categories that are
// seeded at first run. All of them are active.
func DefaultCategories() []Category {
	return []Category{
		{ID: "alimentation", Name: "Alimentation", Icon: "🍕", Color: "#EF4444", IsActive: true},
		{ID: "transport", Name: "Transport", Icon: "🚗", Color: "#3B82F6", IsActive: true},
		{ID: "logement", Name: "Logement", Icon: "🏠", Color: "#8B5CF6", IsActive: true},
		{ID: "loisirs", Name: "Loisirs", Icon: "🎮", Color: "#EC4899", IsActive: true},
		{ID: "sante", Name: "Santé", Icon: "💊", Color: "#10B981", IsActive: true},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#F59E0B", IsActive: true},
		{ID: "voyage", Name: "Voyage", Icon: "✈️", Color: "#14B8A6", IsActive: true},
		{ID: "education", Name: "Éducation", Icon: "📚", Color: "#6366F1", IsActive: true},
		{ID: "services", Name: "Services", Icon: "💼", Color: "#8B5CF6", IsActive: true},
		{ID: "autres", Name: "Autres", Icon: "📦", Color: "#64748B", IsActive: true},
	}
}
