package domain

// City is a catalog entry. The attraction and food lists feed subcategory
// derivation; cities are defined once at process start and never mutated.
type City struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Image               string   `json:"image,omitempty"`
	Description         string   `json:"description,omitempty"`
	CulturalAttractions []string `json:"culturalAttractions,omitempty"`
	NaturalAttractions  []string `json:"naturalAttractions,omitempty"`
	FoodCulture         []string `json:"foodCulture,omitempty"`
}

// Category is an open set keyed by stable ID; the display name is carried
// separately so renaming or localizing a category does not break matching.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Subcategory IDs are unique within one (city, category) response, not globally.
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Stable category IDs of the current catalog.
const (
	CategoryCulture = "culture"
	CategoryNature  = "nature"
	CategoryFood    = "food"
)
