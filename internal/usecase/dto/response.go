package dto

import "github.com/trip-planner/internal/domain"

type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
	Cached bool          `json:"cached"`
}

type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

type SubcategoriesResponse struct {
	Subcategories []domain.Subcategory `json:"subcategories"`
}

type SavedPlansResponse struct {
	Plans []domain.SavedPlan `json:"plans"`
}

type CredentialResponse struct {
	APIKey string `json:"api_key"`
	Set    bool   `json:"set"`
}

// NavigationResponse is the computed back-navigation target; navigation itself
// stays with the client.
type NavigationResponse struct {
	Path string `json:"path"`
}
