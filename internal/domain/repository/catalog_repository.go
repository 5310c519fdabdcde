package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// CatalogRepository supplies the static city/category/subcategory reference
// data. Lookups never fail: an unknown city or category resolves to fallback
// data instead of an error, so the picker flow is never blocked.
type CatalogRepository interface {
	// ListCities returns all cities in fixed catalog order.
	ListCities(ctx context.Context) ([]domain.City, error)

	// GetCity returns one city by ID.
	GetCity(ctx context.Context, cityID string) (*domain.City, error)

	// ListCategories returns the category catalog. The same catalog applies to
	// every city; cityID is not checked for existence.
	ListCategories(ctx context.Context, cityID string) ([]domain.Category, error)

	// ListSubcategories derives subcategories from the city's attribute list
	// for the category, matched by stable category ID first and display name
	// second. Any miss returns the generic fallback sequence.
	ListSubcategories(ctx context.Context, cityID, category string) ([]domain.Subcategory, error)
}
