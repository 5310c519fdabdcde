package catalog

import (
	"context"
	"fmt"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

type catalogRepository struct {
	imageBaseURL string
	logger       *zap.Logger
}

// NewCatalogRepository creates the static in-process catalog.
func NewCatalogRepository(cfg *config.CatalogConfig, logger *zap.Logger) repository.CatalogRepository {
	return &catalogRepository{
		imageBaseURL: cfg.ImageBaseURL,
		logger:       logger,
	}
}

func (r *catalogRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	result := make([]domain.City, len(cities))
	for i, city := range cities {
		if city.Image == "" {
			// Synthesize a site-relative image reference from the city ID
			city.Image = fmt.Sprintf("%s/images/cities/%s.jpg", r.imageBaseURL, city.ID)
		}
		result[i] = city
	}
	return result, nil
}

func (r *catalogRepository) GetCity(ctx context.Context, cityID string) (*domain.City, error) {
	city := r.findCity(cityID)
	if city == nil {
		return nil, errors.ErrCityNotFound
	}
	if city.Image == "" {
		city.Image = fmt.Sprintf("%s/images/cities/%s.jpg", r.imageBaseURL, city.ID)
	}
	return city, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context, cityID string) ([]domain.Category, error) {
	// The category catalog is the same for every city; cityID is deliberately
	// not checked for existence.
	result := make([]domain.Category, len(categories))
	copy(result, categories)
	return result, nil
}

func (r *catalogRepository) ListSubcategories(ctx context.Context, cityID, category string) ([]domain.Subcategory, error) {
	city := r.findCity(cityID)
	if city == nil {
		r.logger.Debug("Unknown city, serving fallback subcategories",
			zap.String("city_id", cityID))
		return fallback(), nil
	}

	var (
		kind  string
		label string
		items []string
	)
	switch resolveCategoryID(category) {
	case domain.CategoryCulture:
		kind, label, items = "cultural", "人文景观", city.CulturalAttractions
	case domain.CategoryNature:
		kind, label, items = "natural", "自然景观", city.NaturalAttractions
	case domain.CategoryFood:
		kind, label, items = "food", "特色美食", city.FoodCulture
	default:
		r.logger.Debug("Unknown category, serving fallback subcategories",
			zap.String("city_id", cityID),
			zap.String("category", category))
		return fallback(), nil
	}

	if len(items) == 0 {
		return fallback(), nil
	}

	result := make([]domain.Subcategory, 0, len(items))
	for i, name := range items {
		result = append(result, domain.Subcategory{
			ID:          fmt.Sprintf("%s-%d", kind, i),
			Name:        name,
			Description: fmt.Sprintf("%s的%s - %s", city.Name, label, name),
		})
	}
	return result, nil
}

func (r *catalogRepository) findCity(cityID string) *domain.City {
	for _, city := range cities {
		if city.ID == cityID || city.Name == cityID {
			c := city
			return &c
		}
	}
	return nil
}

// resolveCategoryID matches a stable category ID first and falls back to the
// exact display name, so callers still holding localized names keep working.
func resolveCategoryID(category string) string {
	for _, c := range categories {
		if c.ID == category || c.Name == category {
			return c.ID
		}
	}
	return ""
}

func fallback() []domain.Subcategory {
	result := make([]domain.Subcategory, len(fallbackSubcategories))
	copy(result, fallbackSubcategories)
	return result
}
