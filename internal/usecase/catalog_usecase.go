package usecase

import (
	"context"
	"time"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	store       repository.StoreRepository
	logger      *zap.Logger
	citiesTTL   time.Duration
}

func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	store repository.StoreRepository,
	logger *zap.Logger,
	citiesTTL time.Duration,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		store:       store,
		logger:      logger,
		citiesTTL:   citiesTTL,
	}
}

// ListCities serves the city catalog through a read-before-fetch cache. Cache
// failures on either side are logged and bypassed; the catalog itself is the
// source of truth.
func (uc *CatalogUseCase) ListCities(ctx context.Context) (*dto.CitiesResponse, error) {
	cached, err := uc.store.GetCachedCities(ctx)
	if err != nil {
		uc.logger.Warn("Cities cache read failed, falling through to catalog", zap.Error(err))
	}
	if len(cached) > 0 {
		return &dto.CitiesResponse{Cities: cached, Cached: true}, nil
	}

	cities, err := uc.catalogRepo.ListCities(ctx)
	if err != nil {
		uc.logger.Error("Failed to list cities", zap.Error(err))
		return nil, err
	}

	if err := uc.store.SetCachedCities(ctx, cities, uc.citiesTTL); err != nil {
		uc.logger.Warn("Cities cache write failed", zap.Error(err))
	}

	return &dto.CitiesResponse{Cities: cities, Cached: false}, nil
}

func (uc *CatalogUseCase) GetCity(ctx context.Context, cityID string) (*domain.City, error) {
	city, err := uc.catalogRepo.GetCity(ctx, cityID)
	if err != nil {
		uc.logger.Debug("City lookup failed", zap.String("city_id", cityID), zap.Error(err))
		return nil, err
	}
	return city, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context, cityID string) ([]domain.Category, error) {
	categories, err := uc.catalogRepo.ListCategories(ctx, cityID)
	if err != nil {
		uc.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (uc *CatalogUseCase) ListSubcategories(ctx context.Context, cityID, category string) ([]domain.Subcategory, error) {
	subcategories, err := uc.catalogRepo.ListSubcategories(ctx, cityID, category)
	if err != nil {
		uc.logger.Error("Failed to list subcategories", zap.Error(err))
		return nil, err
	}
	return subcategories, nil
}
