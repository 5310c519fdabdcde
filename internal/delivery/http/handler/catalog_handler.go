package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/usecase"
	"go.uber.org/zap"
)

// CatalogHandler serves the city/category/subcategory pickers.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListCities godoc
// @Summary List all cities
// @Description Returns the full city catalog in fixed order, served through the city-list cache.
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CitiesResponse}
// @Router /api/v1/cities [get]
func (h *CatalogHandler) ListCities(c *fiber.Ctx) error {
	result, err := h.catalogUC.ListCities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Cities),
	})
}

// GetCity godoc
// @Summary Get one city
// @Tags Catalog
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.City}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id} [get]
func (h *CatalogHandler) GetCity(c *fiber.Ctx) error {
	cityID := c.Params("id")

	city, err := h.catalogUC.GetCity(c.Context(), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, city, nil)
}

// ListCategories godoc
// @Summary List travel categories for a city
// @Description The category catalog is city-independent; the path parameter is accepted for routing symmetry.
// @Tags Catalog
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Router /api/v1/cities/{id}/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	cityID := c.Params("id")

	categories, err := h.catalogUC.ListCategories(c.Context(), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"categories": categories,
	}, &utils.Meta{
		Total: len(categories),
	})
}

// ListSubcategories godoc
// @Summary List subcategories for a city and category
// @Description Derives subcategories from the city's attribute lists; unknown city or category yields the generic fallback sequence, never an error.
// @Tags Catalog
// @Produce json
// @Param id path string true "City ID"
// @Param category path string true "Category ID or display name"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubcategoriesResponse}
// @Router /api/v1/cities/{id}/categories/{category}/subcategories [get]
func (h *CatalogHandler) ListSubcategories(c *fiber.Ctx) error {
	cityID := c.Params("id")
	category := c.Params("category")

	subcategories, err := h.catalogUC.ListSubcategories(c.Context(), cityID, category)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"subcategories": subcategories,
	}, &utils.Meta{
		Total: len(subcategories),
	})
}
