package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/pkg/validator"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlanHandler serves plan generation and the saved-plans list.
type PlanHandler struct {
	planUC    *usecase.PlanUseCase
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

func NewPlanHandler(planUC *usecase.PlanUseCase, sessionUC *usecase.SessionUseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUC:    planUC,
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// Generate godoc
// @Summary Generate a travel plan
// @Description Generates the itinerary for a completed selection. Without a stored credential, or when the model call fails, the deterministic fallback template is served; generation itself never fails.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Completed selection"
// @Success 200 {object} utils.SuccessResponse{data=domain.PlanResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/plans/generate [post]
func (h *PlanHandler) Generate(c *fiber.Ctx) error {
	var req dto.GeneratePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	sid := sessionID(c)
	sel := domain.PlanningSelection{
		City:        req.City,
		Category:    req.Category,
		Subcategory: req.Subcategory,
	}

	h.sessionUC.SetLoading(sid, true)
	defer h.sessionUC.SetLoading(sid, false)

	result, err := h.planUC.Generate(c.Context(), sel)
	if err != nil {
		h.logger.Warn("Plan generation rejected", zap.Error(err))
		h.sessionUC.SetError(sid, errors.ErrMissingSelection.Message)
		return utils.SendError(c, err)
	}

	h.sessionUC.SetPlanResult(sid, result)

	return utils.SendSuccess(c, result, nil)
}

// Save godoc
// @Summary Save a generated plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.SavePlanRequest true "Plan to save"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/plans/save [post]
func (h *PlanHandler) Save(c *fiber.Ctx) error {
	var req dto.SavePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.planUC.SavePlan(c.Context(), req.Filename, req.Content); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"saved": true}, nil)
}

// ListSaved godoc
// @Summary List saved plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SavedPlansResponse}
// @Router /api/v1/plans/saved [get]
func (h *PlanHandler) ListSaved(c *fiber.Ctx) error {
	plans, err := h.planUC.ListSavedPlans(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SavedPlansResponse{Plans: plans}, &utils.Meta{
		Total: len(plans),
	})
}
