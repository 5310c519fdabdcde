package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/usecase"
	"go.uber.org/zap"
)

// CredentialHandler manages the stored API credential.
type CredentialHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

func NewCredentialHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *CredentialHandler {
	return &CredentialHandler{
		planUC: planUC,
		logger: logger,
	}
}

type credentialRequest struct {
	APIKey string `json:"api_key"`
}

func (h *CredentialHandler) Get(c *fiber.Ctx) error {
	key := h.planUC.GetCredential(c.Context())
	return utils.SendSuccess(c, fiber.Map{
		"api_key": key,
		"set":     key != "",
	}, nil)
}

func (h *CredentialHandler) Set(c *fiber.Ctx) error {
	var req credentialRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.planUC.SetCredential(c.Context(), req.APIKey); err != nil {
		h.logger.Error("Failed to store credential", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"set": req.APIKey != ""}, nil)
}

func (h *CredentialHandler) Delete(c *fiber.Ctx) error {
	if err := h.planUC.SetCredential(c.Context(), ""); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"set": false}, nil)
}
