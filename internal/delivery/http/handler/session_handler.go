package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/pkg/utils"
	"github.com/trip-planner/internal/pkg/validator"
	"github.com/trip-planner/internal/usecase"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// SessionHandler exposes the per-session application state: the in-progress
// selection, navigation history and the reset/back operations.
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	state := h.sessionUC.Get(sessionID(c))
	return utils.SendSuccess(c, state, nil)
}

func (h *SessionHandler) UpdateSelection(c *fiber.Ctx) error {
	var req dto.SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	state := h.sessionUC.UpdateSelection(c.Context(), sessionID(c), req)
	return utils.SendSuccess(c, state, nil)
}

func (h *SessionHandler) Restore(c *fiber.Ctx) error {
	state := h.sessionUC.Restore(c.Context(), sessionID(c))
	return utils.SendSuccess(c, state, nil)
}

func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	state := h.sessionUC.Reset(c.Context(), sessionID(c))
	return utils.SendSuccess(c, state, nil)
}

func (h *SessionHandler) PushHistory(c *fiber.Ctx) error {
	var req dto.HistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	state := h.sessionUC.PushHistory(sessionID(c), req.Path)
	return utils.SendSuccess(c, state, nil)
}

func (h *SessionHandler) NavigateBack(c *fiber.Ctx) error {
	path, err := h.sessionUC.NavigateBack(sessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NavigationResponse{Path: path}, nil)
}
