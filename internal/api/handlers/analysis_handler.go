package handlers

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/internal/api/presenters"
	"Ralph-Backend/pkg/analysis"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		Analyze(c *fiber.Ctx) error
		GetOverview(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) Analyze(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrUnauthorized)
	}

	req := new(domain.AnalyzeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidMode, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidMode, err)
	}

	if err := h.analysisService.Analyze(c.Context(), *req, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAnalysisMode):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidMode, err)
		case errors.Is(err, domain.ErrNoEntriesToAnalyze):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoEntriesToAnalyze, err)
		case errors.Is(err, domain.ErrUnauthorized):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyze, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAnalyze)
}

func (h *analysisHandler) GetOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrUnauthorized)
	}

	overview, err := h.analysisService.GetOverview(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOverview, err)
	}

	return presenters.SuccessResponse(c, overview, fiber.StatusOK, domain.MessageSuccessGetOverview)
}
