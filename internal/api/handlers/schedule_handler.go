package handlers

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/internal/api/presenters"
	"Ralph-Backend/pkg/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScheduleHandler interface {
		AddEntry(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	scheduleHandler struct {
		scheduleService schedule.ScheduleService
		validator       *validator.Validate
	}
)

func NewScheduleHandler(scheduleService schedule.ScheduleService, validator *validator.Validate) ScheduleHandler {
	return &scheduleHandler{
		scheduleService: scheduleService,
		validator:       validator,
	}
}

func (h *scheduleHandler) AddEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddScheduleEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddScheduleEntry, err)
	}

	res, err := h.scheduleService.AddEntry(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddScheduleEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddScheduleEntry)
}

func (h *scheduleHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.scheduleService.GetEntries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScheduleEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetScheduleEntries)
}

func (h *scheduleHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.scheduleService.DeleteEntry(c.Context(), entryID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteScheduleEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteScheduleEntry)
}
