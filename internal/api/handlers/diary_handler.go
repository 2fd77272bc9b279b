package handlers

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/internal/api/presenters"
	"Ralph-Backend/pkg/diary"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiaryHandler interface {
		AddFoodEntry(c *fiber.Ctx) error
		GetTodayEntries(c *fiber.Ctx) error
		UpdateFeelings(c *fiber.Ctx) error
	}

	diaryHandler struct {
		diaryService diary.DiaryService
		validator    *validator.Validate
	}
)

func NewDiaryHandler(diaryService diary.DiaryService, validator *validator.Validate) DiaryHandler {
	return &diaryHandler{
		diaryService: diaryService,
		validator:    validator,
	}
}

func (h *diaryHandler) AddFoodEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodEntry, err)
	}

	res, err := h.diaryService.AddFoodEntry(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodEntry)
}

func (h *diaryHandler) GetTodayEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.diaryService.GetTodayEntries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetFoodEntries)
}

func (h *diaryHandler) UpdateFeelings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")
	req := new(domain.UpdateFeelingsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeelings, err)
	}

	if err := h.diaryService.UpdateFeelings(c.Context(), entryID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeelings, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFeelings)
}
