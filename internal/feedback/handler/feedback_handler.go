package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/hamoodahalabed/book-network/internal/auth/handler"
	"github.com/hamoodahalabed/book-network/internal/common"
	"github.com/hamoodahalabed/book-network/internal/feedback/dto"
	"github.com/hamoodahalabed/book-network/internal/feedback/service"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) Save(c *fiber.Ctx) error {
	var input dto.FeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if messages := common.ValidateStruct(input); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"validationErrors": messages})
	}

	id, err := h.feedbackService.Save(c.UserContext(), input, authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *FeedbackHandler) FindAllByBook(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 10
	}

	feedbacks, err := h.feedbackService.FindAllByBook(c.UserContext(), c.Params("bookId"), authhandler.UserID(c), page, size)
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(feedbacks)
}
