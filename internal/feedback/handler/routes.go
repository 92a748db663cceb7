package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *FeedbackHandler, requireAuth fiber.Handler) {
	feedbacks := app.Group("/api/v1/feedbacks", requireAuth)
	feedbacks.Post("/", h.Save)
	feedbacks.Get("/book/:bookId", h.FindAllByBook)
}
