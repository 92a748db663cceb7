package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *BookHandler, requireAuth fiber.Handler) {
	books := app.Group("/api/v1/books", requireAuth)
	books.Post("/", h.Save)
	books.Get("/", h.FindAllDisplayable)
	books.Get("/owner", h.FindAllByOwner)
	books.Get("/borrowed", h.FindAllBorrowedBooks)
	books.Get("/returned", h.FindAllLentBooks)
	books.Get("/:id", h.FindByID)
	books.Patch("/shareable/:id", h.UpdateShareableStatus)
	books.Patch("/archived/:id", h.UpdateArchivedStatus)
	books.Post("/borrow/:id", h.Borrow)
	books.Patch("/borrow/return/:id", h.ReturnBorrowedBook)
	books.Patch("/borrow/return/approve/:id", h.ApproveReturn)
}
