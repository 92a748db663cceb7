package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/hamoodahalabed/book-network/internal/auth/handler"
	"github.com/hamoodahalabed/book-network/internal/book/dto"
	"github.com/hamoodahalabed/book-network/internal/book/service"
	"github.com/hamoodahalabed/book-network/internal/common"
)

type BookHandler struct {
	bookService *service.BookService
}

func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

func (h *BookHandler) Save(c *fiber.Ctx) error {
	var input dto.BookRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if messages := common.ValidateStruct(input); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"validationErrors": messages})
	}

	id, err := h.bookService.Save(c.UserContext(), input, authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) FindByID(c *fiber.Ctx) error {
	book, err := h.bookService.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(book)
}

func (h *BookHandler) FindAllDisplayable(c *fiber.Ctx) error {
	page, size := pagination(c)

	books, err := h.bookService.FindAllDisplayable(c.UserContext(), authhandler.UserID(c), page, size)
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) FindAllByOwner(c *fiber.Ctx) error {
	page, size := pagination(c)

	books, err := h.bookService.FindAllByOwner(c.UserContext(), authhandler.UserID(c), page, size)
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) FindAllBorrowedBooks(c *fiber.Ctx) error {
	page, size := pagination(c)

	books, err := h.bookService.FindAllBorrowedBooks(c.UserContext(), authhandler.UserID(c), page, size)
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) FindAllLentBooks(c *fiber.Ctx) error {
	page, size := pagination(c)

	books, err := h.bookService.FindAllLentBooks(c.UserContext(), authhandler.UserID(c), page, size)
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(books)
}

func (h *BookHandler) UpdateShareableStatus(c *fiber.Ctx) error {
	id, err := h.bookService.UpdateShareableStatus(c.UserContext(), c.Params("id"), authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) UpdateArchivedStatus(c *fiber.Ctx) error {
	id, err := h.bookService.UpdateArchivedStatus(c.UserContext(), c.Params("id"), authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) Borrow(c *fiber.Ctx) error {
	txID, err := h.bookService.Borrow(c.UserContext(), c.Params("id"), authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": txID})
}

func (h *BookHandler) ReturnBorrowedBook(c *fiber.Ctx) error {
	txID, err := h.bookService.ReturnBorrowedBook(c.UserContext(), c.Params("id"), authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": txID})
}

func (h *BookHandler) ApproveReturn(c *fiber.Ctx) error {
	txID, err := h.bookService.ApproveReturn(c.UserContext(), c.Params("id"), authhandler.UserID(c))
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": txID})
}

func pagination(c *fiber.Ctx) (page, size int) {
	page = c.QueryInt("page", 0)
	size = c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}
