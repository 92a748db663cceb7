package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhandler "github.com/hamoodahalabed/book-network/internal/auth/handler"
	"github.com/hamoodahalabed/book-network/internal/book/domain"
	"github.com/hamoodahalabed/book-network/internal/book/dto"
	"github.com/hamoodahalabed/book-network/internal/book/handler"
	"github.com/hamoodahalabed/book-network/internal/book/service"
	"github.com/hamoodahalabed/book-network/internal/mocks"
)

// fakeAuth stands in for the token middleware and authenticates every
// request as the given user.
func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(authhandler.LocalsUserID, userID)
		return c.Next()
	}
}

func newTestApp(t *testing.T, userID string) (*fiber.App, *mocks.MockBookRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockBookRepository(ctrl)
	bookHandler := handler.NewBookHandler(service.NewBookService(mockRepo))

	app := fiber.New()
	handler.RegisterRoutes(app, bookHandler, fakeAuth(userID))

	return app, mockRepo
}

func TestSave(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "owner-1")

		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		input := dto.BookRequest{Title: "Title", AuthorName: "Author", ISBN: "isbn", Synopsis: "synopsis"}
		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/v1/books/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("bad request", func(t *testing.T) {
		app, _ := newTestApp(t, "owner-1")

		req := httptest.NewRequest("POST", "/api/v1/books/", bytes.NewReader([]byte("not-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation errors", func(t *testing.T) {
		app, _ := newTestApp(t, "owner-1")

		body, _ := json.Marshal(dto.BookRequest{Title: ""})
		req := httptest.NewRequest("POST", "/api/v1/books/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestFindByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "viewer-1")

		detail := &domain.BookDetail{
			Book:      domain.Book{ID: "book-1", Title: "Title", OwnerID: "owner-1", Shareable: true},
			OwnerName: "Ali Hassan",
			Rate:      4.0,
		}
		mockRepo.EXPECT().GetDetailByID(gomock.Any(), "book-1").Return(detail, nil)

		req := httptest.NewRequest("GET", "/api/v1/books/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload dto.BookResponse
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "Ali Hassan", payload.Owner)
		assert.Equal(t, 4.0, payload.Rate)
	})

	t.Run("not found", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "viewer-1")

		mockRepo.EXPECT().GetDetailByID(gomock.Any(), "missing").Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/v1/books/missing", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestFindAllDisplayable(t *testing.T) {
	app, mockRepo := newTestApp(t, "viewer-1")

	books := []domain.BookDetail{
		{Book: domain.Book{ID: "book-1"}, OwnerName: "A"},
	}
	mockRepo.EXPECT().FindAllDisplayable(gomock.Any(), "viewer-1", 2, 5).Return(books, int64(11), nil)

	req := httptest.NewRequest("GET", "/api/v1/books/?page=2&size=5", nil)

	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Content       []dto.BookResponse `json:"content"`
		TotalElements int64              `json:"totalElements"`
		TotalPages    int                `json:"totalPages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Content, 1)
	assert.Equal(t, int64(11), payload.TotalElements)
	assert.Equal(t, 3, payload.TotalPages)
}

func TestUpdateShareableStatus(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "owner-1")

		book := &domain.Book{ID: "book-1", OwnerID: "owner-1", Shareable: true}
		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		mockRepo.EXPECT().UpdateShareable(gomock.Any(), "book-1", false).Return(nil)

		req := httptest.NewRequest("PATCH", "/api/v1/books/shareable/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "intruder-1")

		book := &domain.Book{ID: "book-1", OwnerID: "owner-1", Shareable: true}
		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)

		req := httptest.NewRequest("PATCH", "/api/v1/books/shareable/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestBorrow(t *testing.T) {
	borrowable := func() *domain.Book {
		return &domain.Book{ID: "book-1", OwnerID: "owner-1", Shareable: true}
	}

	t.Run("success", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "borrower-1")

		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(borrowable(), nil)
		mockRepo.EXPECT().HasOpenTransaction(gomock.Any(), "book-1").Return(false, nil)
		mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest("POST", "/api/v1/books/borrow/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("conflict when already borrowed", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "borrower-1")

		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(borrowable(), nil)
		mockRepo.EXPECT().HasOpenTransaction(gomock.Any(), "book-1").Return(true, nil)

		req := httptest.NewRequest("POST", "/api/v1/books/borrow/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("own book forbidden", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "owner-1")

		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(borrowable(), nil)

		req := httptest.NewRequest("POST", "/api/v1/books/borrow/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestReturnAndApprove(t *testing.T) {
	t.Run("borrower returns", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "borrower-1")

		book := &domain.Book{ID: "book-1", OwnerID: "owner-1", Shareable: true}
		openTx := &domain.TransactionHistory{ID: "tx-1", BookID: "book-1", UserID: "borrower-1"}
		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		mockRepo.EXPECT().FindOpenTransaction(gomock.Any(), "book-1", "borrower-1").Return(openTx, nil)
		mockRepo.EXPECT().MarkReturned(gomock.Any(), "tx-1").Return(nil)

		req := httptest.NewRequest("PATCH", "/api/v1/books/borrow/return/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("owner approves", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "owner-1")

		book := &domain.Book{ID: "book-1", OwnerID: "owner-1", Shareable: true}
		pendingTx := &domain.TransactionHistory{ID: "tx-1", BookID: "book-1", UserID: "borrower-1", Returned: true}
		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		mockRepo.EXPECT().FindPendingReturn(gomock.Any(), "book-1", "owner-1").Return(pendingTx, nil)
		mockRepo.EXPECT().MarkReturnApproved(gomock.Any(), "tx-1").Return(nil)

		req := httptest.NewRequest("PATCH", "/api/v1/books/borrow/return/approve/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("nothing pending conflicts", func(t *testing.T) {
		app, mockRepo := newTestApp(t, "owner-1")

		book := &domain.Book{ID: "book-1", OwnerID: "owner-1", Shareable: true}
		mockRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		mockRepo.EXPECT().FindPendingReturn(gomock.Any(), "book-1", "owner-1").Return(nil, nil)

		req := httptest.NewRequest("PATCH", "/api/v1/books/borrow/return/approve/book-1", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
