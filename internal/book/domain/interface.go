package domain

//go:generate mockgen -destination=../../mocks/mock_book_repository.go -package=mocks github.com/hamoodahalabed/book-network/internal/book/domain BookRepository

import "context"

type BookRepository interface {
	GetByID(ctx context.Context, id string) (*Book, error)
	GetDetailByID(ctx context.Context, id string) (*BookDetail, error)
	Create(ctx context.Context, book *Book) error
	UpdateShareable(ctx context.Context, id string, shareable bool) error
	UpdateArchived(ctx context.Context, id string, archived bool) error
	FindAllDisplayable(ctx context.Context, viewerID string, page, size int) ([]BookDetail, int64, error)
	FindAllByOwner(ctx context.Context, ownerID string, page, size int) ([]BookDetail, int64, error)

	HasOpenTransaction(ctx context.Context, bookID string) (bool, error)
	CreateTransaction(ctx context.Context, tx *TransactionHistory) error
	FindOpenTransaction(ctx context.Context, bookID, borrowerID string) (*TransactionHistory, error)
	FindPendingReturn(ctx context.Context, bookID, ownerID string) (*TransactionHistory, error)
	MarkReturned(ctx context.Context, txID string) error
	MarkReturnApproved(ctx context.Context, txID string) error
	FindAllBorrowedByUser(ctx context.Context, userID string, page, size int) ([]BorrowedBook, int64, error)
	FindAllBorrowedFromOwner(ctx context.Context, ownerID string, page, size int) ([]BorrowedBook, int64, error)
}
