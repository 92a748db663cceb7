package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hamoodahalabed/book-network/internal/book/domain"
	"github.com/hamoodahalabed/book-network/internal/book/dto"
	"github.com/hamoodahalabed/book-network/internal/common"
	apperror "github.com/hamoodahalabed/book-network/internal/errors"
)

type BookService struct {
	repo domain.BookRepository
}

func NewBookService(repo domain.BookRepository) *BookService {
	return &BookService{repo: repo}
}

// Save creates a book owned by the caller and returns its id.
func (s *BookService) Save(ctx context.Context, input dto.BookRequest, ownerID string) (string, error) {
	now := time.Now()

	book := &domain.Book{
		ID:         uuid.New().String(),
		Title:      input.Title,
		AuthorName: input.AuthorName,
		ISBN:       input.ISBN,
		Synopsis:   input.Synopsis,
		Archived:   false,
		Shareable:  input.Shareable,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return "", err
	}

	return book.ID, nil
}

func (s *BookService) FindByID(ctx context.Context, bookID string) (*dto.BookResponse, error) {
	detail, err := s.repo.GetDetailByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperror.ErrBookNotFound
	}

	resp := toBookResponse(*detail)
	return &resp, nil
}

func (s *BookService) FindAllDisplayable(ctx context.Context, viewerID string, page, size int) (*common.PageResponse[dto.BookResponse], error) {
	books, total, err := s.repo.FindAllDisplayable(ctx, viewerID, page, size)
	if err != nil {
		return nil, err
	}

	resp := common.NewPageResponse(toBookResponses(books), page, size, total)
	return &resp, nil
}

func (s *BookService) FindAllByOwner(ctx context.Context, ownerID string, page, size int) (*common.PageResponse[dto.BookResponse], error) {
	books, total, err := s.repo.FindAllByOwner(ctx, ownerID, page, size)
	if err != nil {
		return nil, err
	}

	resp := common.NewPageResponse(toBookResponses(books), page, size, total)
	return &resp, nil
}

// UpdateShareableStatus flips the shareable flag. Owner only.
func (s *BookService) UpdateShareableStatus(ctx context.Context, bookID, actorID string) (string, error) {
	book, err := s.getOwnedBook(ctx, bookID, actorID)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateShareable(ctx, bookID, !book.Shareable); err != nil {
		return "", err
	}

	return bookID, nil
}

// UpdateArchivedStatus flips the archived flag. Owner only.
func (s *BookService) UpdateArchivedStatus(ctx context.Context, bookID, actorID string) (string, error) {
	book, err := s.getOwnedBook(ctx, bookID, actorID)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateArchived(ctx, bookID, !book.Archived); err != nil {
		return "", err
	}

	return bookID, nil
}

func (s *BookService) getOwnedBook(ctx context.Context, bookID, actorID string) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperror.ErrBookNotFound
	}
	if book.OwnerID != actorID {
		return nil, apperror.ErrOperationNotPermitted
	}
	return book, nil
}

// Borrow opens a loan on the book for the caller. The availability pre-check
// keeps the common path cheap; the uniq_open_loan index in the store is the
// authoritative guard when two borrowers race.
func (s *BookService) Borrow(ctx context.Context, bookID, borrowerID string) (string, error) {
	book, err := s.getBorrowableBook(ctx, bookID, borrowerID)
	if err != nil {
		return "", err
	}

	alreadyBorrowed, err := s.repo.HasOpenTransaction(ctx, book.ID)
	if err != nil {
		return "", err
	}
	if alreadyBorrowed {
		return "", apperror.ErrAlreadyBorrowed
	}

	now := time.Now()

	tx := &domain.TransactionHistory{
		ID:             uuid.New().String(),
		BookID:         book.ID,
		UserID:         borrowerID,
		Returned:       false,
		ReturnApproved: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return "", err
	}

	return tx.ID, nil
}

// ReturnBorrowedBook transitions the caller's open loan to pending return.
// Borrower only.
func (s *BookService) ReturnBorrowedBook(ctx context.Context, bookID, borrowerID string) (string, error) {
	if _, err := s.getBorrowableBook(ctx, bookID, borrowerID); err != nil {
		return "", err
	}

	tx, err := s.repo.FindOpenTransaction(ctx, bookID, borrowerID)
	if err != nil {
		return "", err
	}
	if tx == nil {
		return "", apperror.ErrNoOpenLoan
	}

	if err := s.repo.MarkReturned(ctx, tx.ID); err != nil {
		return "", err
	}

	return tx.ID, nil
}

// ApproveReturn closes a pending return. Book owner only. Once approved the
// book is available to borrow again.
func (s *BookService) ApproveReturn(ctx context.Context, bookID, ownerID string) (string, error) {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", apperror.ErrBookNotFound
	}
	if book.OwnerID != ownerID {
		return "", apperror.ErrOperationNotPermitted
	}

	tx, err := s.repo.FindPendingReturn(ctx, bookID, ownerID)
	if err != nil {
		return "", err
	}
	if tx == nil {
		return "", apperror.ErrNoPendingReturn
	}

	if err := s.repo.MarkReturnApproved(ctx, tx.ID); err != nil {
		return "", err
	}

	return tx.ID, nil
}

// getBorrowableBook applies the guards shared by borrow and return: the book
// must exist, be shareable, not archived, and not owned by the caller.
func (s *BookService) getBorrowableBook(ctx context.Context, bookID, callerID string) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperror.ErrBookNotFound
	}
	if book.Archived || !book.Shareable {
		return nil, apperror.ErrOperationNotPermitted
	}
	if book.OwnerID == callerID {
		return nil, apperror.ErrOperationNotPermitted
	}
	return book, nil
}

func (s *BookService) FindAllBorrowedBooks(ctx context.Context, userID string, page, size int) (*common.PageResponse[dto.BorrowedBookResponse], error) {
	books, total, err := s.repo.FindAllBorrowedByUser(ctx, userID, page, size)
	if err != nil {
		return nil, err
	}

	resp := common.NewPageResponse(toBorrowedBookResponses(books), page, size, total)
	return &resp, nil
}

func (s *BookService) FindAllLentBooks(ctx context.Context, ownerID string, page, size int) (*common.PageResponse[dto.BorrowedBookResponse], error) {
	books, total, err := s.repo.FindAllBorrowedFromOwner(ctx, ownerID, page, size)
	if err != nil {
		return nil, err
	}

	resp := common.NewPageResponse(toBorrowedBookResponses(books), page, size, total)
	return &resp, nil
}

func toBookResponse(d domain.BookDetail) dto.BookResponse {
	return dto.BookResponse{
		ID:         d.ID,
		Title:      d.Title,
		AuthorName: d.AuthorName,
		ISBN:       d.ISBN,
		Synopsis:   d.Synopsis,
		Owner:      d.OwnerName,
		BookCover:  d.BookCover,
		Rate:       d.Rate,
		Archived:   d.Archived,
		Shareable:  d.Shareable,
	}
}

func toBookResponses(details []domain.BookDetail) []dto.BookResponse {
	responses := make([]dto.BookResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, toBookResponse(d))
	}
	return responses
}

func toBorrowedBookResponses(books []domain.BorrowedBook) []dto.BorrowedBookResponse {
	responses := make([]dto.BorrowedBookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, dto.BorrowedBookResponse{
			ID:             b.BookID,
			Title:          b.Title,
			AuthorName:     b.AuthorName,
			ISBN:           b.ISBN,
			Rate:           b.Rate,
			Returned:       b.Returned,
			ReturnApproved: b.ReturnApproved,
		})
	}
	return responses
}
