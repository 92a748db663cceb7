package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	bookdomain "github.com/hamoodahalabed/book-network/internal/book/domain"
	"github.com/hamoodahalabed/book-network/internal/common"
	apperror "github.com/hamoodahalabed/book-network/internal/errors"
	"github.com/hamoodahalabed/book-network/internal/feedback/domain"
	"github.com/hamoodahalabed/book-network/internal/feedback/dto"
)

type FeedbackService struct {
	repo     domain.FeedbackRepository
	bookRepo bookdomain.BookRepository
}

func NewFeedbackService(repo domain.FeedbackRepository, bookRepo bookdomain.BookRepository) *FeedbackService {
	return &FeedbackService{repo: repo, bookRepo: bookRepo}
}

// Save attaches a feedback row to the book. A user may review the same book
// more than once; no uniqueness is enforced.
func (s *FeedbackService) Save(ctx context.Context, input dto.FeedbackRequest, authorID string) (string, error) {
	book, err := s.bookRepo.GetByID(ctx, input.BookID)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", apperror.ErrBookNotFound
	}
	if book.Archived || !book.Shareable {
		return "", apperror.ErrOperationNotPermitted
	}
	if book.OwnerID == authorID {
		return "", apperror.ErrOperationNotPermitted
	}

	feedback := &domain.Feedback{
		ID:        uuid.New().String(),
		BookID:    input.BookID,
		Review:    input.Note,
		Comment:   input.Comment,
		CreatedBy: authorID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		return "", err
	}

	return feedback.ID, nil
}

// FindAllByBook lists a book's feedback with a per-viewer ownFeedback flag.
func (s *FeedbackService) FindAllByBook(ctx context.Context, bookID, viewerID string, page, size int) (*common.PageResponse[dto.FeedbackResponse], error) {
	feedbacks, total, err := s.repo.FindAllByBookID(ctx, bookID, page, size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, dto.FeedbackResponse{
			Note:        f.Review,
			Comment:     f.Comment,
			OwnFeedback: f.CreatedBy == viewerID,
		})
	}

	resp := common.NewPageResponse(responses, page, size, total)
	return &resp, nil
}
