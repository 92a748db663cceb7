package domain

//go:generate mockgen -destination=../../mocks/mock_feedback_repository.go -package=mocks github.com/hamoodahalabed/book-network/internal/feedback/domain FeedbackRepository

import "context"

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *Feedback) error
	FindAllByBookID(ctx context.Context, bookID string, page, size int) ([]Feedback, int64, error)
}
