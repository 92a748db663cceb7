package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hamoodahalabed/book-network/internal/feedback/domain"
)

// DBTX is the subset of pgxpool.Pool the repository uses. pgxmock satisfies
// it in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO feedbacks (id, book_id, review, comment, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, feedback.ID, feedback.BookID, feedback.Review, feedback.Comment, feedback.CreatedBy, feedback.CreatedAt)
	return err
}

func (r *PostgresRepository) FindAllByBookID(ctx context.Context, bookID string, page, size int) ([]domain.Feedback, int64, error) {
	countQuery := `SELECT COUNT(*) FROM feedbacks WHERE book_id = $1;`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, bookID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feedbacks: %w", err)
	}

	query := `
		SELECT id, book_id, review, comment, created_by, created_at
		FROM feedbacks
		WHERE book_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, bookID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	defer rows.Close()

	var feedbacks []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.BookID, &f.Review, &f.Comment, &f.CreatedBy, &f.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate feedback rows: %w", err)
	}

	return feedbacks, total, nil
}
