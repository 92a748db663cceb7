package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hamoodahalabed/book-network/internal/book/domain"
	apperror "github.com/hamoodahalabed/book-network/internal/errors"
)

const uniqueViolationCode = "23505"

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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	query := `
		SELECT id, title, author_name, isbn, synopsis, COALESCE(book_cover, ''),
		       archived, shareable, owner_id, created_at, updated_at
		FROM books
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.AuthorName, &b.ISBN, &b.Synopsis, &b.BookCover,
		&b.Archived, &b.Shareable, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *PostgresRepository) GetDetailByID(ctx context.Context, id string) (*domain.BookDetail, error) {
	query := `
		SELECT b.id, b.title, b.author_name, b.isbn, b.synopsis, COALESCE(b.book_cover, ''),
		       b.archived, b.shareable, b.owner_id, b.created_at, b.updated_at,
		       u.firstname || ' ' || u.lastname,
		       COALESCE((SELECT AVG(f.review) FROM feedbacks f WHERE f.book_id = b.id), 0)
		FROM books b
		JOIN users u ON u.id = b.owner_id
		WHERE b.id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var d domain.BookDetail
	err := row.Scan(&d.ID, &d.Title, &d.AuthorName, &d.ISBN, &d.Synopsis, &d.BookCover,
		&d.Archived, &d.Shareable, &d.OwnerID, &d.CreatedAt, &d.UpdatedAt,
		&d.OwnerName, &d.Rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book detail: %w", err)
	}

	return &d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, book *domain.Book) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO books (id, title, author_name, isbn, synopsis, book_cover, archived, shareable, owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, book.ID, book.Title, book.AuthorName, book.ISBN, book.Synopsis, book.BookCover,
		book.Archived, book.Shareable, book.OwnerID, book.CreatedAt, book.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateShareable(ctx context.Context, id string, shareable bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE books SET shareable = $2, updated_at = now() WHERE id = $1
	`, id, shareable)
	return err
}

func (r *PostgresRepository) UpdateArchived(ctx context.Context, id string, archived bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE books SET archived = $2, updated_at = now() WHERE id = $1
	`, id, archived)
	return err
}

const bookDetailColumns = `
	b.id, b.title, b.author_name, b.isbn, b.synopsis, COALESCE(b.book_cover, ''),
	b.archived, b.shareable, b.owner_id, b.created_at, b.updated_at,
	u.firstname || ' ' || u.lastname,
	COALESCE((SELECT AVG(f.review) FROM feedbacks f WHERE f.book_id = b.id), 0)`

func (r *PostgresRepository) FindAllDisplayable(ctx context.Context, viewerID string, page, size int) ([]domain.BookDetail, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM books b
		WHERE b.archived = false AND b.shareable = true AND b.owner_id != $1;
	`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, viewerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count displayable books: %w", err)
	}

	query := `
		SELECT ` + bookDetailColumns + `
		FROM books b
		JOIN users u ON u.id = b.owner_id
		WHERE b.archived = false AND b.shareable = true AND b.owner_id != $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, viewerID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list displayable books: %w", err)
	}
	defer rows.Close()

	books, err := scanBookDetails(rows)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *PostgresRepository) FindAllByOwner(ctx context.Context, ownerID string, page, size int) ([]domain.BookDetail, int64, error) {
	countQuery := `SELECT COUNT(*) FROM books b WHERE b.owner_id = $1;`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count owned books: %w", err)
	}

	query := `
		SELECT ` + bookDetailColumns + `
		FROM books b
		JOIN users u ON u.id = b.owner_id
		WHERE b.owner_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, ownerID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list owned books: %w", err)
	}
	defer rows.Close()

	books, err := scanBookDetails(rows)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func scanBookDetails(rows pgx.Rows) ([]domain.BookDetail, error) {
	var books []domain.BookDetail
	for rows.Next() {
		var d domain.BookDetail
		err := rows.Scan(&d.ID, &d.Title, &d.AuthorName, &d.ISBN, &d.Synopsis, &d.BookCover,
			&d.Archived, &d.Shareable, &d.OwnerID, &d.CreatedAt, &d.UpdatedAt,
			&d.OwnerName, &d.Rate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book rows: %w", err)
	}
	return books, nil
}

func (r *PostgresRepository) HasOpenTransaction(ctx context.Context, bookID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM book_transaction_histories
			WHERE book_id = $1 AND returned = false
		);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check open transaction: %w", err)
	}
	return exists, nil
}

// CreateTransaction inserts an open loan. The uniq_open_loan partial index
// rejects a second open loan for the same book, which surfaces here as
// ErrAlreadyBorrowed even when two borrowers race past the availability
// check.
func (r *PostgresRepository) CreateTransaction(ctx context.Context, tx *domain.TransactionHistory) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO book_transaction_histories (id, book_id, user_id, returned, return_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tx.ID, tx.BookID, tx.UserID, tx.Returned, tx.ReturnApproved, tx.CreatedAt, tx.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.ErrAlreadyBorrowed
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindOpenTransaction(ctx context.Context, bookID, borrowerID string) (*domain.TransactionHistory, error) {
	query := `
		SELECT id, book_id, user_id, returned, return_approved, created_at, updated_at
		FROM book_transaction_histories
		WHERE book_id = $1 AND user_id = $2 AND returned = false AND return_approved = false
		LIMIT 1;
	`
	return r.scanTransaction(r.db.QueryRow(ctx, query, bookID, borrowerID))
}

func (r *PostgresRepository) FindPendingReturn(ctx context.Context, bookID, ownerID string) (*domain.TransactionHistory, error) {
	query := `
		SELECT h.id, h.book_id, h.user_id, h.returned, h.return_approved, h.created_at, h.updated_at
		FROM book_transaction_histories h
		JOIN books b ON b.id = h.book_id
		WHERE h.book_id = $1 AND b.owner_id = $2 AND h.returned = true AND h.return_approved = false
		LIMIT 1;
	`
	return r.scanTransaction(r.db.QueryRow(ctx, query, bookID, ownerID))
}

func (r *PostgresRepository) scanTransaction(row pgx.Row) (*domain.TransactionHistory, error) {
	var tx domain.TransactionHistory
	err := row.Scan(&tx.ID, &tx.BookID, &tx.UserID, &tx.Returned, &tx.ReturnApproved, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *PostgresRepository) MarkReturned(ctx context.Context, txID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE book_transaction_histories SET returned = true, updated_at = now() WHERE id = $1
	`, txID)
	return err
}

func (r *PostgresRepository) MarkReturnApproved(ctx context.Context, txID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE book_transaction_histories SET return_approved = true, updated_at = now() WHERE id = $1
	`, txID)
	return err
}

const borrowedBookColumns = `
	b.id, b.title, b.author_name, b.isbn,
	COALESCE((SELECT AVG(f.review) FROM feedbacks f WHERE f.book_id = b.id), 0),
	h.returned, h.return_approved`

func (r *PostgresRepository) FindAllBorrowedByUser(ctx context.Context, userID string, page, size int) ([]domain.BorrowedBook, int64, error) {
	countQuery := `SELECT COUNT(*) FROM book_transaction_histories h WHERE h.user_id = $1;`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count borrowed books: %w", err)
	}

	query := `
		SELECT ` + borrowedBookColumns + `
		FROM book_transaction_histories h
		JOIN books b ON b.id = h.book_id
		WHERE h.user_id = $1
		ORDER BY h.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list borrowed books: %w", err)
	}
	defer rows.Close()

	books, err := scanBorrowedBooks(rows)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *PostgresRepository) FindAllBorrowedFromOwner(ctx context.Context, ownerID string, page, size int) ([]domain.BorrowedBook, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM book_transaction_histories h
		JOIN books b ON b.id = h.book_id
		WHERE b.owner_id = $1;
	`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count lent books: %w", err)
	}

	query := `
		SELECT ` + borrowedBookColumns + `
		FROM book_transaction_histories h
		JOIN books b ON b.id = h.book_id
		WHERE b.owner_id = $1
		ORDER BY h.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, ownerID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list lent books: %w", err)
	}
	defer rows.Close()

	books, err := scanBorrowedBooks(rows)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func scanBorrowedBooks(rows pgx.Rows) ([]domain.BorrowedBook, error) {
	var books []domain.BorrowedBook
	for rows.Next() {
		var b domain.BorrowedBook
		err := rows.Scan(&b.BookID, &b.Title, &b.AuthorName, &b.ISBN, &b.Rate, &b.Returned, &b.ReturnApproved)
		if err != nil {
			return nil, fmt.Errorf("failed to scan borrowed book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate borrowed book rows: %w", err)
	}
	return books, nil
}
