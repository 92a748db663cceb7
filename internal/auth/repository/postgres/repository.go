package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hamoodahalabed/book-network/internal/auth/domain"
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

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT u.id, u.firstname, u.lastname, u.email, u.password_hash,
		       u.enabled, u.account_locked, u.role_id, r.name,
		       u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.PasswordHash,
		&user.Enabled, &user.AccountLocked, &user.RoleID, &user.RoleName,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT u.id, u.firstname, u.lastname, u.email, u.password_hash,
		       u.enabled, u.account_locked, u.role_id, r.name,
		       u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.PasswordHash,
		&user.Enabled, &user.AccountLocked, &user.RoleID, &user.RoleName,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, firstname, lastname, email, password_hash, enabled, account_locked, role_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, user.ID, user.Firstname, user.Lastname, user.Email, user.PasswordHash,
		user.Enabled, user.AccountLocked, user.RoleID, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET enabled = $2, updated_at = now() WHERE id = $1
	`, userID, enabled)
	return err
}

func (r *PostgresRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1 LIMIT 1;`, name)

	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return &role, nil
}

// StoreActivationToken inserts the token row. The token column is unique
// across all historical rows, so a code collision surfaces as ErrDuplicateCode
// and the caller regenerates.
func (r *PostgresRepository) StoreActivationToken(ctx context.Context, token *domain.ActivationToken) error {
	query := `INSERT INTO activation_tokens (id, user_id, token, created_at, expires_at, validated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		token.ID, token.UserID, token.Token, token.CreatedAt, token.ExpiresAt, token.ValidatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.ErrDuplicateCode
		}
		return fmt.Errorf("failed to store activation token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetActivationToken(ctx context.Context, code string) (*domain.ActivationToken, error) {
	query := `
		SELECT id, user_id, token, created_at, expires_at, validated_at
		FROM activation_tokens
		WHERE token = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, code)

	var token domain.ActivationToken
	err := row.Scan(&token.ID, &token.UserID, &token.Token, &token.CreatedAt, &token.ExpiresAt, &token.ValidatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activation token: %w", err)
	}

	return &token, nil
}

func (r *PostgresRepository) MarkTokenValidated(ctx context.Context, tokenID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE activation_tokens SET validated_at = now() WHERE id = $1
	`, tokenID)
	return err
}
