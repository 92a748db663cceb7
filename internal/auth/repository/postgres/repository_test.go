package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamoodahalabed/book-network/internal/auth/domain"
	repo "github.com/hamoodahalabed/book-network/internal/auth/repository/postgres"
	apperror "github.com/hamoodahalabed/book-network/internal/errors"
)

var userColumns = []string{
	"id", "firstname", "lastname", "email", "password_hash",
	"enabled", "account_locked", "role_id", "name", "created_at", "updated_at",
}

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	userEmail := "ali@example.com"
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.firstname").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Ali", "Hassan", userEmail, "hash",
					true, false, "role-1", "USER", time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "USER", user.RoleName)
		assert.True(t, user.Enabled)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.firstname").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.firstname").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

// TestGetByID covers the GetByID repository method.
func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.firstname").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Ali", "Hassan", "ali@example.com", "hash",
					false, false, "role-1", "USER", time.Now(), time.Now()))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, "ali@example.com", user.Email)
		assert.False(t, user.Enabled)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.firstname").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewPostgresRepository(mock)
	userToCreate := &domain.User{
		ID:           "user-123",
		Firstname:    "Ali",
		Lastname:     "Hassan",
		Email:        "new@example.com",
		PasswordHash: "new-hash",
		RoleID:       "role-1",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.Firstname, userToCreate.Lastname,
				userToCreate.Email, userToCreate.PasswordHash, userToCreate.Enabled,
				userToCreate.AccountLocked, userToCreate.RoleID,
				userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, userToCreate)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.Firstname, userToCreate.Lastname,
				userToCreate.Email, userToCreate.PasswordHash, userToCreate.Enabled,
				userToCreate.AccountLocked, userToCreate.RoleID,
				userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, userToCreate)
		assert.Error(t, err)
	})
}

// TestSetEnabled covers the SetEnabled repository method.
func TestSetEnabled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET enabled").
			WithArgs("user-123", true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := r.SetEnabled(ctx, "user-123", true)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET enabled").
			WithArgs("user-123", true).
			WillReturnError(fmt.Errorf("db error"))

		err := r.SetEnabled(ctx, "user-123", true)
		assert.Error(t, err)
	})
}

// TestGetRoleByName covers the GetRoleByName repository method.
func TestGetRoleByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM roles").
			WithArgs("USER").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow("role-1", "USER"))

		role, err := r.GetRoleByName(ctx, "USER")
		require.NoError(t, err)
		assert.Equal(t, "role-1", role.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM roles").
			WithArgs("ADMIN").
			WillReturnError(pgx.ErrNoRows)

		role, err := r.GetRoleByName(ctx, "ADMIN")
		require.NoError(t, err)
		assert.Nil(t, role)
	})
}

// TestStoreActivationToken covers the StoreActivationToken method.
func TestStoreActivationToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	token := &domain.ActivationToken{
		ID:        "at-123",
		UserID:    "user-123",
		Token:     "482915",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO activation_tokens").
			WithArgs(token.ID, token.UserID, token.Token, token.CreatedAt, token.ExpiresAt, token.ValidatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.StoreActivationToken(ctx, token)
		assert.NoError(t, err)
	})

	t.Run("code collision maps to duplicate code", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO activation_tokens").
			WithArgs(token.ID, token.UserID, token.Token, token.CreatedAt, token.ExpiresAt, token.ValidatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "activation_tokens_token_key"})

		err := r.StoreActivationToken(ctx, token)
		assert.Equal(t, apperror.ErrDuplicateCode, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO activation_tokens").
			WithArgs(token.ID, token.UserID, token.Token, token.CreatedAt, token.ExpiresAt, token.ValidatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.StoreActivationToken(ctx, token)
		assert.Error(t, err)
		assert.NotEqual(t, apperror.ErrDuplicateCode, err)
	})
}

// TestGetActivationToken covers the GetActivationToken method.
func TestGetActivationToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	columns := []string{"id", "user_id", "token", "created_at", "expires_at", "validated_at"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("482915").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("at-123", "user-123", "482915", time.Now(), time.Now().Add(5*time.Minute), nil))

		token, err := r.GetActivationToken(ctx, "482915")
		require.NoError(t, err)
		assert.Equal(t, "at-123", token.ID)
		assert.Nil(t, token.ValidatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("000000").
			WillReturnError(pgx.ErrNoRows)

		token, err := r.GetActivationToken(ctx, "000000")
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}

// TestMarkTokenValidated covers the MarkTokenValidated method.
func TestMarkTokenValidated(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE activation_tokens SET validated_at").
			WithArgs("at-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := r.MarkTokenValidated(ctx, "at-123")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE activation_tokens SET validated_at").
			WithArgs("at-123").
			WillReturnError(fmt.Errorf("db error"))

		err := r.MarkTokenValidated(ctx, "at-123")
		assert.Error(t, err)
	})
}
