package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/hamoodahalabed/book-network/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetEnabled(ctx context.Context, userID string, enabled bool) error
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	StoreActivationToken(ctx context.Context, token *ActivationToken) error
	GetActivationToken(ctx context.Context, code string) (*ActivationToken, error)
	MarkTokenValidated(ctx context.Context, tokenID string) error
}
