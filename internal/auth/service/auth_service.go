package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamoodahalabed/book-network/internal/auth/domain"
	"github.com/hamoodahalabed/book-network/internal/auth/dto"
	autherror "github.com/hamoodahalabed/book-network/internal/errors"
	"github.com/hamoodahalabed/book-network/internal/mail"
	"github.com/hamoodahalabed/book-network/pkg/constant"
)

type AuthService struct {
	repo          domain.UserRepository
	tokenService  TokenGenerator
	mailer        mail.Dispatcher
	activationURL string
}

func NewAuthService(repo domain.UserRepository, tokenService TokenGenerator, mailer mail.Dispatcher, activationURL string) *AuthService {
	return &AuthService{
		repo:          repo,
		tokenService:  tokenService,
		mailer:        mailer,
		activationURL: activationURL,
	}
}

// Register creates a disabled user with the default role and dispatches an
// activation email. The user row is kept even when the email cannot be
// delivered; the caller can trigger a re-send through the activation flow.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	role, err := s.repo.GetRoleByName(ctx, constant.DefaultUserRoleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, autherror.ErrRoleNotConfigured
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:            uuid.New().String(),
		Firstname:     input.Firstname,
		Lastname:      input.Lastname,
		Email:         input.Email,
		PasswordHash:  string(hashedPassword),
		Enabled:       false,
		AccountLocked: false,
		RoleID:        role.ID,
		RoleName:      role.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sendValidationEmail(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the credentials and issues a signed token embedding
// the user's display name.
func (s *AuthService) Authenticate(ctx context.Context, input dto.AuthenticateInput) (*dto.AuthenticationResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if user.AccountLocked {
		return nil, autherror.ErrAccountLocked
	}

	if !user.Enabled {
		return nil, autherror.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrBadCredentials
	}

	token, err := s.tokenService.Generate(user.ID, user.Email, user.FullName())
	if err != nil {
		return nil, err
	}

	return &dto.AuthenticationResponse{Token: token}, nil
}

// ActivateAccount consumes the activation code. An expired, unconsumed code
// triggers issuance of a replacement before failing, so the caller can retry
// with the fresh code from their inbox.
func (s *AuthService) ActivateAccount(ctx context.Context, code string) error {
	token, err := s.repo.GetActivationToken(ctx, code)
	if err != nil {
		return err
	}
	if token == nil || token.ValidatedAt != nil {
		return autherror.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		user, err := s.repo.GetByID(ctx, token.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return autherror.ErrUserNotFound
		}

		if err := s.sendValidationEmail(ctx, user); err != nil {
			return err
		}

		return autherror.ErrTokenExpired
	}

	user, err := s.repo.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if err := s.repo.SetEnabled(ctx, user.ID, true); err != nil {
		return err
	}

	return s.repo.MarkTokenValidated(ctx, token.ID)
}

func (s *AuthService) sendValidationEmail(ctx context.Context, user *domain.User) error {
	code, err := s.generateAndSaveActivationToken(ctx, user)
	if err != nil {
		return err
	}

	err = s.mailer.Send(ctx, mail.Message{
		To:             user.Email,
		Username:       user.FullName(),
		Template:       mail.TemplateActivateAccount,
		ActivationURL:  s.activationURL,
		ActivationCode: code,
		Subject:        "Account activation",
	})
	if err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("activation email dispatch failed")
		return autherror.ErrMailDelivery
	}

	return nil
}

// generateAndSaveActivationToken persists a fresh code. Codes are unique
// across all historical rows, so a draw can collide with an old token;
// collisions just trigger a redraw.
func (s *AuthService) generateAndSaveActivationToken(ctx context.Context, user *domain.User) (string, error) {
	var lastErr error

	for attempt := 0; attempt < constant.ActivationCodeMaxAttempts; attempt++ {
		code, err := GenerateActivationCode(constant.ActivationCodeLength)
		if err != nil {
			return "", err
		}

		now := time.Now()

		token := &domain.ActivationToken{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Token:     code,
			CreatedAt: now,
			ExpiresAt: now.Add(constant.ActivationTokenTTLMinutes * time.Minute),
		}

		err = s.repo.StoreActivationToken(ctx, token)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, autherror.ErrDuplicateCode) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}
