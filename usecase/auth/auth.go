package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/pkg/password"
	"github.com/Pawankumarhr/prime-trade/pkg/token"
	"github.com/Pawankumarhr/prime-trade/repository"
)

type UseCase struct {
	users  repository.UserRepository
	codec  *token.Codec
	logger *zap.Logger
}

func New(users repository.UserRepository, codec *token.Codec, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		codec:  codec,
		logger: logger,
	}
}

// Signup registers a new user and issues a session token.
func (uc *UseCase) Signup(ctx context.Context, name, email, plainPassword string) (string, *domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || plainPassword == "" || !validEmail(email) {
		return "", nil, domain.NewError(domain.ErrCodeInvalid, "name, email and password are required")
	}

	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		uc.logger.Warn("signup rejected, email exists", zap.String("email", email))
		return "", nil, domain.ErrEmailTaken
	} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return "", nil, err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "internal error", err)
	}

	user, err := uc.users.Create(ctx, name, email, hash)
	if err != nil {
		return "", nil, err
	}

	signed, err := uc.codec.Issue(user.ID)
	if err != nil {
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "internal error", err)
	}

	uc.logger.Info("signup successful", zap.String("user_id", user.ID), zap.String("email", email))
	return signed, user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, email, plainPassword string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			uc.logger.Warn("login failed, unknown email", zap.String("email", email))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		uc.logger.Warn("login failed, wrong password", zap.String("email", email))
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := uc.codec.Issue(user.ID)
	if err != nil {
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "internal error", err)
	}

	uc.logger.Info("login successful", zap.String("user_id", user.ID))
	return signed, user, nil
}

// Me returns the authenticated user's public fields.
func (uc *UseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
