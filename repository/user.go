package repository

import (
	"context"

	"github.com/Pawankumarhr/prime-trade/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
}
