package supabase

import (
	"context"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/repository"
)

const usersTable = "users"

type userRepository struct {
	client *Client
}

// NewUserRepository returns a record-store-backed implementation of UserRepository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, NewQuery().Eq("id", id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, NewQuery().Eq("email", email))
}

func (r *userRepository) getOne(ctx context.Context, q Query) (*domain.User, error) {
	var users []domain.User
	if err := r.client.Select(ctx, usersTable, q, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &users[0], nil
}

type userInsert struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	record := userInsert{Name: name, Email: email, PasswordHash: passwordHash}

	var created []domain.User
	if err := r.client.Insert(ctx, usersTable, record, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, domain.NewError(domain.ErrCodeUpstream, "failed to create user")
	}
	return &created[0], nil
}
