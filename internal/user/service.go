package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInternalError = errors.New("internal Server Error")

// User is the stored identity. The credential hash never leaves the server;
// registration is the only write, there is no update or delete.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error) {
	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.createUser(ctx, user); err != nil {
		return nil, ErrInternalError
	}
	return user, nil
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.getUserByEmail(ctx, email)
}

func (s *service) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.repo.getUserByID(ctx, id)
}
