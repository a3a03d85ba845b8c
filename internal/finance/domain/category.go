package domain

import (
	"context"
	"time"

	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) OwnerID() string {
	return c.UserID
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return financeErrors.NewValidationError("Category name must not be empty")
	}
	return nil
}

// CategoryRepository persists categories. FindByID returns (nil, nil) when no
// category with the id exists; the service turns that into NotFound.
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByUser(ctx context.Context, userID string) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	// FindByIDForUpdate locks the row for the rest of the surrounding
	// storage transaction. Only meaningful inside InTx.
	FindByIDForUpdate(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	CountTransactions(ctx context.Context, categoryID string) (int64, error)
	// InTx runs fn against a repository bound to a single storage
	// transaction, committing on nil and rolling back on error.
	InTx(ctx context.Context, fn func(repo CategoryRepository) error) error
}
