package domain

import (
	"context"
	"time"

	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

type Transaction struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Amount     Cents     `json:"amount"`
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	Category   *Category `json:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (t *Transaction) OwnerID() string {
	return t.UserID
}

func (t *Transaction) Validate() error {
	if t.Title == "" {
		return financeErrors.NewValidationError("Title must not be empty")
	}
	if !IsValidTransactionType(t.Type) {
		return financeErrors.ErrInvalidTransactionType
	}
	if t.Amount < 0 {
		return financeErrors.NewValidationError("Amount must not be negative")
	}
	if t.Date.IsZero() {
		return financeErrors.NewValidationError("Date is required")
	}
	if t.CategoryID == "" {
		return financeErrors.NewValidationError("Category is required")
	}
	return nil
}

// TransactionFilter narrows FindByUser. Every field is optional and the
// recognized ones combine with AND. The date range applies only when both
// bounds are set; pagination applies only when both page and page size are
// set (page is 1-indexed).
type TransactionFilter struct {
	CategoryID string
	Type       string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	PageSize   int
}

func (f TransactionFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

func (f TransactionFilter) HasPagination() bool {
	return f.Page > 0 && f.PageSize > 0
}

// TransactionRepository persists transactions. Reads return the owning
// category eagerly joined, ordered by date descending. FindByID returns
// (nil, nil) when the id does not exist.
type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	FindByUser(ctx context.Context, userID string, filter TransactionFilter) ([]Transaction, error)
	FindByID(ctx context.Context, id string) (*Transaction, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id string) error
	InTx(ctx context.Context, fn func(repo TransactionRepository) error) error
}
