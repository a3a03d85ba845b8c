package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

// CategoryServiceInterface is what the transaction ledger needs from the
// category ledger: one call that resolves existence and ownership in a
// single step.
type CategoryServiceInterface interface {
	GetUserCategory(ctx context.Context, id, userID string) (*domain.Category, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

// TransactionPatch carries the fields of a partial update; nil fields keep
// their stored values.
type TransactionPatch struct {
	Title      *string
	Amount     *domain.Cents
	Type       *string
	Date       *time.Time
	CategoryID *string
}

// CreateTransaction validates that the referenced category exists and is
// owned by the same user before persisting. The category check goes through
// the category ledger; the database foreign key is only a backstop.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	if err := transaction.Validate(); err != nil {
		return err
	}

	category, err := s.categoryService.GetUserCategory(ctx, transaction.CategoryID, transaction.UserID)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, transaction); err != nil {
		return err
	}
	transaction.Category = category
	return nil
}

func (s *TransactionService) GetUserTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Type != "" && !domain.IsValidTransactionType(filter.Type) {
		return nil, financeErrors.ErrInvalidTransactionType
	}

	transactions, err := s.repo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetUserTransaction(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	return getOwnedTransaction(ctx, s.repo, id, userID, false)
}

// UpdateTransaction re-runs the ownership check, re-validates the category
// when the patch moves the transaction to a different one, then applies the
// patch and returns the refreshed entity. The whole sequence runs in one
// storage transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id, userID string, patch TransactionPatch) (*domain.Transaction, error) {
	var updated *domain.Transaction
	err := s.repo.InTx(ctx, func(repo domain.TransactionRepository) error {
		transaction, err := getOwnedTransaction(ctx, repo, id, userID, true)
		if err != nil {
			return err
		}

		if patch.CategoryID != nil {
			if _, err := s.categoryService.GetUserCategory(ctx, *patch.CategoryID, userID); err != nil {
				return err
			}
			transaction.CategoryID = *patch.CategoryID
		}
		if patch.Title != nil {
			transaction.Title = *patch.Title
		}
		if patch.Amount != nil {
			transaction.Amount = *patch.Amount
		}
		if patch.Type != nil {
			transaction.Type = *patch.Type
		}
		if patch.Date != nil {
			transaction.Date = *patch.Date
		}
		if err := transaction.Validate(); err != nil {
			return err
		}
		if err := repo.Update(ctx, transaction); err != nil {
			return err
		}

		updated, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction re-validates ownership and deletes unconditionally;
// nothing references a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id, userID string) error {
	return s.repo.InTx(ctx, func(repo domain.TransactionRepository) error {
		if _, err := getOwnedTransaction(ctx, repo, id, userID, true); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func getOwnedTransaction(ctx context.Context, repo domain.TransactionRepository, id, userID string, forUpdate bool) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	var err error
	if forUpdate {
		transaction, err = repo.FindByIDForUpdate(ctx, id)
	} else {
		transaction, err = repo.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.NewNotFoundError("transaction", id)
	}
	if err := domain.RequireOwner(transaction, userID, "transaction"); err != nil {
		return nil, err
	}
	return transaction, nil
}
