package interfaces

import (
	"context"

	"github.com/sebuszqo/PersonalLedger/internal/finance/application"
	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

// MockTransactionService lets handler tests script each operation.
type MockTransactionService struct {
	CreateTransactionFunc   func(ctx context.Context, transaction *domain.Transaction) error
	GetUserTransactionsFunc func(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetUserTransactionFunc  func(ctx context.Context, id, userID string) (*domain.Transaction, error)
	UpdateTransactionFunc   func(ctx context.Context, id, userID string, patch application.TransactionPatch) (*domain.Transaction, error)
	DeleteTransactionFunc   func(ctx context.Context, id, userID string) error
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	return m.CreateTransactionFunc(ctx, transaction)
}

func (m *MockTransactionService) GetUserTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return m.GetUserTransactionsFunc(ctx, userID, filter)
}

func (m *MockTransactionService) GetUserTransaction(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	return m.GetUserTransactionFunc(ctx, id, userID)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, id, userID string, patch application.TransactionPatch) (*domain.Transaction, error) {
	return m.UpdateTransactionFunc(ctx, id, userID, patch)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, id, userID string) error {
	return m.DeleteTransactionFunc(ctx, id, userID)
}
