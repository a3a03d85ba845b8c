package infrastructure

import (
	"context"
	"sort"
	"time"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

// MockTransactionRepository mirrors the SQL repository's read semantics in
// memory: AND-combined filters, inclusive date range, date-descending order,
// 1-indexed pagination, category attached on reads.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Categories   map[string]domain.Category
	FailWith     error
}

func (m *MockTransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	stored := *transaction
	stored.Category = nil
	m.Transactions = append(m.Transactions, stored)
	return nil
}

func (m *MockTransactionRepository) FindByUser(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	var matched []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.CategoryID != "" && transaction.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.HasDateRange() {
			if transaction.Date.Before(*filter.StartDate) || transaction.Date.After(*filter.EndDate) {
				continue
			}
		}
		matched = append(matched, m.withCategory(transaction))
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	if filter.HasPagination() {
		skip := (filter.Page - 1) * filter.PageSize
		if skip >= len(matched) {
			return nil, nil
		}
		end := skip + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[skip:end]
	}

	return matched, nil
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			transaction := m.withCategory(m.Transactions[i])
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Transaction, error) {
	return m.FindByID(ctx, id)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			stored := *transaction
			stored.Category = nil
			stored.UpdatedAt = time.Now()
			stored.CreatedAt = m.Transactions[i].CreatedAt
			m.Transactions[i] = stored
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) InTx(ctx context.Context, fn func(repo domain.TransactionRepository) error) error {
	return fn(m)
}

func (m *MockTransactionRepository) withCategory(transaction domain.Transaction) domain.Transaction {
	if category, ok := m.Categories[transaction.CategoryID]; ok {
		transaction.Category = &category
	}
	return transaction
}
