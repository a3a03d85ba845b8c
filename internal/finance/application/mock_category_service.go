package application

import (
	"context"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

// MockCategoryService answers category lookups from a map, with the same
// NotFound-before-Forbidden behaviour as the real category ledger.
type MockCategoryService struct {
	Categories map[string]*domain.Category
}

func (m *MockCategoryService) GetUserCategory(ctx context.Context, id, userID string) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok {
		return nil, financeErrors.NewNotFoundError("category", id)
	}
	if category.UserID != userID {
		return nil, financeErrors.NewForbiddenError("category")
	}
	return category, nil
}
