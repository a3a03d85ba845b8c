package interfaces

import (
	"context"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

// MockCategoryService lets handler tests script each operation.
type MockCategoryService struct {
	CreateCategoryFunc     func(ctx context.Context, name, userID string) (*domain.Category, error)
	GetUserCategoriesFunc  func(ctx context.Context, userID string) ([]domain.Category, error)
	GetUserCategoryFunc    func(ctx context.Context, id, userID string) (*domain.Category, error)
	UpdateCategoryFunc     func(ctx context.Context, id, name, userID string) (*domain.Category, error)
	DeleteUserCategoryFunc func(ctx context.Context, id, userID string) error
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, name, userID string) (*domain.Category, error) {
	return m.CreateCategoryFunc(ctx, name, userID)
}

func (m *MockCategoryService) GetUserCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return m.GetUserCategoriesFunc(ctx, userID)
}

func (m *MockCategoryService) GetUserCategory(ctx context.Context, id, userID string) (*domain.Category, error) {
	return m.GetUserCategoryFunc(ctx, id, userID)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id, name, userID string) (*domain.Category, error) {
	return m.UpdateCategoryFunc(ctx, id, name, userID)
}

func (m *MockCategoryService) DeleteUserCategory(ctx context.Context, id, userID string) error {
	return m.DeleteUserCategoryFunc(ctx, id, userID)
}
