package infrastructure

import (
	"context"
	"sort"
	"time"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

// MockCategoryRepository is an in-memory stand-in used by service tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	RefCounts  map[string]int64
	FailWith   error
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Category, error) {
	return m.FindByID(ctx, id)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i].Name = category.Name
			m.Categories[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) CountTransactions(ctx context.Context, categoryID string) (int64, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return m.RefCounts[categoryID], nil
}

func (m *MockCategoryRepository) InTx(ctx context.Context, fn func(repo domain.CategoryRepository) error) error {
	return fn(m)
}
