package application

import (
	"context"
	"testing"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
	"github.com/sebuszqo/PersonalLedger/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func TestCreateCategory_StampsOwner(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category, err := service.CreateCategory(context.Background(), "Food", "user-a")
	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "user-a", category.UserID)
	assert.Len(t, repo.Categories, 1)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	_, err := service.CreateCategory(context.Background(), "", "user-a")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetUserCategories_SortedByName(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "c1", Name: "Transport", UserID: "user-a"},
			{ID: "c2", Name: "Food", UserID: "user-a"},
			{ID: "c3", Name: "Rent", UserID: "user-b"},
		},
	}
	service := NewCategoryService(repo)

	categories, err := service.GetUserCategories(context.Background(), "user-a")
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Transport", categories[1].Name)
}

func TestGetUserCategories_EmptyIsNotNil(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	categories, err := service.GetUserCategories(context.Background(), "user-a")
	assert.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetUserCategory_NotFoundBeforeForbidden(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "c1", Name: "Food", UserID: "user-a"}},
	}
	service := NewCategoryService(repo)

	_, err := service.GetUserCategory(context.Background(), "missing", "user-a")
	assert.True(t, financeErrors.IsNotFoundError(err))

	_, err = service.GetUserCategory(context.Background(), "c1", "user-b")
	assert.True(t, financeErrors.IsForbiddenError(err))

	category, err := service.GetUserCategory(context.Background(), "c1", "user-a")
	assert.NoError(t, err)
	assert.Equal(t, "Food", category.Name)
}

func TestUpdateCategory_OwnershipChecks(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "c1", Name: "Food", UserID: "user-a"}},
	}
	service := NewCategoryService(repo)

	_, err := service.UpdateCategory(context.Background(), "missing", "Groceries", "user-a")
	assert.True(t, financeErrors.IsNotFoundError(err))

	_, err = service.UpdateCategory(context.Background(), "c1", "Groceries", "user-b")
	assert.True(t, financeErrors.IsForbiddenError(err))
	assert.Equal(t, "Food", repo.Categories[0].Name)

	updated, err := service.UpdateCategory(context.Background(), "c1", "Groceries", "user-a")
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)
}

func TestDeleteUserCategory_BlockedWhileReferenced(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "c1", Name: "Food", UserID: "user-a"}},
		RefCounts:  map[string]int64{"c1": 1},
	}
	service := NewCategoryService(repo)

	err := service.DeleteUserCategory(context.Background(), "c1", "user-a")
	assert.True(t, financeErrors.IsConflictError(err))
	assert.Contains(t, err.Error(), "1 transaction(s)")
	assert.Len(t, repo.Categories, 1)

	// once nothing references it, the delete goes through
	repo.RefCounts["c1"] = 0
	err = service.DeleteUserCategory(context.Background(), "c1", "user-a")
	assert.NoError(t, err)
	assert.Empty(t, repo.Categories)
}

func TestDeleteUserCategory_OwnershipChecks(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "c1", Name: "Food", UserID: "user-a"}},
	}
	service := NewCategoryService(repo)

	err := service.DeleteUserCategory(context.Background(), "missing", "user-a")
	assert.True(t, financeErrors.IsNotFoundError(err))

	err = service.DeleteUserCategory(context.Background(), "c1", "user-b")
	assert.True(t, financeErrors.IsForbiddenError(err))
	assert.Len(t, repo.Categories, 1)
}
