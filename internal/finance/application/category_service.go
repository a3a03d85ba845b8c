package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategory stamps the owner from the caller's identity; names are not
// unique, so creation always succeeds for valid input.
func (s *CategoryService) CreateCategory(ctx context.Context, name, userID string) (*domain.Category, error) {
	category := &domain.Category{
		ID:     uuid.NewString(),
		Name:   name,
		UserID: userID,
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetUserCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// GetUserCategory resolves existence before ownership: an absent id is
// NotFound, an existing category owned by someone else is Forbidden.
func (s *CategoryService) GetUserCategory(ctx context.Context, id, userID string) (*domain.Category, error) {
	return getOwnedCategory(ctx, s.repo, id, userID, false)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, name, userID string) (*domain.Category, error) {
	var updated *domain.Category
	err := s.repo.InTx(ctx, func(repo domain.CategoryRepository) error {
		category, err := getOwnedCategory(ctx, repo, id, userID, true)
		if err != nil {
			return err
		}

		category.Name = name
		if err := category.Validate(); err != nil {
			return err
		}
		if err := repo.Update(ctx, category); err != nil {
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

// DeleteUserCategory counts referencing transactions before deleting; a
// non-zero count blocks the delete with the exact count in the message.
// Deletion is never cascaded onto transactions. Check and delete share one
// storage transaction so a concurrent insert cannot slip between them.
func (s *CategoryService) DeleteUserCategory(ctx context.Context, id, userID string) error {
	return s.repo.InTx(ctx, func(repo domain.CategoryRepository) error {
		if _, err := getOwnedCategory(ctx, repo, id, userID, true); err != nil {
			return err
		}

		count, err := repo.CountTransactions(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return financeErrors.NewConflictError(fmt.Sprintf(
				"cannot delete this category because it is used by %d transaction(s); remove or reassign them first", count))
		}

		return repo.Delete(ctx, id)
	})
}

func getOwnedCategory(ctx context.Context, repo domain.CategoryRepository, id, userID string, forUpdate bool) (*domain.Category, error) {
	var category *domain.Category
	var err error
	if forUpdate {
		category, err = repo.FindByIDForUpdate(ctx, id)
	} else {
		category, err = repo.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.NewNotFoundError("category", id)
	}
	if err := domain.RequireOwner(category, userID, "category"); err != nil {
		return nil, err
	}
	return category, nil
}
