package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
	"github.com/sebuszqo/PersonalLedger/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTransactionFixture() (*TransactionService, *infrastructure.MockTransactionRepository) {
	categories := &MockCategoryService{
		Categories: map[string]*domain.Category{
			"cat-food": {ID: "cat-food", Name: "Food", UserID: "user-a"},
			"cat-rent": {ID: "cat-rent", Name: "Rent", UserID: "user-a"},
			"cat-b":    {ID: "cat-b", Name: "Other", UserID: "user-b"},
		},
	}
	repo := &infrastructure.MockTransactionRepository{
		Categories: map[string]domain.Category{
			"cat-food": {ID: "cat-food", Name: "Food", UserID: "user-a"},
			"cat-rent": {ID: "cat-rent", Name: "Rent", UserID: "user-a"},
		},
	}
	return NewTransactionService(repo, categories), repo
}

func TestCreateTransaction_ValidatesCategoryOwnership(t *testing.T) {
	service, repo := newTransactionFixture()

	transaction := &domain.Transaction{
		Title:      "Lunch",
		Amount:     domain.Cents(2000),
		Type:       domain.TypeExpense,
		Date:       date(2025, time.May, 10),
		UserID:     "user-a",
		CategoryID: "cat-food",
	}
	err := service.CreateTransaction(context.Background(), transaction)
	assert.NoError(t, err)
	assert.NotEmpty(t, transaction.ID)
	assert.NotNil(t, transaction.Category)
	assert.Len(t, repo.Transactions, 1)

	// absent category
	missing := &domain.Transaction{
		Title: "Lunch", Amount: 100, Type: domain.TypeExpense,
		Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "nope",
	}
	err = service.CreateTransaction(context.Background(), missing)
	assert.True(t, financeErrors.IsNotFoundError(err))

	// someone else's category
	foreign := &domain.Transaction{
		Title: "Lunch", Amount: 100, Type: domain.TypeExpense,
		Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "cat-b",
	}
	err = service.CreateTransaction(context.Background(), foreign)
	assert.True(t, financeErrors.IsForbiddenError(err))

	assert.Len(t, repo.Transactions, 1)
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	service, _ := newTransactionFixture()

	err := service.CreateTransaction(context.Background(), &domain.Transaction{
		Title: "Lunch", Amount: 100, Type: "TRANSFER",
		Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "cat-food",
	})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetUserTransaction_NotFoundBeforeForbidden(t *testing.T) {
	service, repo := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: "t1", Title: "Lunch", Amount: 2000, Type: domain.TypeExpense,
			Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "cat-food"},
	}

	_, err := service.GetUserTransaction(context.Background(), "missing", "user-b")
	assert.True(t, financeErrors.IsNotFoundError(err))

	_, err = service.GetUserTransaction(context.Background(), "t1", "user-b")
	assert.True(t, financeErrors.IsForbiddenError(err))

	transaction, err := service.GetUserTransaction(context.Background(), "t1", "user-a")
	assert.NoError(t, err)
	assert.Equal(t, "Lunch", transaction.Title)
	assert.NotNil(t, transaction.Category)
	assert.Equal(t, "Food", transaction.Category.Name)
}

func TestGetUserTransactions_FiltersCombineWithAND(t *testing.T) {
	service, repo := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: "t1", Type: domain.TypeExpense, CategoryID: "cat-food", UserID: "user-a", Date: date(2025, time.May, 1)},
		{ID: "t2", Type: domain.TypeIncome, CategoryID: "cat-food", UserID: "user-a", Date: date(2025, time.May, 2)},
		{ID: "t3", Type: domain.TypeExpense, CategoryID: "cat-rent", UserID: "user-a", Date: date(2025, time.May, 3)},
		{ID: "t4", Type: domain.TypeExpense, CategoryID: "cat-food", UserID: "user-a", Date: date(2025, time.June, 1)},
		{ID: "t5", Type: domain.TypeExpense, CategoryID: "cat-food", UserID: "user-b", Date: date(2025, time.May, 4)},
	}

	start, end := date(2025, time.May, 1), date(2025, time.May, 31)
	transactions, err := service.GetUserTransactions(context.Background(), "user-a", domain.TransactionFilter{
		CategoryID: "cat-food",
		Type:       domain.TypeExpense,
		StartDate:  &start,
		EndDate:    &end,
	})
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "t1", transactions[0].ID)
}

func TestGetUserTransactions_DateDescendingWithCategory(t *testing.T) {
	service, repo := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: "t1", UserID: "user-a", CategoryID: "cat-food", Type: domain.TypeExpense, Date: date(2025, time.May, 1)},
		{ID: "t2", UserID: "user-a", CategoryID: "cat-food", Type: domain.TypeExpense, Date: date(2025, time.May, 20)},
		{ID: "t3", UserID: "user-a", CategoryID: "cat-food", Type: domain.TypeExpense, Date: date(2025, time.May, 10)},
	}

	transactions, err := service.GetUserTransactions(context.Background(), "user-a", domain.TransactionFilter{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2", "t3", "t1"}, []string{transactions[0].ID, transactions[1].ID, transactions[2].ID})
	for _, transaction := range transactions {
		assert.NotNil(t, transaction.Category)
	}
}

func TestGetUserTransactions_Pagination(t *testing.T) {
	service, repo := newTransactionFixture()
	for i := 0; i < 25; i++ {
		repo.Transactions = append(repo.Transactions, domain.Transaction{
			ID:         fmt.Sprintf("t%02d", i),
			UserID:     "user-a",
			CategoryID: "cat-food",
			Type:       domain.TypeExpense,
			Date:       date(2025, time.May, 1).AddDate(0, 0, i),
		})
	}

	// page 2 of size 10 holds offsets 10..19 of the date-descending set
	page2, err := service.GetUserTransactions(context.Background(), "user-a", domain.TransactionFilter{Page: 2, PageSize: 10})
	assert.NoError(t, err)
	assert.Len(t, page2, 10)
	assert.Equal(t, "t14", page2[0].ID)
	assert.Equal(t, "t05", page2[9].ID)

	// either pagination parameter missing means the full set comes back
	all, err := service.GetUserTransactions(context.Background(), "user-a", domain.TransactionFilter{Page: 2})
	assert.NoError(t, err)
	assert.Len(t, all, 25)

	all, err = service.GetUserTransactions(context.Background(), "user-a", domain.TransactionFilter{PageSize: 10})
	assert.NoError(t, err)
	assert.Len(t, all, 25)
}

func TestGetUserTransactions_InvalidTypeFilter(t *testing.T) {
	service, _ := newTransactionFixture()

	_, err := service.GetUserTransactions(context.Background(), "user-a", domain.TransactionFilter{Type: "TRANSFER"})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateTransaction_RevalidatesChangedCategory(t *testing.T) {
	service, repo := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: "t1", Title: "Lunch", Amount: 2000, Type: domain.TypeExpense,
			Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "cat-food"},
	}

	foreign := "cat-b"
	_, err := service.UpdateTransaction(context.Background(), "t1", "user-a", TransactionPatch{CategoryID: &foreign})
	assert.True(t, financeErrors.IsForbiddenError(err))
	assert.Equal(t, "cat-food", repo.Transactions[0].CategoryID)

	rent := "cat-rent"
	newTitle := "Rent May"
	updated, err := service.UpdateTransaction(context.Background(), "t1", "user-a", TransactionPatch{
		Title:      &newTitle,
		CategoryID: &rent,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Rent May", updated.Title)
	assert.Equal(t, "cat-rent", updated.CategoryID)
	// untouched fields keep their stored values
	assert.Equal(t, domain.Cents(2000), updated.Amount)
}

func TestUpdateTransaction_OwnershipChecks(t *testing.T) {
	service, repo := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: "t1", Title: "Lunch", Amount: 2000, Type: domain.TypeExpense,
			Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "cat-food"},
	}

	_, err := service.UpdateTransaction(context.Background(), "missing", "user-a", TransactionPatch{})
	assert.True(t, financeErrors.IsNotFoundError(err))

	_, err = service.UpdateTransaction(context.Background(), "t1", "user-b", TransactionPatch{})
	assert.True(t, financeErrors.IsForbiddenError(err))
}

func TestDeleteTransaction(t *testing.T) {
	service, repo := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: "t1", Title: "Lunch", Amount: 2000, Type: domain.TypeExpense,
			Date: date(2025, time.May, 10), UserID: "user-a", CategoryID: "cat-food"},
	}

	err := service.DeleteTransaction(context.Background(), "t1", "user-b")
	assert.True(t, financeErrors.IsForbiddenError(err))
	assert.Len(t, repo.Transactions, 1)

	err = service.DeleteTransaction(context.Background(), "t1", "user-a")
	assert.NoError(t, err)
	assert.Empty(t, repo.Transactions)

	err = service.DeleteTransaction(context.Background(), "t1", "user-a")
	assert.True(t, financeErrors.IsNotFoundError(err))
}
