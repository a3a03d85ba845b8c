package application

import (
	"context"
	"time"

	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

type MonthlySummary struct {
	Month   int          `json:"month"`
	Year    int          `json:"year"`
	Income  domain.Cents `json:"income"`
	Expense domain.Cents `json:"expense"`
	Balance domain.Cents `json:"balance"`
}

// TransactionReader is the slice of the transaction ledger the summary
// engine consumes.
type TransactionReader interface {
	GetUserTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type SummaryService struct {
	transactions TransactionReader
}

func NewSummaryService(transactions TransactionReader) *SummaryService {
	return &SummaryService{transactions: transactions}
}

var errInvalidMonth = financeErrors.NewValidationError("Month must be between 1 and 12")
var errInvalidYear = financeErrors.NewValidationError("Year must be between 2000 and 2100")

// GetMonthlySummary reduces the owner's transactions inside the inclusive
// [first day, last day] window of the month. Sums are integer cents, so the
// result is exact and independent of the order of the entries. Rows with a
// type other than INCOME or EXPENSE contribute to neither sum.
func (s *SummaryService) GetMonthlySummary(ctx context.Context, userID string, month, year int) (*MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, errInvalidMonth
	}
	if year < 2000 || year > 2100 {
		return nil, errInvalidYear
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	transactions, err := s.transactions.GetUserTransactions(ctx, userID, domain.TransactionFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}

	var income, expense domain.Cents
	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.TypeIncome:
			income += transaction.Amount
		case domain.TypeExpense:
			expense += transaction.Amount
		}
	}

	return &MonthlySummary{
		Month:   month,
		Year:    year,
		Income:  income,
		Expense: expense,
		Balance: income - expense,
	}, nil
}
