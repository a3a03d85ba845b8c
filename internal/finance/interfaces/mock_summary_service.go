package interfaces

import (
	"context"

	"github.com/sebuszqo/PersonalLedger/internal/finance/application"
)

// MockSummaryService lets handler tests script the summary lookup.
type MockSummaryService struct {
	GetMonthlySummaryFunc func(ctx context.Context, userID string, month, year int) (*application.MonthlySummary, error)
}

func (m *MockSummaryService) GetMonthlySummary(ctx context.Context, userID string, month, year int) (*application.MonthlySummary, error) {
	return m.GetMonthlySummaryFunc(ctx, userID, month, year)
}
