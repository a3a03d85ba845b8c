package interfaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebuszqo/PersonalLedger/internal/finance/application"
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func TestSummaryHandler_GetMonthlySummary(t *testing.T) {
	service := &MockSummaryService{
		GetMonthlySummaryFunc: func(ctx context.Context, userID string, month, year int) (*application.MonthlySummary, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, 5, month)
			assert.Equal(t, 2025, year)
			return &application.MonthlySummary{Month: 5, Year: 2025, Income: 0, Expense: 2000, Balance: -2000}, nil
		},
	}
	handler := NewSummaryHandler(service, respondJSON, respondError)

	recorder := httptest.NewRecorder()
	handler.GetMonthlySummary(recorder, authenticatedRequest(http.MethodGet, "/api/protected/summaries/monthly?month=5&year=2025", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["month"])
	assert.Equal(t, float64(0), data["income"])
	assert.Equal(t, float64(20), data["expense"])
	assert.Equal(t, float64(-20), data["balance"])
}

func TestSummaryHandler_NonNumericInput(t *testing.T) {
	handler := NewSummaryHandler(&MockSummaryService{}, respondJSON, respondError)

	for _, tc := range []struct {
		name, query string
	}{
		{"missing month", "?year=2025"},
		{"month not a number", "?month=May&year=2025"},
		{"year not a number", "?month=5&year=twenty"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.GetMonthlySummary(recorder, authenticatedRequest(http.MethodGet, "/api/protected/summaries/monthly"+tc.query, ""))
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSummaryHandler_OutOfRangeInput(t *testing.T) {
	service := &MockSummaryService{
		GetMonthlySummaryFunc: func(ctx context.Context, userID string, month, year int) (*application.MonthlySummary, error) {
			return nil, financeErrors.NewValidationError("Month must be between 1 and 12")
		},
	}
	handler := NewSummaryHandler(service, respondJSON, respondError)

	recorder := httptest.NewRecorder()
	handler.GetMonthlySummary(recorder, authenticatedRequest(http.MethodGet, "/api/protected/summaries/monthly?month=13&year=2025", ""))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSummaryHandler_MissingUserContext(t *testing.T) {
	handler := NewSummaryHandler(&MockSummaryService{}, respondJSON, respondError)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected/summaries/monthly?month=5&year=2025", nil)
	handler.GetMonthlySummary(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
