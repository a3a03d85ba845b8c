package interfaces

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sebuszqo/PersonalLedger/internal/finance/application"
)

type SummaryServiceInterface interface {
	GetMonthlySummary(ctx context.Context, userID string, month, year int) (*application.MonthlySummary, error)
}

type SummaryHandler struct {
	service      SummaryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSummaryHandler(
	service SummaryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SummaryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SummaryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SummaryHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid month value")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid year value")
		return
	}

	summary, err := h.service.GetMonthlySummary(r.Context(), userID, month, year)
	if err != nil {
		respondLedgerError(h.respondError, w, err, "Failed to retrieve monthly summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Monthly summary retrieved successfully.",
		"data":    summary,
	})
}
