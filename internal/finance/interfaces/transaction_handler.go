package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sebuszqo/PersonalLedger/internal/finance/application"
	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

const dateLayout = "2006-01-02"

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) error
	GetUserTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetUserTransaction(ctx context.Context, id, userID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id, userID string, patch application.TransactionPatch) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id, userID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type transactionRequest struct {
	Title      string      `json:"title"`
	Amount     json.Number `json:"amount"`
	Type       string      `json:"type"`
	Date       string      `json:"date"`
	CategoryID string      `json:"category_id"`
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := domain.ParseCents(req.Amount.String())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	// The owner always comes from the verified token, never from the body.
	transaction := &domain.Transaction{
		Title:      req.Title,
		Amount:     amount,
		Type:       req.Type,
		Date:       date,
		UserID:     userID,
		CategoryID: req.CategoryID,
	}
	if err := h.service.CreateTransaction(r.Context(), transaction); err != nil {
		respondLedgerError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter, errMsg := parseTransactionFilter(r)
	if errMsg != "" {
		h.respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	transactions, err := h.service.GetUserTransactions(r.Context(), userID, filter)
	if err != nil {
		respondLedgerError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactions,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.GetUserTransaction(r.Context(), r.PathValue("transactionID"), userID)
	if err != nil {
		respondLedgerError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title      *string      `json:"title"`
		Amount     *json.Number `json:"amount"`
		Type       *string      `json:"type"`
		Date       *string      `json:"date"`
		CategoryID *string      `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := application.TransactionPatch{
		Title:      req.Title,
		Type:       req.Type,
		CategoryID: req.CategoryID,
	}
	if req.Amount != nil {
		amount, err := domain.ParseCents(req.Amount.String())
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		patch.Date = &date
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), r.PathValue("transactionID"), userID, patch)
	if err != nil {
		respondLedgerError(h.respondError, w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction updated successfully.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), r.PathValue("transactionID"), userID); err != nil {
		respondLedgerError(h.respondError, w, err, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction removed successfully.",
	})
}

// parseTransactionFilter reads the optional query filters. The date range
// only takes effect when both bounds are present; pagination only when both
// page and page_size are present.
func parseTransactionFilter(r *http.Request) (domain.TransactionFilter, string) {
	var filter domain.TransactionFilter

	filter.CategoryID = r.URL.Query().Get("category_id")
	filter.Type = r.URL.Query().Get("type")
	if filter.Type != "" && !domain.IsValidTransactionType(filter.Type) {
		return filter, "Invalid transaction type"
	}

	if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			return filter, "Invalid start date format"
		}
		filter.StartDate = &startDate
	}
	if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			return filter, "Invalid end date format"
		}
		filter.EndDate = &endDate
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return filter, "Invalid page value"
		}
		filter.Page = page
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize <= 0 {
			return filter, "Invalid page size value"
		}
		filter.PageSize = pageSize
	}

	return filter, ""
}
