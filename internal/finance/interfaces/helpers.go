package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// respondLedgerError translates the ledger's error kinds onto HTTP statuses
// one-to-one. Anything unrecognized is an internal error and only the
// fallback message leaves the server.
func respondLedgerError(respond func(w http.ResponseWriter, status int, message string), w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		respond(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		respond(w, http.StatusNotFound, err.Error())
	case financeErrors.IsForbiddenError(err):
		respond(w, http.StatusForbidden, err.Error())
	case financeErrors.IsConflictError(err):
		respond(w, http.StatusConflict, err.Error())
	default:
		log.Printf("Unexpected ledger error: %v", err)
		respond(w, http.StatusInternalServerError, fallback)
	}
}
