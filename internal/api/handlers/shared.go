package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/propfolio/backend/internal/errors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service-layer errors onto HTTP status codes:
// missing entities become 404, contract violations 400, everything else
// surfaces as 500 with the underlying detail.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	errorResponse := map[string]string{
		"error":  message,
		"detail": err.Error(),
	}
	respondJSON(w, statusForError(err), errorResponse)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrPropertyNotFound),
		errors.Is(err, apperrors.ErrValuationNotFound),
		errors.Is(err, apperrors.ErrLoanNotFound),
		errors.Is(err, apperrors.ErrTransactionNotFound),
		errors.Is(err, apperrors.ErrSettingNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrInvalidSortKey),
		errors.Is(err, apperrors.ErrInvalidSortOrder),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrStatusTransition),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrNegativePurchasePrice):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
