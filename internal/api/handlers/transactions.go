package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/propfolio/backend/internal/api/middleware"
	"github.com/propfolio/backend/internal/api/request"
	"github.com/propfolio/backend/internal/service"
	"github.com/propfolio/backend/internal/validation"
)

// TransactionHandler handles transaction CRUD HTTP requests.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET /api/transactions?start_date=&end_date=.
// start_date defaults to 1970-01-01 and end_date to today, so either
// bound can be given alone.
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	var startDate, endDate time.Time
	var err error

	if r.URL.Query().Get("start_date") == "" {
		startDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		startDate, err = validation.ParseTime(r.URL.Query().Get("start_date"))
		if err != nil {
			errorResponse := map[string]string{
				"error":  "Failed to parse start_date",
				"detail": err.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
	}

	if r.URL.Query().Get("end_date") == "" {
		endDate = time.Now().UTC()
	} else {
		endDate, err = validation.ParseTime(r.URL.Query().Get("end_date"))
		if err != nil {
			errorResponse := map[string]string{
				"error":  "Failed to parse end_date",
				"detail": err.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
	}

	transactions, err := h.transactionService.GetTransactions(middleware.OwnerID(r), startDate, endDate)
	if err != nil {
		respondServiceError(w, "Failed to retrieve transactions", err)
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST /api/transactions.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed", "detail": err.Error()})
		return
	}

	date, err := validation.ParseTime(req.Date)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date", "detail": err.Error()})
		return
	}

	transaction, err := h.transactionService.AddTransaction(
		middleware.OwnerID(r),
		req.PropertyID,
		date,
		req.Amount,
		req.Type,
		req.Description,
	)
	if err != nil {
		respondServiceError(w, "Failed to create transaction", err)
		return
	}

	respondJSON(w, http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE /api/transactions/{uuid}.
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.transactionService.DeleteTransaction(middleware.OwnerID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete transaction", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
