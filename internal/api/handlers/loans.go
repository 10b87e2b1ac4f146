package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/propfolio/backend/internal/api/middleware"
	"github.com/propfolio/backend/internal/api/request"
	"github.com/propfolio/backend/internal/service"
	"github.com/propfolio/backend/internal/validation"
)

// LoanHandler handles loan CRUD HTTP requests.
type LoanHandler struct {
	loanService *service.LoanService
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Loans handles GET /api/properties/{uuid}/loans.
func (h *LoanHandler) Loans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.GetLoans(middleware.OwnerID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve loans", err)
		return
	}

	respondJSON(w, http.StatusOK, loans)
}

// CreateLoan handles POST /api/properties/{uuid}/loans.
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if err := validation.ValidateCreateLoan(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed", "detail": err.Error()})
		return
	}

	loan, err := h.loanService.AddLoan(middleware.OwnerID(r), chi.URLParam(r, "uuid"), req.Lender, req.CurrentBalance, req.InterestRate)
	if err != nil {
		respondServiceError(w, "Failed to create loan", err)
		return
	}

	respondJSON(w, http.StatusCreated, loan)
}

// UpdateLoanBalance handles PUT /api/loans/{uuid}/balance.
func (h *LoanHandler) UpdateLoanBalance(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateLoanBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if err := h.loanService.UpdateBalance(middleware.OwnerID(r), chi.URLParam(r, "uuid"), req.CurrentBalance); err != nil {
		respondServiceError(w, "Failed to update loan balance", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteLoan handles DELETE /api/loans/{uuid}.
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	if err := h.loanService.DeleteLoan(middleware.OwnerID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete loan", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
