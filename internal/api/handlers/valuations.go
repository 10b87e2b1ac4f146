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

// ValuationHandler handles valuation CRUD HTTP requests.
type ValuationHandler struct {
	valuationService *service.ValuationService
}

// NewValuationHandler creates a new ValuationHandler
func NewValuationHandler(valuationService *service.ValuationService) *ValuationHandler {
	return &ValuationHandler{
		valuationService: valuationService,
	}
}

// Valuations handles GET /api/properties/{uuid}/valuations.
func (h *ValuationHandler) Valuations(w http.ResponseWriter, r *http.Request) {
	valuations, err := h.valuationService.GetValuations(middleware.OwnerID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve valuations", err)
		return
	}

	respondJSON(w, http.StatusOK, valuations)
}

// CreateValuation handles POST /api/properties/{uuid}/valuations.
func (h *ValuationHandler) CreateValuation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateValuationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if err := validation.ValidateCreateValuation(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed", "detail": err.Error()})
		return
	}

	valueDate, err := validation.ParseTime(req.ValueDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid value date", "detail": err.Error()})
		return
	}

	valuation, err := h.valuationService.AddValuation(middleware.OwnerID(r), chi.URLParam(r, "uuid"), req.EstimatedValue, valueDate)
	if err != nil {
		respondServiceError(w, "Failed to create valuation", err)
		return
	}

	respondJSON(w, http.StatusCreated, valuation)
}

// DeleteValuation handles DELETE /api/valuations/{uuid}.
func (h *ValuationHandler) DeleteValuation(w http.ResponseWriter, r *http.Request) {
	if err := h.valuationService.DeleteValuation(middleware.OwnerID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete valuation", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
