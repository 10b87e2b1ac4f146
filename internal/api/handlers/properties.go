package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/propfolio/backend/internal/api/middleware"
	"github.com/propfolio/backend/internal/api/request"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/service"
	"github.com/propfolio/backend/internal/validation"
)

// PropertyHandler handles property CRUD HTTP requests.
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// Properties handles GET /api/properties.
func (h *PropertyHandler) Properties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.GetProperties(middleware.OwnerID(r))
	if err != nil {
		respondServiceError(w, "Failed to retrieve properties", err)
		return
	}

	respondJSON(w, http.StatusOK, properties)
}

// Property handles GET /api/properties/{uuid}.
func (h *PropertyHandler) Property(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.GetProperty(middleware.OwnerID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve property", err)
		return
	}

	respondJSON(w, http.StatusOK, property)
}

// CreateProperty handles POST /api/properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if err := validation.ValidateCreateProperty(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed", "detail": err.Error()})
		return
	}

	purchaseDate, err := validation.ParseTime(req.PurchaseDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid purchase date", "detail": err.Error()})
		return
	}

	property, err := h.propertyService.CreateProperty(model.Property{
		UserID:        middleware.OwnerID(r),
		Address:       req.Address,
		Suburb:        req.Suburb,
		State:         req.State,
		EntityName:    req.EntityName,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
	})
	if err != nil {
		respondServiceError(w, "Failed to create property", err)
		return
	}

	respondJSON(w, http.StatusCreated, property)
}

// UpdateProperty handles PUT /api/properties/{uuid}.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if err := validation.ValidateUpdateProperty(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "validation failed", "detail": err.Error()})
		return
	}

	purchaseDate, err := validation.ParseTime(req.PurchaseDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid purchase date", "detail": err.Error()})
		return
	}

	property, err := h.propertyService.UpdateProperty(model.Property{
		ID:            chi.URLParam(r, "uuid"),
		UserID:        middleware.OwnerID(r),
		Address:       req.Address,
		Suburb:        req.Suburb,
		State:         req.State,
		EntityName:    req.EntityName,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		Status:        model.PropertyStatus(req.Status),
	})
	if err != nil {
		respondServiceError(w, "Failed to update property", err)
		return
	}

	respondJSON(w, http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/properties/{uuid}.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.propertyService.DeleteProperty(middleware.OwnerID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete property", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
