package handlers

import (
	"net/http"

	"github.com/propfolio/backend/internal/api/middleware"
	"github.com/propfolio/backend/internal/model"
	"github.com/propfolio/backend/internal/service"
	"github.com/propfolio/backend/internal/validation"
)

// PortfolioHandler exposes the metrics engine's two operations over HTTP.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Summary handles GET /api/portfolio/summary.
//
// Query parameters: period (required: monthly|quarterly|annual), and the
// optional filters state, entity, status. Invalid enum values are caller
// contract violations and return 400 before any data is touched.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	period := model.Period(r.URL.Query().Get("period"))
	if err := validation.ValidatePeriod(period); err != nil {
		errorResponse := map[string]string{
			"error":  "period must be monthly, quarterly, or annual",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	summary, err := h.portfolioService.GetSummary(middleware.OwnerID(r), period, filter)
	if err != nil {
		respondServiceError(w, "Failed to get portfolio summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Metrics handles GET /api/portfolio/metrics.
//
// On top of Summary's parameters it accepts sort_by
// (cashFlow|equity|lvr|alphabetical, default equity) and sort_order
// (asc|desc, default desc). The filter set is shared with Summary so the
// two endpoints always agree for the same inputs.
func (h *PortfolioHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	period := model.Period(r.URL.Query().Get("period"))
	if err := validation.ValidatePeriod(period); err != nil {
		errorResponse := map[string]string{
			"error":  "period must be monthly, quarterly, or annual",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	sortBy := model.SortKey(r.URL.Query().Get("sort_by"))
	if sortBy == "" {
		sortBy = model.SortByEquity
	}
	if err := validation.ValidateSortKey(sortBy); err != nil {
		errorResponse := map[string]string{
			"error":  "sort_by must be cashFlow, equity, lvr, or alphabetical",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	sortOrder := model.SortOrder(r.URL.Query().Get("sort_order"))
	if sortOrder == "" {
		sortOrder = model.SortDesc
	}
	if err := validation.ValidateSortOrder(sortOrder); err != nil {
		errorResponse := map[string]string{
			"error":  "sort_order must be asc or desc",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	metrics, err := h.portfolioService.GetPropertyMetrics(middleware.OwnerID(r), period, filter, sortBy, sortOrder)
	if err != nil {
		respondServiceError(w, "Failed to get property metrics", err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

// parseFilter reads the shared filter query parameters. Writes a 400 and
// returns ok=false when the status filter is outside the enumeration.
func parseFilter(w http.ResponseWriter, r *http.Request) (model.PropertyFilter, bool) {
	filter := model.PropertyFilter{
		State:      r.URL.Query().Get("state"),
		EntityName: r.URL.Query().Get("entity"),
		Status:     model.PropertyStatus(r.URL.Query().Get("status")),
	}

	if err := validation.ValidateStatusFilter(filter.Status); err != nil {
		errorResponse := map[string]string{
			"error":  "status must be active or sold",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return model.PropertyFilter{}, false
	}

	return filter, true
}
