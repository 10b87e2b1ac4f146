package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/propfolio/backend/internal/api/request"
	"github.com/propfolio/backend/internal/service"
)

// SystemHandler handles system HTTP requests: health, version, and the
// AVM provider token.
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health handles GET /api/system/health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		errorResponse := map[string]string{
			"status": "unhealthy",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Version handles GET /api/system/version.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"version": h.systemService.CheckVersion()})
}

// SetAVMToken handles PUT /api/system/avm-token. API-key protected; the
// token is stored fernet-encrypted.
func (h *SystemHandler) SetAVMToken(w http.ResponseWriter, r *http.Request) {
	var req request.SetAVMTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload", "detail": err.Error()})
		return
	}

	if strings.TrimSpace(req.Token) == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "token is required"})
		return
	}

	if err := h.systemService.SetAVMToken(req.Token); err != nil {
		respondServiceError(w, "Failed to store AVM token", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "stored"})
}
