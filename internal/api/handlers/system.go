package handlers

import (
	"net/http"

	"github.com/mphinance/yieldmax/internal/api/response"
	"github.com/mphinance/yieldmax/internal/service"
)

// SystemHandler handles system-level HTTP requests such as health checks
// and version information.
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler with the provided service dependency.
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health handles GET requests for service health checks.
//
// Endpoint: GET /api/system/health
// Response: 200 OK when the database is reachable
// Error: 503 Service Unavailable when the database check fails
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "service unhealthy", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET requests for the running service version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with the version string
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]string{"version": h.systemService.Version()})
}
