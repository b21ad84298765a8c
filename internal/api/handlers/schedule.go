package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mphinance/yieldmax/internal/api/response"
	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/service"
	"github.com/mphinance/yieldmax/internal/validation"
)

// ScheduleHandler handles HTTP requests for the declared payment calendar.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler with the provided service dependency.
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// NextPayment handles GET requests for a symbol's next declared payment.
//
// Endpoint: GET /api/schedule/next/{symbol}
// Response: 200 OK with ScheduleEntry
// Error: 400 Bad Request when the symbol is empty
// Error: 404 Not Found when the symbol is unknown or nothing is scheduled
func (h *ScheduleHandler) NextPayment(w http.ResponseWriter, r *http.Request) {
	symbol, err := validation.ValidateSymbol(chi.URLParam(r, "symbol"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.scheduleService.NextPayment(symbol, dates.Today())
	if err != nil {
		if errors.Is(err, apperrors.ErrSymbolNotFound) || errors.Is(err, apperrors.ErrNoScheduledPayment) {
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSchedule.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// Groups handles GET requests for the payment group weekday descriptions.
//
// Endpoint: GET /api/schedule/groups
// Response: 200 OK with map of group to description
func (h *ScheduleHandler) Groups(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.scheduleService.GroupInfo())
}
