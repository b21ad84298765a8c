package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mphinance/yieldmax/internal/api/response"
	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/format"
	"github.com/mphinance/yieldmax/internal/model"
	"github.com/mphinance/yieldmax/internal/service"
	"github.com/mphinance/yieldmax/internal/validation"
)

// defaultUpcomingLimit is used when the limit query parameter is absent.
const defaultUpcomingLimit = 8

// DividendHandler handles HTTP requests for dividend projection and
// aggregation endpoints. It parses and validates requests and delegates
// to the DividendService.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// EventPayload is a DividendEvent plus its display form. Estimated
// amounts carry the trailing asterisk marker.
type EventPayload struct {
	model.DividendEvent
	FormattedAmount string `json:"formattedAmount"`
}

// EventListResponse wraps a list of events with the estimate disclaimer.
type EventListResponse struct {
	Events     []EventPayload `json:"events"`
	Disclaimer string         `json:"disclaimer"`
}

// All handles GET requests to retrieve the full projected event sequence.
//
// Endpoint: GET /api/dividends
// Response: 200 OK with EventListResponse
func (h *DividendHandler) All(w http.ResponseWriter, _ *http.Request) {
	events := h.dividendService.All(dates.Today())
	response.RespondJSON(w, http.StatusOK, newEventListResponse(events))
}

// Upcoming handles GET requests to retrieve the next scheduled payments.
//
// Endpoint: GET /api/dividends/upcoming?limit=8
// Response: 200 OK with EventListResponse (at most limit events)
// Error: 400 Bad Request when limit is negative or not an integer
func (h *DividendHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit, err := validation.ValidateLimit(r.URL.Query().Get("limit"), defaultUpcomingLimit)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	events, err := h.dividendService.Upcoming(dates.Today(), limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidLimit) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidLimit.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, newEventListResponse(events))
}

// OnDate handles GET requests for the payments of a single calendar day.
//
// Endpoint: GET /api/dividends/date/{date}
// Response: 200 OK with EventListResponse (empty list when none)
// Error: 400 Bad Request when the date is malformed
func (h *DividendHandler) OnDate(w http.ResponseWriter, r *http.Request) {
	date, err := validation.ValidateDate(chi.URLParam(r, "date"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	events := h.dividendService.OnDate(dates.Today(), date)
	response.RespondJSON(w, http.StatusOK, newEventListResponse(events))
}

// GroupedOnDate handles GET requests for the grouped same-day view.
//
// Endpoint: GET /api/dividends/date/{date}/groups
// Response: 200 OK with map of group to GroupSummary (empty object when none)
// Error: 400 Bad Request when the date is malformed
func (h *DividendHandler) GroupedOnDate(w http.ResponseWriter, r *http.Request) {
	date, err := validation.ValidateDate(chi.URLParam(r, "date"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	grouped := h.dividendService.GroupedOnDate(dates.Today(), date)
	response.RespondJSON(w, http.StatusOK, grouped)
}

// Monthly handles GET requests for a calendar month's income breakdown.
// The month query parameter is 1-based.
//
// Endpoint: GET /api/dividends/monthly?year=2025&month=7
// Response: 200 OK with MonthlyBreakdown (zero totals when empty)
// Error: 400 Bad Request when year or month is out of range
func (h *DividendHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := validation.ValidateMonth(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	breakdown, err := h.dividendService.MonthlyBreakdown(dates.Today(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidYear) || errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, breakdown)
}

func newEventListResponse(events []model.DividendEvent) EventListResponse {
	payloads := make([]EventPayload, 0, len(events))
	for _, e := range events {
		payloads = append(payloads, EventPayload{
			DividendEvent:   e,
			FormattedAmount: format.Amount(e.Amount, e.IsEstimate),
		})
	}
	return EventListResponse{
		Events:     payloads,
		Disclaimer: format.Disclaimer(),
	}
}
