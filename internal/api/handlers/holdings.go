package handlers

import (
	"net/http"

	"github.com/mphinance/yieldmax/internal/api/response"
	"github.com/mphinance/yieldmax/internal/service"
	"github.com/mphinance/yieldmax/internal/validation"
)

// HoldingHandler handles HTTP requests for position listings.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// List handles GET requests to retrieve all positions grouped by symbol.
// An optional accountType filter narrows the result to one account class.
//
// Endpoint: GET /api/holdings?accountType=taxable
// Response: 200 OK with array of SymbolPositions
// Error: 400 Bad Request when accountType is not a known value
func (h *HoldingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("accountType")
	if filter == "" {
		response.RespondJSON(w, http.StatusOK, h.holdingService.Holdings())
		return
	}

	accountType, err := validation.ValidateAccountType(filter)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holdings, err := h.holdingService.ByAccountType(accountType)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}
