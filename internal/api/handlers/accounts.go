package handlers

import (
	"net/http"

	"github.com/mphinance/yieldmax/internal/api/response"
	"github.com/mphinance/yieldmax/internal/service"
)

// AccountHandler handles HTTP requests for per-account income summaries
// and the tax breakdown.
type AccountHandler struct {
	holdingService *service.HoldingService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(holdingService *service.HoldingService) *AccountHandler {
	return &AccountHandler{
		holdingService: holdingService,
	}
}

// Summary handles GET requests for the per-account rollup of shares,
// symbols, and estimated monthly income.
//
// Endpoint: GET /api/accounts/summary
// Response: 200 OK with map of account name to AccountSummary
func (h *AccountHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.holdingService.AccountSummary())
}

// Tax handles GET requests for the taxable versus tax-sheltered income
// breakdown with flat-rate tax estimates.
//
// Endpoint: GET /api/accounts/tax
// Response: 200 OK with TaxBreakdown
func (h *AccountHandler) Tax(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.holdingService.TaxBreakdown())
}
