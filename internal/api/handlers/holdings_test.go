package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mphinance/yieldmax/internal/model"
	"github.com/mphinance/yieldmax/internal/testutil"
)

func TestHoldingHandler_List(t *testing.T) {
	setup := func(t *testing.T) *HoldingHandler {
		t.Helper()
		db := testutil.SetupTestDB(t)
		testutil.NewETF("ULTY").Established().Build(t, db)
		testutil.NewPosition("ULTY", 600).Build(t, db)
		testutil.NewPosition("ULTY", 400).InAccount("Roth IRA", model.AccountTaxSheltered).Build(t, db)
		return NewHoldingHandler(testutil.NewTestHoldingService(t, db))
	}

	t.Run("returns all positions without a filter", func(t *testing.T) {
		handler := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var holdings []model.SymbolPositions
		if err := json.NewDecoder(w.Body).Decode(&holdings); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(holdings) != 1 || len(holdings[0].Positions) != 2 {
			t.Errorf("Expected 1 symbol with 2 positions, got %+v", holdings)
		}
	})

	t.Run("filters by account type", func(t *testing.T) {
		handler := setup(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/holdings",
			map[string]string{"accountType": "tax-sheltered"})
		w := httptest.NewRecorder()

		handler.List(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var holdings []model.SymbolPositions
		if err := json.NewDecoder(w.Body).Decode(&holdings); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(holdings) != 1 || len(holdings[0].Positions) != 1 {
			t.Fatalf("Expected 1 symbol with 1 position, got %+v", holdings)
		}
		if holdings[0].Positions[0].AccountType != model.AccountTaxSheltered {
			t.Errorf("Expected tax-sheltered position, got %s", holdings[0].Positions[0].AccountType)
		}
	})

	t.Run("rejects an unknown account type", func(t *testing.T) {
		handler := setup(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/holdings",
			map[string]string{"accountType": "margin"})
		w := httptest.NewRecorder()

		handler.List(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
