package model

import (
	"github.com/shopspring/decimal"

	"github.com/mphinance/yieldmax/internal/dates"
)

// ConfirmedPayment is an officially declared distribution: the per-share
// amount is final.
type ConfirmedPayment struct {
	ID       string          `json:"id"`
	Symbol   string          `json:"symbol"`
	PerShare decimal.Decimal `json:"perShare"`
	ExDate   dates.Date      `json:"exDate"`
	PayDate  dates.Date      `json:"payDate"`
	Group    PaymentGroup    `json:"group"`
}

// EstimatedPayment is a forward-looking projection of a distribution
// that has not been declared yet.
type EstimatedPayment struct {
	ID       string          `json:"id"`
	Symbol   string          `json:"symbol"`
	PerShare decimal.Decimal `json:"perShare"`
	ExDate   dates.Date      `json:"exDate"`
	PayDate  dates.Date      `json:"payDate"`
	Group    PaymentGroup    `json:"group"`
}

// Confidence scores how trustworthy an estimated amount is. Confirmed
// payments are always high.
type Confidence string

// Confidence values
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// DividendEvent is one materialized payment in the projected sequence:
// the per-share record joined with the account positions it pays,
// denominated in dollars.
type DividendEvent struct {
	Symbol      string       `json:"symbol"`
	Amount      float64      `json:"amount"`
	Date        dates.Date   `json:"date"`
	Description string       `json:"description"`
	IsEstimate  bool         `json:"isEstimate"`
	Confidence  Confidence   `json:"confidence"`
	Group       PaymentGroup `json:"group"`
	Frequency   Frequency    `json:"frequency"`
}
