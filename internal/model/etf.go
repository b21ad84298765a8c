package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentGroup identifies one of the four weekly payer cohorts. Each
// group pays on its own fixed weekday.
type PaymentGroup string

// Payment group values
const (
	GroupA PaymentGroup = "A"
	GroupB PaymentGroup = "B"
	GroupC PaymentGroup = "C"
	GroupD PaymentGroup = "D"
)

// Valid reports whether the group is one of the four known cohorts.
func (g PaymentGroup) Valid() bool {
	switch g {
	case GroupA, GroupB, GroupC, GroupD:
		return true
	}
	return false
}

// Weekday returns the payment weekday of the group.
func (g PaymentGroup) Weekday() time.Weekday {
	switch g {
	case GroupA:
		return time.Thursday
	case GroupB:
		return time.Friday
	case GroupC:
		return time.Monday
	default:
		return time.Tuesday
	}
}

// Frequency is how often a fund distributes.
type Frequency string

// Frequency values
const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ETF is one registry entry for a covered-call income fund. Established
// marks funds with a distribution track record long enough to score
// their estimates a tier higher.
type ETF struct {
	Symbol          string          `json:"symbol"`
	Name            string          `json:"name"`
	Group           PaymentGroup    `json:"group"`
	Frequency       Frequency       `json:"frequency"`
	UnderlyingAsset string          `json:"underlyingAsset"`
	ReferencePrice  decimal.Decimal `json:"referencePrice"`
	NominalYield    decimal.Decimal `json:"nominalYield"`
	Established     bool            `json:"established"`
}
