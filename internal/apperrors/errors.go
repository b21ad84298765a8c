package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSymbolNotFound indicates that a symbol is not in the ETF registry.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrUnknownSymbol indicates that a payment record references a symbol
	// with no holdings entry. The projection skips such records rather than
	// failing; this error exists for the load-time hook that counts them.
	ErrUnknownSymbol = errors.New("payment record for unknown symbol")

	// ErrNoScheduledPayment indicates that no future schedule entry exists
	// for a symbol's payment group.
	ErrNoScheduledPayment = errors.New("no scheduled payment found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidLimit indicates a negative limit on an upcoming-payments query.
	ErrInvalidLimit = errors.New("limit cannot be negative")

	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD or M/D/YY form.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidMonth indicates a month outside the 1-12 range.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear indicates a non-positive year.
	ErrInvalidYear = errors.New("year must be positive")

	// ErrInvalidAccountType indicates an account type other than
	// taxable or tax-sheltered.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrieveDividends = errors.New("failed to retrieve dividends")
	ErrFailedToRetrieveHoldings  = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveSchedule  = errors.New("failed to retrieve payment schedule")
	ErrFailedToLoadSnapshot      = errors.New("failed to load reference data snapshot")
)
