// Package format renders dollar amounts for display. Estimated amounts
// carry a trailing asterisk so the UI can always tell a projection from
// a confirmed payment.
package format

import "github.com/Rhymond/go-money"

// Amount formats a dollar amount as en-US USD currency, appending the
// estimate marker when the amount is projected rather than confirmed:
// Amount(340.5, false) == "$340.50", Amount(340.5, true) == "$340.50*".
func Amount(amount float64, isEstimate bool) string {
	formatted := money.NewFromFloat(amount, money.USD).Display()
	if isEstimate {
		return formatted + "*"
	}
	return formatted
}

// Disclaimer returns the standing estimate disclaimer shown wherever
// marked amounts appear.
func Disclaimer() string {
	return "* Estimated amounts based on verified historical patterns and official announcements. Actual payments may vary."
}
