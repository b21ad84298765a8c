package model

import "github.com/mphinance/yieldmax/internal/dates"

// ScheduleEntry is one row of the published payment calendar: the full
// declaration-to-payment date chain for a payer group.
type ScheduleEntry struct {
	ID              string       `json:"id"`
	DeclarationDate dates.Date   `json:"declarationDate"`
	ExDate          dates.Date   `json:"exDate"`
	RecordDate      dates.Date   `json:"recordDate"`
	PaymentDate     dates.Date   `json:"paymentDate"`
	Group           PaymentGroup `json:"group"`
}
