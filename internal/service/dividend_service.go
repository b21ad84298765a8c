package service

import (
	"fmt"
	"time"

	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

// DividendService is the stateless query layer over the projected event
// sequence: calendar-day filters, upcoming lists, and month-level
// breakdowns. All methods are total over their validated inputs and
// recompute from the projection on every call.
type DividendService struct {
	projection *ProjectionService
}

// NewDividendService creates a new DividendService with the provided dependencies.
func NewDividendService(projection *ProjectionService) *DividendService {
	return &DividendService{
		projection: projection,
	}
}

// All returns the full projected event sequence as of now.
func (s *DividendService) All(now dates.Date) []model.DividendEvent {
	return s.projection.Events(now)
}

// OnDate returns the events paying on exactly the given calendar day.
func (s *DividendService) OnDate(now, date dates.Date) []model.DividendEvent {
	events := s.projection.Events(now)
	matched := make([]model.DividendEvent, 0)
	for _, e := range events {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}

// Upcoming returns at most limit events paying on or after now, in
// ascending pay-date order. A limit larger than the available set
// returns everything available; a negative limit is rejected.
func (s *DividendService) Upcoming(now dates.Date, limit int) ([]model.DividendEvent, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidLimit, limit)
	}

	upcoming := make([]model.DividendEvent, 0, limit)
	for _, e := range s.projection.Events(now) {
		if e.Date.Before(now) {
			continue
		}
		if len(upcoming) == limit {
			break
		}
		upcoming = append(upcoming, e)
	}
	return upcoming, nil
}

// MonthlyBreakdown splits the given calendar month into confirmed and
// estimated income. Month is 1-based (January = 1) — this is the one
// month-indexing convention in the system, fixed at every API boundary.
// A month with no payments yields zero totals and an empty list.
func (s *DividendService) MonthlyBreakdown(now dates.Date, year, month int) (model.MonthlyBreakdown, error) {
	if year <= 0 {
		return model.MonthlyBreakdown{}, fmt.Errorf("%w: %d", apperrors.ErrInvalidYear, year)
	}
	if month < 1 || month > 12 {
		return model.MonthlyBreakdown{}, fmt.Errorf("%w: %d", apperrors.ErrInvalidMonth, month)
	}

	breakdown := model.MonthlyBreakdown{
		Payments: make([]model.DividendEvent, 0),
	}

	for _, e := range s.projection.Events(now) {
		if !e.Date.InMonth(year, time.Month(month)) {
			continue
		}
		breakdown.Payments = append(breakdown.Payments, e)
		if e.IsEstimate {
			breakdown.Estimated += e.Amount
		} else {
			breakdown.Confirmed += e.Amount
		}
	}
	breakdown.Total = breakdown.Confirmed + breakdown.Estimated

	return breakdown, nil
}

// GroupedOnDate partitions one day's events by payment group, for the
// compact calendar-cell rendering of multiple same-day payments. The map
// is empty, never nil, when the day has no events.
func (s *DividendService) GroupedOnDate(now, date dates.Date) map[model.PaymentGroup]model.GroupSummary {
	grouped := make(map[model.PaymentGroup]model.GroupSummary)

	for _, e := range s.OnDate(now, date) {
		summary := grouped[e.Group]
		summary.Group = e.Group
		summary.Events = append(summary.Events, e)
		summary.Total += e.Amount
		if e.IsEstimate {
			summary.HasEstimates = true
		}
		grouped[e.Group] = summary
	}

	return grouped
}
