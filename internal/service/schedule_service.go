package service

import (
	"fmt"
	"strings"

	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

// ScheduleService answers queries against the published payment
// calendar.
type ScheduleService struct {
	snapshots *SnapshotService
}

// NewScheduleService creates a new ScheduleService with the provided dependencies.
func NewScheduleService(snapshots *SnapshotService) *ScheduleService {
	return &ScheduleService{
		snapshots: snapshots,
	}
}

// NextPayment returns the first calendar entry after now for the
// symbol's payment group.
func (s *ScheduleService) NextPayment(symbol string, now dates.Date) (model.ScheduleEntry, error) {
	dataset := s.snapshots.Current()

	etf, ok := dataset.ETF(symbol)
	if !ok {
		return model.ScheduleEntry{}, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	// Schedule is stored ascending by payment date.
	for _, entry := range dataset.Schedule {
		if entry.Group == etf.Group && entry.PaymentDate.After(now) {
			return entry, nil
		}
	}

	return model.ScheduleEntry{}, fmt.Errorf("%w: group %s after %s", apperrors.ErrNoScheduledPayment, etf.Group, now)
}

// GroupInfo describes each payment group: its weekday and the registry
// symbols assigned to it.
func (s *ScheduleService) GroupInfo() map[model.PaymentGroup]string {
	dataset := s.snapshots.Current()

	members := make(map[model.PaymentGroup][]string)
	for _, etf := range dataset.ETFs {
		members[etf.Group] = append(members[etf.Group], etf.Symbol)
	}

	info := make(map[model.PaymentGroup]string, len(members))
	for _, group := range []model.PaymentGroup{model.GroupA, model.GroupB, model.GroupC, model.GroupD} {
		symbols, ok := members[group]
		if !ok {
			continue
		}
		info[group] = fmt.Sprintf("Group %s pays on %ss (%s)", group, group.Weekday(), strings.Join(symbols, ", "))
	}

	return info
}
