package service

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mphinance/yieldmax/internal/config"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

// ProjectionService merges confirmed and estimated payment records into
// the unified, dollar-denominated dividend event sequence.
type ProjectionService struct {
	snapshots *SnapshotService
	cfg       config.ProjectionConfig
}

// NewProjectionService creates a new ProjectionService with the provided dependencies.
func NewProjectionService(snapshots *SnapshotService, cfg config.ProjectionConfig) *ProjectionService {
	return &ProjectionService{
		snapshots: snapshots,
		cfg:       cfg,
	}
}

// Events derives the full dividend event sequence as of the given
// evaluation date.
//
// Confirmed records always materialize (isEstimate=false, confidence
// high). Estimated records materialize only while their pay date is
// strictly after now; a lapsed projection has either been confirmed in
// the meantime or gone stale, and either way it is discarded. Records
// whose symbol has no holdings entry are skipped without error — the
// snapshot loader reports them.
//
// The result is sorted ascending by pay date; events on the same day are
// ordered by symbol so the sequence is stable across runs.
func (s *ProjectionService) Events(now dates.Date) []model.DividendEvent {
	dataset := s.snapshots.Current()
	events := make([]model.DividendEvent, 0, len(dataset.Confirmed)+len(dataset.Estimated))

	for _, record := range dataset.Confirmed {
		if _, held := dataset.Positions(record.Symbol); !held {
			continue
		}
		shares := dataset.TotalShares(record.Symbol)

		events = append(events, model.DividendEvent{
			Symbol:      record.Symbol,
			Amount:      dollarAmount(record.PerShare, shares),
			Date:        record.PayDate,
			Description: describePayment(record.Symbol, record.PerShare, s.frequency(dataset, record.Symbol), false),
			IsEstimate:  false,
			Confidence:  model.ConfidenceHigh,
			Group:       record.Group,
			Frequency:   s.frequency(dataset, record.Symbol),
		})
	}

	for _, record := range dataset.Estimated {
		if _, held := dataset.Positions(record.Symbol); !held {
			continue
		}
		if !record.PayDate.After(now) {
			continue
		}
		shares := dataset.TotalShares(record.Symbol)

		etf, _ := dataset.ETF(record.Symbol)
		events = append(events, model.DividendEvent{
			Symbol:      record.Symbol,
			Amount:      dollarAmount(record.PerShare, shares),
			Date:        record.PayDate,
			Description: describePayment(record.Symbol, record.PerShare, s.frequency(dataset, record.Symbol), true),
			IsEstimate:  true,
			Confidence:  s.Confidence(etf.Established, now.DaysUntil(record.PayDate)),
			Group:       record.Group,
			Frequency:   s.frequency(dataset, record.Symbol),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Symbol < events[j].Symbol
	})

	return events
}

// Confidence applies the tiered confidence policy for an estimate.
// Near-term estimates for funds with a longer track record score
// highest; beyond the mid-term boundary everything is low.
func (s *ProjectionService) Confidence(established bool, daysUntil int) model.Confidence {
	switch {
	case daysUntil <= s.cfg.NearTermDays:
		if established {
			return model.ConfidenceHigh
		}
		return model.ConfidenceMedium
	case daysUntil <= s.cfg.MidTermDays:
		if established {
			return model.ConfidenceMedium
		}
		return model.ConfidenceLow
	default:
		return model.ConfidenceLow
	}
}

// frequency returns the registry frequency for a symbol, defaulting to
// weekly for held symbols that are missing a registry row.
func (s *ProjectionService) frequency(dataset *model.Dataset, symbol string) model.Frequency {
	if etf, ok := dataset.ETF(symbol); ok {
		return etf.Frequency
	}
	return model.FrequencyWeekly
}

// dollarAmount computes perShare × shares exactly and converts the
// result to dollars once, at the edge.
func dollarAmount(perShare decimal.Decimal, shares int64) float64 {
	return perShare.Mul(decimal.NewFromInt(shares)).InexactFloat64()
}

func describePayment(symbol string, perShare decimal.Decimal, frequency model.Frequency, estimated bool) string {
	if estimated {
		return fmt.Sprintf("%s estimated %s dividend - $%s/share", symbol, frequency, perShare.StringFixed(4))
	}
	return fmt.Sprintf("%s %s dividend - $%s/share", symbol, frequency, perShare.StringFixed(4))
}
