package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mphinance/yieldmax/internal/model"
	"github.com/mphinance/yieldmax/internal/repository"
)

// SnapshotService loads the reference dataset and publishes it as an
// immutable snapshot. Readers always see a complete dataset: a refresh
// builds a whole new one and swaps the pointer atomically, so concurrent
// queries never observe a half-loaded state.
type SnapshotService struct {
	etfRepo      *repository.ETFRepository
	holdingRepo  *repository.HoldingRepository
	paymentRepo  *repository.PaymentRepository
	scheduleRepo *repository.ScheduleRepository

	current atomic.Pointer[model.Dataset]
	skipped atomic.Int64
}

// NewSnapshotService creates a new SnapshotService with the provided repository dependencies.
func NewSnapshotService(
	etfRepo *repository.ETFRepository,
	holdingRepo *repository.HoldingRepository,
	paymentRepo *repository.PaymentRepository,
	scheduleRepo *repository.ScheduleRepository,
) *SnapshotService {
	return &SnapshotService{
		etfRepo:      etfRepo,
		holdingRepo:  holdingRepo,
		paymentRepo:  paymentRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Load reads all reference tables, builds a new dataset, and publishes
// it. Payment records whose symbol has no holdings entry are counted and
// logged here; the projection itself skips them silently, so this is the
// one place where a data-entry gap becomes visible.
func (s *SnapshotService) Load(ctx context.Context) error {
	var (
		etfs      []model.ETF
		holdings  []model.SymbolPositions
		confirmed []model.ConfirmedPayment
		estimated []model.EstimatedPayment
		schedule  []model.ScheduleEntry
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		etfs, err = s.etfRepo.GetAll()
		return err
	})
	g.Go(func() (err error) {
		holdings, err = s.holdingRepo.GetAll()
		return err
	})
	g.Go(func() (err error) {
		confirmed, err = s.paymentRepo.GetConfirmed()
		return err
	})
	g.Go(func() (err error) {
		estimated, err = s.paymentRepo.GetEstimated()
		return err
	})
	g.Go(func() (err error) {
		schedule, err = s.scheduleRepo.GetAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	dataset := model.NewDataset(etfs, holdings, confirmed, estimated, schedule)

	skipped := countOrphanedRecords(dataset)
	if skipped > 0 {
		log.Printf("snapshot: %d payment records reference symbols with no holdings and will be skipped", skipped)
	}
	s.skipped.Store(int64(skipped))

	s.current.Store(dataset)
	return nil
}

// Current returns the most recently published dataset. Before the first
// Load it returns an empty dataset rather than nil so that read paths
// stay total.
func (s *SnapshotService) Current() *model.Dataset {
	if d := s.current.Load(); d != nil {
		return d
	}
	return model.NewDataset(nil, nil, nil, nil, nil)
}

// SkippedRecords reports how many payment records the latest snapshot
// carries for symbols that have no holdings entry.
func (s *SnapshotService) SkippedRecords() int {
	return int(s.skipped.Load())
}

func countOrphanedRecords(d *model.Dataset) int {
	count := 0
	for _, p := range d.Confirmed {
		if _, ok := d.Positions(p.Symbol); !ok {
			count++
		}
	}
	for _, p := range d.Estimated {
		if _, ok := d.Positions(p.Symbol); !ok {
			count++
		}
	}
	return count
}
