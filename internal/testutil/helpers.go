package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/mphinance/yieldmax/internal/config"
	"github.com/mphinance/yieldmax/internal/repository"
	"github.com/mphinance/yieldmax/internal/service"
)

// MakeID generates a unique ID for test records.
func MakeID() string {
	return uuid.NewString()
}

// TestProjectionConfig returns the production default projection
// constants, so tests exercise the same boundaries the service ships
// with.
func TestProjectionConfig() config.ProjectionConfig {
	return config.ProjectionConfig{
		NearTermDays:      14,
		MidTermDays:       30,
		AvgWeeklyPerShare: 0.30,
		FlatTaxRate:       0.22,
	}
}

// NewTestSnapshotService creates a SnapshotService over the given
// database and loads the initial snapshot.
func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshots := service.NewSnapshotService(
		repository.NewETFRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewScheduleRepository(db),
	)
	if err := snapshots.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load test snapshot: %v", err)
	}

	return snapshots
}

func NewTestProjectionService(t *testing.T, db *sql.DB) *service.ProjectionService {
	t.Helper()

	return service.NewProjectionService(NewTestSnapshotService(t, db), TestProjectionConfig())
}

func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	return service.NewDividendService(NewTestProjectionService(t, db))
}

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(NewTestSnapshotService(t, db), TestProjectionConfig())
}

func NewTestScheduleService(t *testing.T, db *sql.DB) *service.ScheduleService {
	t.Helper()

	return service.NewScheduleService(NewTestSnapshotService(t, db))
}
