package service_test

import (
	"context"
	"testing"

	"github.com/mphinance/yieldmax/internal/database"
	"github.com/mphinance/yieldmax/internal/testutil"
)

// TestSnapshotService_Load tests snapshot loading and republication.
//
// WHY: Every query reads through the published snapshot. Loading must
// surface the full dataset, and a reload must pick up data written
// since the previous load — that is the whole point of the refresh job.
func TestSnapshotService_Load(t *testing.T) {
	t.Run("publishes the loaded dataset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewETF("ULTY").Established().Build(t, db)
		testutil.NewPosition("ULTY", 600).Build(t, db)
		testutil.NewPayment("ULTY", "0.3405", "2025-06-06").Build(t, db)

		snapshots := testutil.NewTestSnapshotService(t, db)
		dataset := snapshots.Current()

		if len(dataset.ETFs) != 1 || len(dataset.Holdings) != 1 || len(dataset.Confirmed) != 1 {
			t.Errorf("Expected 1 ETF, 1 holding, 1 confirmed payment, got %d/%d/%d",
				len(dataset.ETFs), len(dataset.Holdings), len(dataset.Confirmed))
		}
		if _, ok := dataset.ETF("ULTY"); !ok {
			t.Error("Expected ULTY in the registry index")
		}
	})

	t.Run("reload picks up new rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewETF("ULTY").Established().Build(t, db)
		testutil.NewPosition("ULTY", 600).Build(t, db)

		snapshots := testutil.NewTestSnapshotService(t, db)

		testutil.NewPayment("ULTY", "0.3405", "2025-06-06").Build(t, db)
		if err := snapshots.Load(context.Background()); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		if len(snapshots.Current().Confirmed) != 1 {
			t.Errorf("Expected reloaded snapshot to carry the new payment, got %d",
				len(snapshots.Current().Confirmed))
		}
	})

	t.Run("counts records without holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewETF("ULTY").Established().Build(t, db)
		testutil.NewETF("NVDY").Established().Build(t, db)
		testutil.NewPosition("ULTY", 600).Build(t, db)
		testutil.NewPayment("ULTY", "0.3405", "2025-06-06").Build(t, db)
		testutil.NewPayment("NVDY", "0.5000", "2025-06-06").Build(t, db)
		testutil.NewPayment("NVDY", "0.5000", "2025-07-04").Estimated().Build(t, db)

		snapshots := testutil.NewTestSnapshotService(t, db)

		if got := snapshots.SkippedRecords(); got != 2 {
			t.Errorf("Expected 2 skipped records, got %d", got)
		}
	})
}

// TestSnapshotService_SeededDataset tests the shipped seed data through
// the snapshot pipeline.
//
// WHY: The seed is the production dataset. Loading it end to end guards
// against a seed row that the repositories cannot parse, which would
// otherwise only surface at server startup.
func TestSnapshotService_SeededDataset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed() returned unexpected error: %v", err)
	}

	snapshots := testutil.NewTestSnapshotService(t, db)
	dataset := snapshots.Current()

	if len(dataset.ETFs) != 12 {
		t.Errorf("Expected 12 registry entries, got %d", len(dataset.ETFs))
	}
	if len(dataset.Holdings) != 12 {
		t.Errorf("Expected positions for 12 symbols, got %d", len(dataset.Holdings))
	}
	if len(dataset.Schedule) == 0 {
		t.Error("Expected a non-empty payment calendar")
	}

	// Every payment record in the seed belongs to a held symbol.
	if got := snapshots.SkippedRecords(); got != 0 {
		t.Errorf("Expected no skipped records in the seed, got %d", got)
	}
}
