package database_test

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package

	"github.com/mphinance/yieldmax/internal/database"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// TestSeed tests the reference dataset seeding.
//
// WHY: Seeding runs on every server start. It must fill all five tables
// on a fresh database, normalize every date to the canonical form, and
// be a no-op on a database that already has data — a duplicate run
// would violate primary keys.
func TestSeed(t *testing.T) {
	t.Run("populates all reference tables", func(t *testing.T) {
		db := setupDB(t)

		if err := database.Seed(db); err != nil {
			t.Fatalf("Seed() returned unexpected error: %v", err)
		}

		counts := map[string]int{
			"etf":               12,
			"holding":           24,
			"confirmed_payment": 33,
			"estimated_payment": 57,
		}
		for table, want := range counts {
			var got int
			if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
				t.Fatalf("Failed to count %s: %v", table, err)
			}
			if got != want {
				t.Errorf("Expected %d rows in %s, got %d", want, table, got)
			}
		}

		var scheduleCount int
		if err := db.QueryRow("SELECT COUNT(*) FROM schedule_entry").Scan(&scheduleCount); err != nil {
			t.Fatalf("Failed to count schedule_entry: %v", err)
		}
		if scheduleCount == 0 {
			t.Error("Expected schedule entries")
		}
	})

	t.Run("normalizes schedule dates to canonical form", func(t *testing.T) {
		db := setupDB(t)

		if err := database.Seed(db); err != nil {
			t.Fatalf("Seed() returned unexpected error: %v", err)
		}

		// Schedule source data is in M/D/YY form; stored dates must not be.
		var bad int
		err := db.QueryRow(`
			SELECT COUNT(*) FROM schedule_entry
			WHERE payment_date LIKE '%/%'
		`).Scan(&bad)
		if err != nil {
			t.Fatalf("Failed to query schedule_entry: %v", err)
		}
		if bad != 0 {
			t.Errorf("Expected all schedule dates normalized, found %d in short form", bad)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := setupDB(t)

		if err := database.Seed(db); err != nil {
			t.Fatalf("First Seed() returned unexpected error: %v", err)
		}
		if err := database.Seed(db); err != nil {
			t.Fatalf("Second Seed() returned unexpected error: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM etf").Scan(&count); err != nil {
			t.Fatalf("Failed to count etf: %v", err)
		}
		if count != 12 {
			t.Errorf("Expected 12 registry rows after double seed, got %d", count)
		}
	})
}
