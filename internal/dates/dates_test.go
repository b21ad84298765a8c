package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mphinance/yieldmax/internal/dates"
)

// TestParse tests date string parsing.
//
// WHY: Upstream data carries dates in two forms: canonical YYYY-MM-DD in
// the payment tables and short M/D/YY in the published schedule. Both
// must normalize to the same Date, and everything else must be rejected
// so malformed data fails at ingestion rather than surfacing as wrong
// calendar placement later.
func TestParse(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		d, err := dates.Parse("2025-07-11")
		if err != nil {
			t.Fatalf("Parse() returned unexpected error: %v", err)
		}
		if d.Year() != 2025 || d.Month() != time.July || d.Day() != 11 {
			t.Errorf("Expected 2025-07-11, got %s", d)
		}
	})

	t.Run("parses short schedule form", func(t *testing.T) {
		d, err := dates.Parse("7/11/25")
		if err != nil {
			t.Fatalf("Parse() returned unexpected error: %v", err)
		}
		if d != dates.MustParse("2025-07-11") {
			t.Errorf("Expected 2025-07-11, got %s", d)
		}
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, s := range []string{"", "11-07-2025", "July 11, 2025", "2025/07/11"} {
			if _, err := dates.Parse(s); err == nil {
				t.Errorf("Expected error for %q, got nil", s)
			}
		}
	})
}

// TestDate_Ordering tests Before, After, and DaysUntil.
//
// WHY: The projection engine keeps estimates only while their pay date
// is strictly after the evaluation date, and confidence tiers are
// boundaries on DaysUntil. Off-by-one errors here silently move
// payments between tiers or drop them.
func TestDate_Ordering(t *testing.T) {
	day := dates.MustParse("2025-07-11")

	t.Run("same day is neither before nor after", func(t *testing.T) {
		if day.Before(day) {
			t.Error("Expected Before(self) to be false")
		}
		if day.After(day) {
			t.Error("Expected After(self) to be false")
		}
	})

	t.Run("DaysUntil counts calendar days", func(t *testing.T) {
		if got := day.DaysUntil(day.Add(14)); got != 14 {
			t.Errorf("Expected 14 days, got %d", got)
		}
		if got := day.DaysUntil(day.Add(-3)); got != -3 {
			t.Errorf("Expected -3 days, got %d", got)
		}
	})

	t.Run("Add rolls over month boundaries", func(t *testing.T) {
		if got := dates.MustParse("2025-06-30").Add(1); got != dates.MustParse("2025-07-01") {
			t.Errorf("Expected 2025-07-01, got %s", got)
		}
	})
}

// TestDate_InMonth tests calendar-month membership.
//
// WHY: Monthly breakdowns partition events by (year, month). A date must
// match only its own month, including across year boundaries.
func TestDate_InMonth(t *testing.T) {
	d := dates.MustParse("2025-01-03")

	if !d.InMonth(2025, time.January) {
		t.Error("Expected 2025-01-03 to be in January 2025")
	}
	if d.InMonth(2025, time.February) {
		t.Error("Expected 2025-01-03 not to be in February 2025")
	}
	if d.InMonth(2024, time.January) {
		t.Error("Expected 2025-01-03 not to be in January 2024")
	}
}

// TestDate_JSON tests JSON encoding and decoding.
//
// WHY: Dates cross the API boundary as strings. The wire form must be
// the canonical one regardless of which input form a date was parsed
// from.
func TestDate_JSON(t *testing.T) {
	t.Run("marshals to canonical form", func(t *testing.T) {
		b, err := json.Marshal(dates.MustParse("7/4/25"))
		if err != nil {
			t.Fatalf("Marshal() returned unexpected error: %v", err)
		}
		if string(b) != `"2025-07-04"` {
			t.Errorf("Expected \"2025-07-04\", got %s", b)
		}
	})

	t.Run("unmarshals either form", func(t *testing.T) {
		var d dates.Date
		if err := json.Unmarshal([]byte(`"1/22/25"`), &d); err != nil {
			t.Fatalf("Unmarshal() returned unexpected error: %v", err)
		}
		if d != dates.MustParse("2025-01-22") {
			t.Errorf("Expected 2025-01-22, got %s", d)
		}
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		var d dates.Date
		if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
			t.Error("Expected error for malformed date, got nil")
		}
	})
}
