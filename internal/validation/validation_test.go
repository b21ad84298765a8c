package validation_test

import (
	"errors"
	"testing"

	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/validation"
)

// TestValidateDate tests date parameter validation.
//
// WHY: Date path parameters come straight from URLs. Both accepted date
// forms must pass, and garbage must map to the invalid-date sentinel so
// handlers can return 400 instead of 500.
func TestValidateDate(t *testing.T) {
	t.Run("accepts both date forms", func(t *testing.T) {
		for _, s := range []string{"2025-07-11", "7/11/25"} {
			d, err := validation.ValidateDate(s)
			if err != nil {
				t.Errorf("ValidateDate(%q) returned unexpected error: %v", s, err)
			}
			if d != dates.MustParse("2025-07-11") {
				t.Errorf("ValidateDate(%q) = %s, want 2025-07-11", s, d)
			}
		}
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		for _, s := range []string{"", "  ", "tomorrow", "2025-13-40"} {
			if _, err := validation.ValidateDate(s); !errors.Is(err, apperrors.ErrInvalidDate) {
				t.Errorf("ValidateDate(%q): expected ErrInvalidDate, got %v", s, err)
			}
		}
	})
}

// TestValidateLimit tests limit query validation.
//
// WHY: The limit parameter is optional with a default; when present it
// must be a non-negative integer. Clamping a negative value silently
// would hide caller bugs.
func TestValidateLimit(t *testing.T) {
	t.Run("empty input yields the default", func(t *testing.T) {
		limit, err := validation.ValidateLimit("", 8)
		if err != nil {
			t.Fatalf("ValidateLimit() returned unexpected error: %v", err)
		}
		if limit != 8 {
			t.Errorf("Expected default 8, got %d", limit)
		}
	})

	t.Run("parses valid limits including zero", func(t *testing.T) {
		for input, want := range map[string]int{"0": 0, "5": 5, "100": 100} {
			limit, err := validation.ValidateLimit(input, 8)
			if err != nil {
				t.Errorf("ValidateLimit(%q) returned unexpected error: %v", input, err)
			}
			if limit != want {
				t.Errorf("ValidateLimit(%q) = %d, want %d", input, limit, want)
			}
		}
	})

	t.Run("rejects negative and non-integer input", func(t *testing.T) {
		for _, input := range []string{"-1", "eight", "3.5"} {
			if _, err := validation.ValidateLimit(input, 8); !errors.Is(err, apperrors.ErrInvalidLimit) {
				t.Errorf("ValidateLimit(%q): expected ErrInvalidLimit, got %v", input, err)
			}
		}
	})
}

// TestValidateMonth tests (year, month) pair validation.
//
// WHY: Months are 1-based at the API boundary. Zero and thirteen are
// the classic off-by-one inputs and must both be rejected.
func TestValidateMonth(t *testing.T) {
	t.Run("accepts the full 1-12 range", func(t *testing.T) {
		year, month, err := validation.ValidateMonth("2025", "7")
		if err != nil {
			t.Fatalf("ValidateMonth() returned unexpected error: %v", err)
		}
		if year != 2025 || month != 7 {
			t.Errorf("Expected (2025, 7), got (%d, %d)", year, month)
		}
	})

	t.Run("rejects out-of-range months", func(t *testing.T) {
		for _, m := range []string{"0", "13", "", "July"} {
			if _, _, err := validation.ValidateMonth("2025", m); !errors.Is(err, apperrors.ErrInvalidMonth) {
				t.Errorf("ValidateMonth(2025, %q): expected ErrInvalidMonth, got %v", m, err)
			}
		}
	})

	t.Run("rejects bad years", func(t *testing.T) {
		for _, y := range []string{"0", "-2025", ""} {
			if _, _, err := validation.ValidateMonth(y, "7"); !errors.Is(err, apperrors.ErrInvalidYear) {
				t.Errorf("ValidateMonth(%q, 7): expected ErrInvalidYear, got %v", y, err)
			}
		}
	})
}

// TestValidateAccountType tests account-type query validation.
func TestValidateAccountType(t *testing.T) {
	t.Run("accepts the two known types", func(t *testing.T) {
		for _, s := range []string{"taxable", "tax-sheltered"} {
			accountType, err := validation.ValidateAccountType(s)
			if err != nil {
				t.Errorf("ValidateAccountType(%q) returned unexpected error: %v", s, err)
			}
			if string(accountType) != s {
				t.Errorf("ValidateAccountType(%q) = %q", s, accountType)
			}
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, s := range []string{"", "margin", "Taxable"} {
			if _, err := validation.ValidateAccountType(s); !errors.Is(err, apperrors.ErrInvalidAccountType) {
				t.Errorf("ValidateAccountType(%q): expected ErrInvalidAccountType, got %v", s, err)
			}
		}
	})
}

// TestValidateSymbol tests symbol path-parameter validation.
func TestValidateSymbol(t *testing.T) {
	t.Run("uppercases and trims", func(t *testing.T) {
		symbol, err := validation.ValidateSymbol(" ulty ")
		if err != nil {
			t.Fatalf("ValidateSymbol() returned unexpected error: %v", err)
		}
		if symbol != "ULTY" {
			t.Errorf("Expected ULTY, got %q", symbol)
		}
	})

	t.Run("rejects empty symbols", func(t *testing.T) {
		if _, err := validation.ValidateSymbol("  "); !errors.Is(err, apperrors.ErrSymbolNotFound) {
			t.Errorf("Expected ErrSymbolNotFound, got %v", err)
		}
	})
}

// TestError tests the field-level validation error type.
func TestError(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{"limit": "must be non-negative"}}
	if err.Error() != "limit: must be non-negative" {
		t.Errorf("Unexpected error string: %q", err.Error())
	}
}
