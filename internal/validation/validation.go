package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

// Error carries field-level validation failures.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateDate parses a calendar-day string, rejecting anything that is
// not in an accepted date form.
func ValidateDate(s string) (dates.Date, error) {
	if strings.TrimSpace(s) == "" {
		return dates.Date{}, fmt.Errorf("%w: date is required", apperrors.ErrInvalidDate)
	}
	d, err := dates.Parse(s)
	if err != nil {
		return dates.Date{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidDate, s)
	}
	return d, nil
}

// ValidateLimit parses a non-negative integer limit. An empty string
// yields the provided default.
func ValidateLimit(s string, defaultLimit int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", apperrors.ErrInvalidLimit, s)
	}
	if limit < 0 {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrInvalidLimit, limit)
	}
	return limit, nil
}

// ValidateMonth parses a (year, month) pair. Month is 1-based.
func ValidateMonth(yearStr, monthStr string) (year, month int, err error) {
	year, err = strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidYear, yearStr)
	}
	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidMonth, monthStr)
	}
	return year, month, nil
}

// ValidateAccountType parses an account-type query value.
func ValidateAccountType(s string) (model.AccountType, error) {
	accountType := model.AccountType(s)
	if !accountType.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, s)
	}
	return accountType, nil
}

// ValidateSymbol checks that a symbol path parameter is present.
func ValidateSymbol(s string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(s))
	if symbol == "" {
		return "", fmt.Errorf("%w: symbol is required", apperrors.ErrSymbolNotFound)
	}
	return symbol, nil
}
