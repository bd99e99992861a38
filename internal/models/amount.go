package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an amount cannot be read as a number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDate is returned when a date is not in DateLayout form.
	ErrInvalidDate = errors.New("invalid date")
)

// ParseAmount coerces raw caller input such as "12.50", " 7 " or "1e2" into an amount.
// Surrounding quotes from a JSON string literal are stripped.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	f, _ := d.Float64()
	return f, nil
}

// ParseDate checks that s is a calendar date in DateLayout form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders t as a calendar date in DateLayout form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
