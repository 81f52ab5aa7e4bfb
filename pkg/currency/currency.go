// Package currency converts between integer minor-unit amounts and the
// major-unit decimal strings shown to (and typed by) humans. Amounts stay in
// minor units everywhere else.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// MinorPerMajor is the minor units per major currency unit.
const MinorPerMajor = 100

var (
	ErrAmountInvalid     = errors.New("amount is not a valid decimal number")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrAmountPrecision   = errors.New("amount has more than two decimal places")
)

// FormatMinor renders a minor-unit amount as a display string, e.g.
// FormatMinor(2500) == "$25.00".
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s$%d.%02d", sign, minor/MinorPerMajor, minor%MinorPerMajor)
}

// FormatMajor renders a whole major-unit amount, e.g. FormatMajor(25) == "$25".
func FormatMajor(major int64) string {
	return fmt.Sprintf("$%d", major)
}

// ParseMajor parses a human-entered major-unit decimal string ("25", "25.5",
// "25.50") into minor units. Negative, zero, non-numeric and more-than-two-
// decimal inputs are rejected.
func ParseMajor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrAmountInvalid
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrAmountInvalid
	}
	if hasFrac && len(frac) > 2 {
		return 0, ErrAmountPrecision
	}
	var minor int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, ErrAmountInvalid
		}
		minor = minor*10 + int64(r-'0')
		if minor > 1<<52 { // far beyond any sane contribution
			return 0, ErrAmountInvalid
		}
	}
	minor *= MinorPerMajor
	if hasFrac {
		scale := int64(10)
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0, ErrAmountInvalid
			}
			minor += int64(r-'0') * scale
			scale /= 10
		}
	}
	if minor <= 0 {
		return 0, ErrAmountNotPositive
	}
	return minor, nil
}

// ProgressPercent computes round(100*current/price) clamped into [0,100].
// A zero or negative price yields 0 rather than an error.
func ProgressPercent(currentMinor, priceMinor int64) int {
	if priceMinor <= 0 || currentMinor <= 0 {
		return 0
	}
	if currentMinor >= priceMinor {
		return 100
	}
	return int((currentMinor*100 + priceMinor/2) / priceMinor)
}
