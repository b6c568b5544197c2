package utils

import (
	"math"
	"regexp"
	"strconv"
)

var nonNumericChars = regexp.MustCompile(`[^0-9.]`)

// CleanNumeric parses an arbitrary raw token such as "₹1,23,456.00",
// "3 500 000" or "30%" into a non-negative amount. Every rune that is not a
// digit or a decimal point is stripped first; anything that still fails to
// parse (including "N/A" and the empty string) becomes 0 so a missing or
// mangled figure never aborts an analysis. Idempotent on its own output.
func CleanNumeric(raw string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
