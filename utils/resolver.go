package utils

import (
	"regexp"
	"strings"
)

// Resolution heuristics are named policies so they can be swapped without
// touching the parsers. Both defaults are carried over from observed filing
// behavior and have known failure modes on multi-column statements.

// TextLocator locates, for one label pattern, the raw numeric token that
// belongs to it inside a free-text buffer. ok is false when the pattern has
// no usable match; the caller then tries the next pattern.
type TextLocator func(text, pattern string) (raw string, ok bool)

// RowValuePicker picks the raw value cell out of a row whose cells already
// matched a label pattern. ok is false when the row carries no usable value.
type RowValuePicker func(row []string) (raw string, ok bool)

// decimalToken matches an amount written with two decimals, the form used by
// audited statements ("2,000,000.00"). Requiring the decimals keeps years,
// note numbers and schedule references from being mistaken for amounts.
const decimalToken = `([0-9][0-9,]*\.[0-9]{2})`

// SameLineLocator takes the first decimal-looking token that follows the
// label on the same line. The line boundary is the lookahead window.
func SameLineLocator(text, pattern string) (string, bool) {
	re, err := regexp.Compile(`(?i)` + pattern + `[^\n]*?` + decimalToken)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// ProximityLocator returns a locator whose lookahead window is a fixed number
// of characters past the label, crossing line breaks. Alternative policy for
// statements where labels and amounts end up on separate lines.
func ProximityLocator(window int) TextLocator {
	return func(text, pattern string) (string, bool) {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			return "", false
		}
		loc := re.FindStringIndex(text)
		if loc == nil {
			return "", false
		}
		end := loc[1] + window
		if end > len(text) {
			end = len(text)
		}
		m := regexp.MustCompile(decimalToken).FindStringSubmatch(text[loc[1]:end])
		if len(m) < 2 {
			return "", false
		}
		return m[1], true
	}
}

// numericCell matches a cell that is an amount on its own: an optional short
// non-digit prefix (currency symbol), digits with separators, optional
// decimals, optional percent sign.
var numericCell = regexp.MustCompile(`^\s*[^0-9\s]{0,3}\s*[0-9][0-9,]*(\.[0-9]+)?\s*%?\s*$`)

// LastNumericCellPicker assumes labels precede values left to right and
// takes the last numeric-looking cell of the row.
func LastNumericCellPicker(row []string) (string, bool) {
	for i := len(row) - 1; i >= 0; i-- {
		if numericCell.MatchString(row[i]) {
			return strings.TrimSpace(row[i]), true
		}
	}
	return "", false
}

// rowMatchesLabel reports whether any cell of the row contains the label
// pattern, case-insensitively.
func rowMatchesLabel(row []string, pattern string) bool {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return false
	}
	for _, cell := range row {
		if re.MatchString(cell) {
			return true
		}
	}
	return false
}
