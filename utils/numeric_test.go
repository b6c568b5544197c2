package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"₹1,23,456.00", 123456.0},
		{"1,234.56", 1234.56},
		{"Rs. 50,000", 50000.0},
		{"$2,000,000.00", 2000000.0},
		{"30%", 30.0},
		{"3 500 000", 3500000.0},
		{"N/A", 0.0},
		{"", 0.0},
		{"-", 0.0},
		{"n.a.", 0.0},
		{"1.2.3", 0.0},
		{"0.00", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanNumeric(tt.input))
		})
	}
}

func TestCleanNumericIdempotent(t *testing.T) {
	for _, raw := range []string{"₹1,23,456.00", "987654.32", "30%", "garbage"} {
		once := CleanNumeric(raw)
		again := CleanNumeric(strconv.FormatFloat(once, 'f', -1, 64))
		assert.Equal(t, once, again, "normalizing %q twice changed the value", raw)
	}
}

func TestCleanNumericNeverNegative(t *testing.T) {
	for _, raw := range []string{"-5,000.00", "(2,500.00)", "minus 12"} {
		assert.GreaterOrEqual(t, CleanNumeric(raw), 0.0)
	}
}
