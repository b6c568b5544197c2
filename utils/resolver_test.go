package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameLineLocator(t *testing.T) {
	text := "Cash & Bank Balances    2,000,000.00\nSundry Debtors    6,000,000.00\n"

	raw, ok := SameLineLocator(text, "Cash")
	assert.True(t, ok)
	assert.Equal(t, "2,000,000.00", raw)

	raw, ok = SameLineLocator(text, "Debtors")
	assert.True(t, ok)
	assert.Equal(t, "6,000,000.00", raw)

	_, ok = SameLineLocator(text, "Inventory")
	assert.False(t, ok)
}

func TestSameLineLocatorStaysOnLine(t *testing.T) {
	// Label on one line, amount on the next: no match under this policy.
	text := "EBITDA\n6,500,000.00\n"
	_, ok := SameLineLocator(text, "EBITDA")
	assert.False(t, ok)
}

func TestSameLineLocatorIgnoresBareIntegers(t *testing.T) {
	// Years and note references without decimals are not amounts.
	text := "Interest note 12 for FY 2024 charges 450,000.00\n"
	raw, ok := SameLineLocator(text, "Interest")
	assert.True(t, ok)
	assert.Equal(t, "450,000.00", raw)
}

func TestProximityLocatorCrossesLines(t *testing.T) {
	text := "EBITDA\n6,500,000.00\n"

	raw, ok := ProximityLocator(64)(text, "EBITDA")
	assert.True(t, ok)
	assert.Equal(t, "6,500,000.00", raw)

	_, ok = ProximityLocator(4)(text, "EBITDA")
	assert.False(t, ok, "amount outside the window must not match")
}

func TestLastNumericCellPicker(t *testing.T) {
	raw, ok := LastNumericCellPicker([]string{"Sundry Creditors", "Opening", "3,500,000.00"})
	assert.True(t, ok)
	assert.Equal(t, "3,500,000.00", raw)

	raw, ok = LastNumericCellPicker([]string{"Inventory (Stock)", "5,000,000.00", "see note 4"})
	assert.True(t, ok)
	assert.Equal(t, "5,000,000.00", raw)

	_, ok = LastNumericCellPicker([]string{"Particulars", "Opening", "Closing"})
	assert.False(t, ok)
}

func TestLastNumericCellPickerCurrencyAndPercent(t *testing.T) {
	raw, ok := LastNumericCellPicker([]string{"Import Content (%)", "30%"})
	assert.True(t, ok)
	assert.Equal(t, "30%", raw)

	raw, ok = LastNumericCellPicker([]string{"Cash & Bank", "₹2,000,000.00"})
	assert.True(t, ok)
	assert.Equal(t, "₹2,000,000.00", raw)
}
