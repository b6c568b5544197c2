package underwriting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/underwriter/dto"
)

func statementOf(amounts map[dto.CanonicalItem]float64) dto.FinancialStatement {
	stmt := dto.FinancialStatement{Source: dto.SourceTable}
	for _, item := range dto.CanonicalItems {
		entry := dto.LineEntry{Item: item, Label: item.DisplayName(), Defaulted: true}
		if v, ok := amounts[item]; ok {
			entry.Amount = v
			entry.Defaulted = false
		}
		stmt.Entries = append(stmt.Entries, entry)
	}
	return stmt
}

func TestComputeLimitsWorkingCapital(t *testing.T) {
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemCashAndBank:             2000000,
		dto.ItemDebtors:                 6000000,
		dto.ItemInventory:               5000000,
		dto.ItemCreditors:               3500000,
		dto.ItemOtherCurrentLiabilities: 1000000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	assert.Equal(t, 13000000.0, result.CurrentAssets)
	assert.Equal(t, 4500000.0, result.OtherCurrentLiab)
	// 13,000,000 x 0.75 - 4,500,000
	assert.InDelta(t, 5250000.0, result.WorkingCapitalLimit.Amount, 0.01)
	assert.Contains(t, result.WorkingCapitalLimit.Derivation, "13000000.00")
	assert.Contains(t, result.WorkingCapitalLimit.Derivation, "4500000.00")
}

func TestComputeLimitsTermLoanHeadroom(t *testing.T) {
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemEBITDA:              6500000,
		dto.ItemShortTermBorrowings: 2500000,
		dto.ItemLongTermLoans:       7000000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	assert.Equal(t, 9500000.0, result.TotalDebt)
	// 6,500,000 x 3.5 - 9,500,000
	assert.InDelta(t, 13250000.0, result.TermLoanHeadroom.Amount, 0.01)
}

func TestComputeLimitsLetterOfCredit(t *testing.T) {
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemPurchases:        18000000,
		dto.ItemImportContentPct: 40,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	// (18,000,000 x 40% / 12) x 4
	assert.InDelta(t, 2400000.0, result.LetterOfCreditLimit.Amount, 0.01)
	assert.NotContains(t, result.LetterOfCreditLimit.Derivation, "unresolved")
}

func TestComputeLimitsLetterOfCreditDefaultImportContent(t *testing.T) {
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemPurchases: 18000000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	// Import content unresolved: policy default of 30% applies.
	// (18,000,000 x 30% / 12) x 4
	assert.InDelta(t, 1800000.0, result.LetterOfCreditLimit.Amount, 0.01)
	assert.Contains(t, result.LetterOfCreditLimit.Derivation, "unresolved")
}

func TestComputeLimitsGuaranteeAndDiscounting(t *testing.T) {
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemRevenue: 42000000,
		dto.ItemDebtors: 6000000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	assert.InDelta(t, 4200000.0, result.BankGuaranteeLimit.Amount, 0.01)
	assert.InDelta(t, 4800000.0, result.BillDiscountingLimit.Amount, 0.01)
}

func TestComputeLimitsRatios(t *testing.T) {
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemEBITDA:              6500000,
		dto.ItemShortTermBorrowings: 2500000,
		dto.ItemLongTermLoans:       7000000,
		dto.ItemInterestExpense:     950000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	assert.InDelta(t, 9500000.0/6500000.0, result.Leverage.Value, 1e-9)
	// DSCR = 6,500,000 / (950,000 + 9,500,000/5)
	assert.InDelta(t, 6500000.0/2850000.0, result.DSCR.Value, 1e-9)
}

func TestComputeLimitsAllZeroStatement(t *testing.T) {
	result := ComputeLimits(statementOf(nil), DefaultConfig())

	assert.Zero(t, result.WorkingCapitalLimit.Amount)
	assert.Zero(t, result.TermLoanHeadroom.Amount)
	assert.Zero(t, result.LetterOfCreditLimit.Amount)
	assert.Zero(t, result.BankGuaranteeLimit.Amount)
	assert.Zero(t, result.BillDiscountingLimit.Amount)
	assert.Zero(t, result.Leverage.Value)
	assert.Zero(t, result.DSCR.Value)
}

func TestComputeLimitsClampsNegatives(t *testing.T) {
	// Liabilities dwarf assets and debt dwarfs EBITDA: every facility still
	// comes out at zero, never negative.
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemCashAndBank:   100,
		dto.ItemCreditors:     5000000,
		dto.ItemEBITDA:        1000,
		dto.ItemLongTermLoans: 9000000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	assert.Zero(t, result.WorkingCapitalLimit.Amount)
	assert.Zero(t, result.TermLoanHeadroom.Amount)
	assert.GreaterOrEqual(t, result.Leverage.Value, 0.0)
}

func TestComputeLimitsNeverNaNOrInf(t *testing.T) {
	statements := []dto.FinancialStatement{
		statementOf(nil),
		statementOf(map[dto.CanonicalItem]float64{dto.ItemEBITDA: 0, dto.ItemLongTermLoans: 100}),
		statementOf(map[dto.CanonicalItem]float64{dto.ItemInterestExpense: 0}),
		{Source: dto.SourceDocument}, // not even populated
	}

	for _, stmt := range statements {
		result := ComputeLimits(stmt, DefaultConfig())
		for name, v := range map[string]float64{
			"wc":       result.WorkingCapitalLimit.Amount,
			"tl":       result.TermLoanHeadroom.Amount,
			"lc":       result.LetterOfCreditLimit.Amount,
			"bg":       result.BankGuaranteeLimit.Amount,
			"bd":       result.BillDiscountingLimit.Amount,
			"leverage": result.Leverage.Value,
			"dscr":     result.DSCR.Value,
		} {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s is not finite", name)
			require.GreaterOrEqual(t, v, 0.0, "%s is negative", name)
		}
	}
}

func TestMarginFormsAgree(t *testing.T) {
	// max(0, CA - margin(CA) - OCL) and max(0, CA x 0.75 - OCL) are the same
	// formula at the default margin.
	stmt := statementOf(map[dto.CanonicalItem]float64{
		dto.ItemCashAndBank: 2000000,
		dto.ItemDebtors:     6000000,
		dto.ItemInventory:   5000000,
		dto.ItemCreditors:   4500000,
	})

	result := ComputeLimits(stmt, DefaultConfig())

	ca := 13000000.0
	ocl := 4500000.0
	assert.InDelta(t, ca-0.25*ca-ocl, result.WorkingCapitalLimit.Amount, 1e-6)
	assert.InDelta(t, ca*0.75-ocl, result.WorkingCapitalLimit.Amount, 1e-6)
}
