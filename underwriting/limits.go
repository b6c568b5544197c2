// Package underwriting computes bank credit-facility limits from a
// normalized financial statement. The engine is a pure function: same
// statement and config in, same limits and derivation trail out. Every input
// is an already-defaulted non-negative float, so no computation here can
// fail; degenerate denominators yield zero ratios and every facility amount
// is independently clamped at zero.
package underwriting

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/credlens/underwriter/dto"
)

// Config holds the underwriting constants. The working-capital margin
// follows MPBF Method II: permissible finance is current assets less a
// margin, less other current liabilities.
type Config struct {
	CurrentAssetMargin    float64 // haircut fraction applied to current assets
	EBITDAMultiple        float64 // sustainable debt as a multiple of EBITDA
	LCExposureMonths      float64 // months of import purchases covered by LCs
	DefaultImportPct      float64 // substituted when import content is unresolved
	GuaranteePctOfRevenue float64
	DiscountPctOfDebtors  float64
	DebtAmortYears        float64 // assumed principal repayment horizon for DSCR
}

// DefaultConfig returns the standing policy constants.
func DefaultConfig() Config {
	return Config{
		CurrentAssetMargin:    0.25,
		EBITDAMultiple:        3.5,
		LCExposureMonths:      4,
		DefaultImportPct:      30,
		GuaranteePctOfRevenue: 0.10,
		DiscountPctOfDebtors:  0.80,
		DebtAmortYears:        5,
	}
}

// ComputeLimits derives the facility limits and diagnostic ratios for one
// statement. No facility references another facility's output.
func ComputeLimits(stmt dto.FinancialStatement, cfg Config) dto.CreditLimitResult {
	cash := stmt.Amount(dto.ItemCashAndBank)
	debtors := stmt.Amount(dto.ItemDebtors)
	inventory := stmt.Amount(dto.ItemInventory)
	creditors := stmt.Amount(dto.ItemCreditors)
	otherCL := stmt.Amount(dto.ItemOtherCurrentLiabilities)
	shortTerm := stmt.Amount(dto.ItemShortTermBorrowings)
	longTerm := stmt.Amount(dto.ItemLongTermLoans)
	ebitda := stmt.Amount(dto.ItemEBITDA)
	revenue := stmt.Amount(dto.ItemRevenue)
	purchases := stmt.Amount(dto.ItemPurchases)
	interest := stmt.Amount(dto.ItemInterestExpense)
	importPct := stmt.Amount(dto.ItemImportContentPct)

	ca := cash + debtors + inventory
	ocl := creditors + otherCL
	totalDebt := shortTerm + longTerm

	result := dto.CreditLimitResult{
		CurrentAssets:    ca,
		OtherCurrentLiab: ocl,
		TotalDebt:        totalDebt,
	}

	wc := clamp(ca*(1-cfg.CurrentAssetMargin) - ocl)
	result.WorkingCapitalLimit = dto.FacilityAmount{
		Amount: wc,
		Derivation: fmt.Sprintf("max(0, CA %s x (1 - %.2f) - OCL %s) = %s",
			money(ca), cfg.CurrentAssetMargin, money(ocl), money(wc)),
	}

	tl := clamp(ebitda*cfg.EBITDAMultiple - totalDebt)
	result.TermLoanHeadroom = dto.FacilityAmount{
		Amount: tl,
		Derivation: fmt.Sprintf("max(0, EBITDA %s x %.1f - total debt %s) = %s",
			money(ebitda), cfg.EBITDAMultiple, money(totalDebt), money(tl)),
	}

	importNote := ""
	if importPct <= 0 {
		importPct = cfg.DefaultImportPct
		importNote = fmt.Sprintf(" [import content unresolved, policy default %.0f%% applied]", cfg.DefaultImportPct)
	}
	lc := clamp(purchases * importPct / 100 / 12 * cfg.LCExposureMonths)
	result.LetterOfCreditLimit = dto.FacilityAmount{
		Amount: lc,
		Derivation: fmt.Sprintf("(purchases %s x import content %.0f%% / 12) x %.0f months = %s%s",
			money(purchases), importPct, cfg.LCExposureMonths, money(lc), importNote),
	}

	bg := clamp(revenue * cfg.GuaranteePctOfRevenue)
	result.BankGuaranteeLimit = dto.FacilityAmount{
		Amount: bg,
		Derivation: fmt.Sprintf("revenue %s x %.0f%% = %s",
			money(revenue), cfg.GuaranteePctOfRevenue*100, money(bg)),
	}

	bd := clamp(debtors * cfg.DiscountPctOfDebtors)
	result.BillDiscountingLimit = dto.FacilityAmount{
		Amount: bd,
		Derivation: fmt.Sprintf("debtors %s x %.0f%% = %s",
			money(debtors), cfg.DiscountPctOfDebtors*100, money(bd)),
	}

	result.Leverage = leverage(totalDebt, ebitda)
	result.DSCR = coverage(ebitda, interest, totalDebt, cfg.DebtAmortYears)

	return result
}

func leverage(totalDebt, ebitda float64) dto.RatioValue {
	if ebitda <= 0 {
		return dto.RatioValue{Derivation: "EBITDA is not positive, leverage reported as 0"}
	}
	v := totalDebt / ebitda
	return dto.RatioValue{
		Value: v,
		Derivation: fmt.Sprintf("total debt %s / EBITDA %s = %.2fx",
			money(totalDebt), money(ebitda), v),
	}
}

func coverage(ebitda, interest, totalDebt, amortYears float64) dto.RatioValue {
	principal := 0.0
	if amortYears > 0 {
		principal = totalDebt / amortYears
	}
	service := interest + principal
	if service <= 0 {
		return dto.RatioValue{Derivation: "no debt service obligations, DSCR reported as 0"}
	}
	v := ebitda / service
	return dto.RatioValue{
		Value: v,
		Derivation: fmt.Sprintf("EBITDA %s / (interest %s + total debt / %.0f = %s) = %.2f",
			money(ebitda), money(interest), amortYears, money(principal), v),
	}
}

func clamp(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// money renders an amount with two fixed decimals so derivation strings stay
// stable regardless of float representation.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
