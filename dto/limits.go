package dto

// FacilityAmount is one proposed credit facility: the sanctioned amount and a
// fixed-format derivation string citing the inputs and constants used.
// Amounts are always clamped to be non-negative.
type FacilityAmount struct {
	Amount     float64 `json:"amount"`
	Derivation string  `json:"derivation"`
}

// RatioValue is a diagnostic ratio with its derivation. A ratio whose
// denominator is not positive is reported as zero, never infinite.
type RatioValue struct {
	Value      float64 `json:"value"`
	Derivation string  `json:"derivation"`
}

// CreditLimitResult is the output of the limit engine for one statement.
// CurrentAssets, OtherCurrentLiab and TotalDebt are the intermediate
// aggregates, exposed for the audit display.
type CreditLimitResult struct {
	WorkingCapitalLimit  FacilityAmount `json:"working_capital_limit"`
	TermLoanHeadroom     FacilityAmount `json:"term_loan_headroom"`
	LetterOfCreditLimit  FacilityAmount `json:"letter_of_credit_limit"`
	BankGuaranteeLimit   FacilityAmount `json:"bank_guarantee_limit"`
	BillDiscountingLimit FacilityAmount `json:"bill_discounting_limit"`

	Leverage RatioValue `json:"leverage"`
	DSCR     RatioValue `json:"dscr"`

	CurrentAssets    float64 `json:"current_assets"`
	OtherCurrentLiab float64 `json:"other_current_liabilities"`
	TotalDebt        float64 `json:"total_debt"`
}
