package dto

// CanonicalItem identifies one of the fixed financial line items the engine
// operates on, regardless of the vocabulary of the source document or feed.
type CanonicalItem string

const (
	ItemCashAndBank             CanonicalItem = "cash_and_bank"
	ItemDebtors                 CanonicalItem = "debtors"
	ItemInventory               CanonicalItem = "inventory"
	ItemCreditors               CanonicalItem = "creditors"
	ItemOtherCurrentLiabilities CanonicalItem = "other_current_liabilities"
	ItemShortTermBorrowings     CanonicalItem = "short_term_borrowings"
	ItemLongTermLoans           CanonicalItem = "long_term_loans"
	ItemTangibleNetWorth        CanonicalItem = "tangible_net_worth"
	ItemEBITDA                  CanonicalItem = "ebitda"
	ItemRevenue                 CanonicalItem = "revenue"
	ItemPurchases               CanonicalItem = "purchases"
	ItemInterestExpense         CanonicalItem = "interest_expense"
	ItemImportContentPct        CanonicalItem = "import_content_pct"
)

// CanonicalItems lists every item in audit display order. A statement always
// carries exactly one entry per item, in this order.
var CanonicalItems = []CanonicalItem{
	ItemCashAndBank,
	ItemDebtors,
	ItemInventory,
	ItemCreditors,
	ItemOtherCurrentLiabilities,
	ItemShortTermBorrowings,
	ItemLongTermLoans,
	ItemTangibleNetWorth,
	ItemEBITDA,
	ItemRevenue,
	ItemPurchases,
	ItemInterestExpense,
	ItemImportContentPct,
}

var displayNames = map[CanonicalItem]string{
	ItemCashAndBank:             "Cash & Bank Balances",
	ItemDebtors:                 "Sundry Debtors (Receivables)",
	ItemInventory:               "Inventory (Stock)",
	ItemCreditors:               "Sundry Creditors (Trade)",
	ItemOtherCurrentLiabilities: "Other Current Liabilities",
	ItemShortTermBorrowings:     "Short Term Bank Borrowings",
	ItemLongTermLoans:           "Long Term Loans",
	ItemTangibleNetWorth:        "Tangible Net Worth",
	ItemEBITDA:                  "EBITDA",
	ItemRevenue:                 "Annual Turnover (Revenue)",
	ItemPurchases:               "Total Raw Material Purchases",
	ItemInterestExpense:         "Interest & Finance Charges",
	ItemImportContentPct:        "Import Content (%)",
}

// DisplayName returns the statement label used in audit tables.
func (c CanonicalItem) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// SourceType tells which adapter produced a statement.
type SourceType string

const (
	SourceDocument SourceType = "document"
	SourceTable    SourceType = "table"
	SourceFeed     SourceType = "feed"
)

// LineEntry is one resolved line of a financial statement. MatchedPattern and
// RawToken record how the amount was located, for the audit trail. Defaulted
// means no pattern matched and the amount was set to zero; an explicit zero in
// the source keeps Defaulted false with the raw token preserved.
type LineEntry struct {
	Item           CanonicalItem `json:"item"`
	Label          string        `json:"label"`
	Amount         float64       `json:"amount"`
	MatchedPattern string        `json:"matched_pattern,omitempty"`
	RawToken       string        `json:"raw_token,omitempty"`
	Defaulted      bool          `json:"defaulted"`
}

// FinancialStatement is the normalized output of a source adapter: one entry
// per canonical item, in canonical order. Issues carry soft failures such as
// an unreadable source; a statement with issues is still fully populated and
// safe to compute limits on.
type FinancialStatement struct {
	Source  SourceType  `json:"source"`
	Entries []LineEntry `json:"entries"`
	Issues  []string    `json:"issues,omitempty"`
}

// Amount returns the resolved value for an item, zero when absent.
func (s *FinancialStatement) Amount(item CanonicalItem) float64 {
	for _, e := range s.Entries {
		if e.Item == item {
			return e.Amount
		}
	}
	return 0
}

// Entry returns the entry for an item, if present.
func (s *FinancialStatement) Entry(item CanonicalItem) (LineEntry, bool) {
	for _, e := range s.Entries {
		if e.Item == item {
			return e, true
		}
	}
	return LineEntry{}, false
}

// FeedPeriod is one reporting period from the external market-data feed, in
// the feed's own field vocabulary. Values stay raw tokens so the numeric
// normalizer applies uniformly across all sources.
type FeedPeriod struct {
	Period string            `json:"period"`
	Fields map[string]string `json:"fields"`
}

// CompanyMeta is feed-side company information. It travels alongside the
// statement, never inside it.
type CompanyMeta struct {
	Symbol   string `json:"symbol,omitempty"`
	Name     string `json:"name,omitempty"`
	Sector   string `json:"sector,omitempty"`
	Currency string `json:"currency,omitempty"`
}
