package utils

import "github.com/credlens/underwriter/dto"

// itemAliases binds one canonical item to its ordered candidate patterns.
type itemAliases struct {
	Item     dto.CanonicalItem
	Patterns []string
}

// labelAliases is the single process-wide alias table for document and
// tabular sources. Patterns are tried in order and the first match wins for
// that item; label specificity is expressed by ordering, not scoring. The
// table is read-only configuration and safe for concurrent use.
var labelAliases = []itemAliases{
	{dto.ItemCashAndBank, []string{`Cash`}},
	{dto.ItemDebtors, []string{`Debtors`, `Receivables`}},
	{dto.ItemInventory, []string{`Inventory`, `Stock`}},
	{dto.ItemCreditors, []string{`Creditors`, `Payables`}},
	{dto.ItemOtherCurrentLiabilities, []string{`Other Current Liab`}},
	{dto.ItemShortTermBorrowings, []string{`Short Term Borrowing`, `Bank Borrowings`}},
	{dto.ItemLongTermLoans, []string{`Long Term`}},
	{dto.ItemTangibleNetWorth, []string{`Net Worth`}},
	{dto.ItemEBITDA, []string{`EBITDA`}},
	{dto.ItemRevenue, []string{`Turnover`, `Revenue`}},
	{dto.ItemPurchases, []string{`Purchases`}},
	{dto.ItemInterestExpense, []string{`Interest`}},
	{dto.ItemImportContentPct, []string{`Import`}},
}

// feedAliases is the synonym overlay for the external market-data feed,
// whose field names follow the feed's own schema rather than statement
// labels. Keys are exact field names, tried in order. Import content has no
// feed counterpart, so it always defaults and the limit engine substitutes
// its policy value.
var feedAliases = []itemAliases{
	{dto.ItemCashAndBank, []string{"CashAndCashEquivalents", "CashCashEquivalentsAndShortTermInvestments", "Cash"}},
	{dto.ItemDebtors, []string{"AccountsReceivable", "NetReceivables", "Receivables"}},
	{dto.ItemInventory, []string{"Inventory", "Inventories"}},
	{dto.ItemCreditors, []string{"AccountsPayable", "Payables"}},
	{dto.ItemOtherCurrentLiabilities, []string{"OtherCurrentLiabilities"}},
	{dto.ItemShortTermBorrowings, []string{"CurrentDebt", "ShortLongTermDebt", "CommercialPaper"}},
	{dto.ItemLongTermLoans, []string{"LongTermDebt", "LongTermDebtAndCapitalLeaseObligation"}},
	{dto.ItemTangibleNetWorth, []string{"TangibleBookValue", "StockholdersEquity", "CommonStockEquity"}},
	{dto.ItemEBITDA, []string{"EBITDA", "NormalizedEBITDA"}},
	{dto.ItemRevenue, []string{"TotalRevenue", "OperatingRevenue"}},
	{dto.ItemPurchases, []string{"CostOfRevenue", "ReconciledCostOfRevenue"}},
	{dto.ItemInterestExpense, []string{"InterestExpense", "InterestExpenseNonOperating"}},
	{dto.ItemImportContentPct, nil},
}
