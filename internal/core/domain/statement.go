package domain

import (
	"github.com/shopspring/decimal"
)

// RevenueSource records which data fed the income statement's revenue total.
type RevenueSource string

const (
	RevenueFromLedger RevenueSource = "GENERAL_LEDGER"
	RevenueFromPOS    RevenueSource = "POS_BREAKDOWN"
)

// AccountBalance is the balance calculator's per-account output for a report
// window. It has no identity beyond the computation and is never persisted.
// Synthetic entries injected by the accrual gap-filler carry one of the two
// flags so a strict (GL-only) view can filter them out.
type AccountBalance struct {
	Account AccountBalanceAccount `json:"account"`
	Debits  decimal.Decimal       `json:"debits"`
	Credits decimal.Decimal       `json:"credits"`
	Balance decimal.Decimal       `json:"balance"` // Signed per the account type's normal balance

	IsInventoryUsage  bool `json:"isInventoryUsage,omitempty"`
	IsPayrollFallback bool `json:"isPayrollFallback,omitempty"`
}

// AccountBalanceAccount is the account metadata carried on a balance row.
// Synthetic rows have an empty AccountID.
type AccountBalanceAccount struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
}

// Synthetic reports whether the row was injected by the accrual gap-filler
// rather than derived from journal lines.
func (b AccountBalance) Synthetic() bool {
	return b.IsInventoryUsage || b.IsPayrollFallback
}

// TrialBalanceRow shows an account balance in its normal-balance column.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport is a trial balance with both column totals and the
// debit=credit identity check. An out-of-balance ledger is reported, never
// raised: the bookkeeper needs to see the number to fix it.
type TrialBalanceReport struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	Balanced     bool              `json:"balanced"`
	Difference   decimal.Decimal   `json:"difference"` // TotalDebits - TotalCredits
	Notes        []string          `json:"notes,omitempty"`
}

// IncomeStatementReport is a period income statement. COGS is always
// expressed as a positive expense figure regardless of the signed journal
// convention, combining journaled COGS with any inventory-usage accrual.
type IncomeStatementReport struct {
	Revenue  []AccountBalance `json:"revenue"`
	COGS     []AccountBalance `json:"cogs"`
	Expenses []AccountBalance `json:"expenses"`

	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalCOGS     decimal.Decimal `json:"totalCOGS"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	NetIncome     decimal.Decimal `json:"netIncome"`

	RevenueSource RevenueSource `json:"revenueSource"`
	Notes         []string      `json:"notes,omitempty"`
}

// BalanceSheetReport is an as-of balance sheet. Equity includes a synthetic
// "Current Period Net Income" row so the assets = liabilities + equity
// identity can hold before period close. Violations are reported via
// Balanced/Difference, never thrown.
type BalanceSheetReport struct {
	Assets      []AccountBalance `json:"assets"`
	Liabilities []AccountBalance `json:"liabilities"`
	Equity      []AccountBalance `json:"equity"`

	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	NetIncome        decimal.Decimal `json:"netIncome"` // The synthetic equity row's amount

	Balanced   bool            `json:"balanced"`
	Difference decimal.Decimal `json:"difference"` // TotalAssets - (TotalLiabilities + TotalEquity)
	Notes      []string        `json:"notes,omitempty"`
}

// CashFlowReport is the simplified cash flow statement. All cash movement is
// currently attributed to operating activities; investing and financing are
// placeholders pending a categorization scheme from product.
type CashFlowReport struct {
	Operating decimal.Decimal `json:"operating"`
	Investing decimal.Decimal `json:"investing"`
	Financing decimal.Decimal `json:"financing"`
	NetChange decimal.Decimal `json:"netChange"`
	Notes     []string        `json:"notes,omitempty"`
}
