// Package export flattens statement results into renderer-friendly shapes:
// ordered label/amount rows for PDF-style layouts and CSV documents for
// download. It holds no statement math; totals arrive precomputed.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// Row is one line of a rendered statement. Amount is nil for section
// headers and spacer rows. Renderers decide fonts and layout; the flags
// only describe the row's role.
type Row struct {
	Label      string           `json:"label"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Indent     int              `json:"indent,omitempty"`
	IsBold     bool             `json:"isBold,omitempty"`
	IsSubtotal bool             `json:"isSubtotal,omitempty"`
	IsTotal    bool             `json:"isTotal,omitempty"`
}

func header(label string) Row {
	return Row{Label: label, IsBold: true}
}

func detail(label string, amount decimal.Decimal) Row {
	return Row{Label: label, Amount: &amount, Indent: 1}
}

func subtotal(label string, amount decimal.Decimal) Row {
	return Row{Label: label, Amount: &amount, IsBold: true, IsSubtotal: true}
}

func total(label string, amount decimal.Decimal) Row {
	return Row{Label: label, Amount: &amount, IsBold: true, IsTotal: true}
}

// BalanceSheetRows flattens a balance sheet into rendering rows.
func BalanceSheetRows(report *domain.BalanceSheetReport) []Row {
	rows := []Row{header("Assets")}
	for _, b := range report.Assets {
		rows = append(rows, detail(b.Account.Name, b.Balance))
	}
	rows = append(rows, subtotal("Total Assets", report.TotalAssets))

	rows = append(rows, header("Liabilities"))
	for _, b := range report.Liabilities {
		rows = append(rows, detail(b.Account.Name, b.Balance))
	}
	rows = append(rows, subtotal("Total Liabilities", report.TotalLiabilities))

	rows = append(rows, header("Equity"))
	for _, b := range report.Equity {
		rows = append(rows, detail(b.Account.Name, b.Balance))
	}
	rows = append(rows, subtotal("Total Equity", report.TotalEquity))

	rows = append(rows, total("Total Liabilities & Equity", report.TotalLiabilities.Add(report.TotalEquity)))
	return rows
}

// IncomeStatementRows flattens an income statement into rendering rows.
func IncomeStatementRows(report *domain.IncomeStatementReport) []Row {
	rows := []Row{header("Revenue")}
	for _, b := range report.Revenue {
		rows = append(rows, detail(b.Account.Name, b.Balance))
	}
	rows = append(rows, subtotal("Total Revenue", report.TotalRevenue))

	rows = append(rows, header("Cost of Goods Sold"))
	for _, b := range report.COGS {
		rows = append(rows, detail(b.Account.Name, b.Balance.Abs()))
	}
	rows = append(rows, subtotal("Total COGS", report.TotalCOGS))
	rows = append(rows, subtotal("Gross Profit", report.GrossProfit))

	rows = append(rows, header("Operating Expenses"))
	for _, b := range report.Expenses {
		rows = append(rows, detail(b.Account.Name, b.Balance))
	}
	rows = append(rows, subtotal("Total Expenses", report.TotalExpenses))

	rows = append(rows, total("Net Income", report.NetIncome))
	return rows
}

// TrialBalanceRows flattens a trial balance into rendering rows: debit
// column amounts first, then credit column amounts, then both totals.
func TrialBalanceRows(report *domain.TrialBalanceReport) []Row {
	rows := []Row{header("Debits")}
	for _, r := range report.Rows {
		if r.AccountType.NormalBalance() == domain.DebitSide {
			rows = append(rows, detail(r.AccountName, r.Debit))
		}
	}
	rows = append(rows, subtotal("Total Debits", report.TotalDebits))

	rows = append(rows, header("Credits"))
	for _, r := range report.Rows {
		if r.AccountType.NormalBalance() == domain.CreditSide {
			rows = append(rows, detail(r.AccountName, r.Credit))
		}
	}
	rows = append(rows, subtotal("Total Credits", report.TotalCredits))

	if !report.Balanced {
		rows = append(rows, total("Difference", report.Difference))
	}
	return rows
}

// CashFlowRows flattens the cash flow statement into rendering rows.
func CashFlowRows(report *domain.CashFlowReport) []Row {
	return []Row{
		header("Cash Flows"),
		detail("Operating Activities", report.Operating),
		detail("Investing Activities", report.Investing),
		detail("Financing Activities", report.Financing),
		total("Net Change in Cash", report.NetChange),
	}
}
