package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// AccountAmountResponse represents an account with its amount in a
// financial statement. Synthetic marks gap-filler rows so clients can
// visually distinguish unposted accrual estimates from GL data.
type AccountAmountResponse struct {
	AccountID string          `json:"accountID,omitempty"`
	Code      string          `json:"code,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Synthetic bool            `json:"synthetic,omitempty"`
}

// TrialBalanceRowResponse represents a row in the trial balance response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Balanced   bool            `json:"balanced"`
	Difference decimal.Decimal `json:"difference"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	COGS     []AccountAmountResponse `json:"cogs"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalCOGS     decimal.Decimal `json:"totalCOGS"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		GrossProfit   decimal.Decimal `json:"grossProfit"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
	RevenueSource string   `json:"revenueSource"`
	Warnings      []string `json:"warnings,omitempty"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		NetIncome        decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
	Balanced   bool            `json:"balanced"`
	Difference decimal.Decimal `json:"difference"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// CashFlowResponse represents the cash flow statement response
type CashFlowResponse struct {
	FromDate  string          `json:"fromDate"`
	ToDate    string          `json:"toDate"`
	Operating decimal.Decimal `json:"operating"`
	Investing decimal.Decimal `json:"investing"`
	Financing decimal.Decimal `json:"financing"`
	NetChange decimal.Decimal `json:"netChange"`
	Warnings  []string        `json:"warnings,omitempty"`
}

func toAccountAmounts(balances []domain.AccountBalance) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(balances))
	for i, b := range balances {
		out[i] = AccountAmountResponse{
			AccountID: b.Account.AccountID,
			Code:      b.Account.Code,
			Name:      b.Account.Name,
			Amount:    b.Balance,
			Synthetic: b.Synthetic(),
		}
	}
	return out
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:       asOf.Format("2006-01-02"),
		Rows:       make([]TrialBalanceRowResponse, len(report.Rows)),
		Balanced:   report.Balanced,
		Difference: report.Difference,
		Warnings:   report.Notes,
	}

	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			Code:        row.Code,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}

	response.Totals.Debit = report.TotalDebits
	response.Totals.Credit = report.TotalCredits

	return response
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatementReport, from, to time.Time) IncomeStatementResponse {
	response := IncomeStatementResponse{
		FromDate:      from.Format("2006-01-02"),
		ToDate:        to.Format("2006-01-02"),
		Revenue:       toAccountAmounts(report.Revenue),
		COGS:          toAccountAmounts(report.COGS),
		Expenses:      toAccountAmounts(report.Expenses),
		RevenueSource: string(report.RevenueSource),
		Warnings:      report.Notes,
	}

	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalCOGS = report.TotalCOGS
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.GrossProfit = report.GrossProfit
	response.Summary.NetIncome = report.NetIncome

	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        asOf.Format("2006-01-02"),
		Assets:      toAccountAmounts(report.Assets),
		Liabilities: toAccountAmounts(report.Liabilities),
		Equity:      toAccountAmounts(report.Equity),
		Balanced:    report.Balanced,
		Difference:  report.Difference,
		Warnings:    report.Notes,
	}

	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.NetIncome = report.NetIncome

	return response
}

// ToCashFlowResponse converts a domain cash flow statement to a DTO response
func ToCashFlowResponse(report *domain.CashFlowReport, from, to time.Time) CashFlowResponse {
	return CashFlowResponse{
		FromDate:  from.Format("2006-01-02"),
		ToDate:    to.Format("2006-01-02"),
		Operating: report.Operating,
		Investing: report.Investing,
		Financing: report.Financing,
		NetChange: report.NetChange,
		Warnings:  report.Notes,
	}
}
