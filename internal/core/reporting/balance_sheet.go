package reporting

import (
	"fmt"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// CurrentPeriodNetIncomeName labels the synthetic equity row that rolls the
// period's net income into the balance sheet.
const CurrentPeriodNetIncomeName = "Current Period Net Income"

// BuildBalanceSheet assembles an as-of balance sheet from balances (post
// gap-fill). The balance set must span every account type for the window:
// revenue, COGS, and expense balances feed the synthetic "Current Period Net
// Income" equity row, computed with the same revenue-COGS-expense formula
// the income statement uses (GL revenue, no POS override, so the identity
// is checked against journal data alone).
//
// The assets = liabilities + equity identity is checked within tolerance;
// a violation is reported in the result, never returned as an error.
func BuildBalanceSheet(balances []domain.AccountBalance) domain.BalanceSheetReport {
	report := domain.BalanceSheetReport{
		Assets:      make([]domain.AccountBalance, 0),
		Liabilities: make([]domain.AccountBalance, 0),
		Equity:      make([]domain.AccountBalance, 0),
	}

	for _, b := range balances {
		switch b.Account.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, b)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, b)
		case domain.Equity:
			report.Equity = append(report.Equity, b)
		}
	}

	report.NetIncome = netIncomeOf(balances)
	report.Equity = append(report.Equity, domain.AccountBalance{
		Account: domain.AccountBalanceAccount{
			Name:        CurrentPeriodNetIncomeName,
			AccountType: domain.Equity,
		},
		Balance: report.NetIncome,
	})

	report.TotalAssets = sumByType(balances, domain.Asset)
	report.TotalLiabilities = sumByType(balances, domain.Liability)
	report.TotalEquity = sumByType(balances, domain.Equity).Add(report.NetIncome)

	report.Difference = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.Balanced = withinTolerance(report.Difference)
	if !report.Balanced {
		report.Notes = append(report.Notes,
			fmt.Sprintf("Balance sheet doesn't balance! Difference: %s", report.Difference.StringFixed(2)))
	}

	return report
}
