package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// BuildIncomeStatement derives a period income statement from balances
// (post gap-fill). breakdown, when non-nil and non-empty, overrides the
// GL-derived revenue total with categorised POS net revenue (gross minus
// discounts, refunds, and comps; pass-through sales tax and tips excluded);
// otherwise revenue falls back to the summed revenue-account balances.
//
// COGS follows one uniform convention: the absolute value of journaled COGS
// combined with any inventory-usage accrual, always expressed as a positive
// expense figure.
func BuildIncomeStatement(balances []domain.AccountBalance, breakdown *domain.RevenueBreakdown) domain.IncomeStatementReport {
	report := domain.IncomeStatementReport{
		Revenue:       make([]domain.AccountBalance, 0),
		COGS:          make([]domain.AccountBalance, 0),
		Expenses:      make([]domain.AccountBalance, 0),
		RevenueSource: domain.RevenueFromLedger,
	}

	for _, b := range balances {
		switch b.Account.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, b)
		case domain.COGS:
			report.COGS = append(report.COGS, b)
		case domain.Expense:
			report.Expenses = append(report.Expenses, b)
		case domain.Asset:
			if b.IsInventoryUsage {
				report.COGS = append(report.COGS, b)
			}
		}
	}

	report.TotalRevenue = sumByType(balances, domain.Revenue)
	if breakdown != nil && !breakdown.IsEmpty() {
		report.TotalRevenue = breakdown.NetRevenue()
		report.RevenueSource = domain.RevenueFromPOS
	}

	report.TotalCOGS = totalCOGS(balances)
	report.TotalExpenses = totalExpenses(balances)
	report.GrossProfit = report.TotalRevenue.Sub(report.TotalCOGS)
	report.NetIncome = report.GrossProfit.Sub(report.TotalExpenses)

	return report
}

// totalCOGS combines journaled COGS with the inventory-usage accrual and
// expresses the result as a positive expense figure.
func totalCOGS(balances []domain.AccountBalance) decimal.Decimal {
	return sumByType(balances, domain.COGS).Add(inventoryUsageTotal(balances)).Abs()
}

// totalExpenses sums expense-account balances, including any payroll
// fallback entry injected by the gap-filler.
func totalExpenses(balances []domain.AccountBalance) decimal.Decimal {
	return sumByType(balances, domain.Expense)
}

// netIncomeOf computes revenue - COGS - expenses over a balance set using
// GL-derived revenue. The balance sheet uses this for its synthetic equity
// row so the identity is checked against the same journal data that feeds
// the asset side.
func netIncomeOf(balances []domain.AccountBalance) decimal.Decimal {
	return sumByType(balances, domain.Revenue).
		Sub(totalCOGS(balances)).
		Sub(totalExpenses(balances))
}
