package reporting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistrobooks/backoffice/internal/core/domain"
	"github.com/bistrobooks/backoffice/internal/core/reporting"
)

func TestBuildIncomeStatement_Totals(t *testing.T) {
	balances := []domain.AccountBalance{
		balanceRow("Food Sales", domain.Revenue, "10000"),
		balanceRow("Food Cost", domain.COGS, "3000"),
		balanceRow("Rent Expense", domain.Expense, "1800"),
		balanceRow("Utilities", domain.Expense, "400"),
		balanceRow("Cash", domain.Asset, "4800"), // ignored by the P&L sections
	}

	report := reporting.BuildIncomeStatement(balances, nil)

	assert.True(t, report.TotalRevenue.Equal(dec("10000")))
	assert.True(t, report.TotalCOGS.Equal(dec("3000")))
	assert.True(t, report.TotalExpenses.Equal(dec("2200")))
	assert.True(t, report.GrossProfit.Equal(dec("7000")))
	assert.True(t, report.NetIncome.Equal(dec("4800")))
	assert.Equal(t, domain.RevenueFromLedger, report.RevenueSource)
	assert.Len(t, report.Revenue, 1)
	assert.Len(t, report.COGS, 1)
	assert.Len(t, report.Expenses, 2)
}

func TestBuildIncomeStatement_COGSAlwaysPositive(t *testing.T) {
	// A credit-heavy COGS account (e.g. a large purchase return) yields a
	// negative signed balance; the statement still reports COGS as a
	// positive expense figure.
	balances := []domain.AccountBalance{
		balanceRow("Food Sales", domain.Revenue, "1000"),
		balanceRow("Food Cost", domain.COGS, "-150"),
	}

	report := reporting.BuildIncomeStatement(balances, nil)

	assert.True(t, report.TotalCOGS.Equal(dec("150")))
	assert.True(t, report.GrossProfit.Equal(dec("850")))
}

func TestBuildIncomeStatement_InventoryAccrualFoldsIntoCOGS(t *testing.T) {
	balances := reporting.FillAccrualGaps([]domain.AccountBalance{
		balanceRow("Food Sales", domain.Revenue, "1000"),
	}, dec("240"), decimal.Zero, false)

	report := reporting.BuildIncomeStatement(balances, nil)

	assert.True(t, report.TotalCOGS.Equal(dec("240")),
		"the unposted usage accrual is the whole COGS figure")
	assert.True(t, report.GrossProfit.Equal(dec("760")))
	require.Len(t, report.COGS, 1)
	assert.True(t, report.COGS[0].IsInventoryUsage)
}

func TestBuildIncomeStatement_POSBreakdownOverridesRevenue(t *testing.T) {
	balances := []domain.AccountBalance{
		balanceRow("Food Sales", domain.Revenue, "980"),
	}
	breakdown := &domain.RevenueBreakdown{
		Gross:     dec("1200"),
		Discounts: dec("100"),
		Refunds:   dec("50"),
		Comps:     dec("25"),
		SalesTax:  dec("96"), // pass-through, excluded
		Tips:      dec("180"),
	}

	report := reporting.BuildIncomeStatement(balances, breakdown)

	assert.True(t, report.TotalRevenue.Equal(dec("1025")),
		"gross minus discounts, refunds, and comps; tax and tips excluded")
	assert.Equal(t, domain.RevenueFromPOS, report.RevenueSource)
}

func TestBuildIncomeStatement_EmptyBreakdownFallsBackToLedger(t *testing.T) {
	balances := []domain.AccountBalance{
		balanceRow("Food Sales", domain.Revenue, "980"),
	}

	report := reporting.BuildIncomeStatement(balances, &domain.RevenueBreakdown{})

	assert.True(t, report.TotalRevenue.Equal(dec("980")))
	assert.Equal(t, domain.RevenueFromLedger, report.RevenueSource)
}

func TestBuildIncomeStatement_PayrollFallbackCountsAsExpense(t *testing.T) {
	balances := reporting.FillAccrualGaps([]domain.AccountBalance{
		balanceRow("Food Sales", domain.Revenue, "1000"),
	}, decimal.Zero, dec("350"), false)

	report := reporting.BuildIncomeStatement(balances, nil)

	assert.True(t, report.TotalExpenses.Equal(dec("350")))
	assert.True(t, report.NetIncome.Equal(dec("650")))
}
