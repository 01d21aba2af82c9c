package export_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistrobooks/backoffice/internal/core/domain"
	"github.com/bistrobooks/backoffice/internal/core/reporting"
	"github.com/bistrobooks/backoffice/internal/export"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleBalanceSheet() *domain.BalanceSheetReport {
	balances := []domain.AccountBalance{
		{Account: domain.AccountBalanceAccount{Code: "1000", Name: "Cash", AccountType: domain.Asset}, Balance: dec("700")},
		{Account: domain.AccountBalanceAccount{Code: "4000", Name: "Food Sales", AccountType: domain.Revenue}, Balance: dec("1000")},
		{Account: domain.AccountBalanceAccount{Code: "6000", Name: "Rent Expense", AccountType: domain.Expense}, Balance: dec("300")},
	}
	report := reporting.BuildBalanceSheet(balances)
	return &report
}

func TestBalanceSheetRows_Structure(t *testing.T) {
	rows := export.BalanceSheetRows(sampleBalanceSheet())

	require.NotEmpty(t, rows)
	assert.Equal(t, "Assets", rows[0].Label)
	assert.True(t, rows[0].IsBold)
	assert.Nil(t, rows[0].Amount, "section headers carry no amount")

	last := rows[len(rows)-1]
	assert.Equal(t, "Total Liabilities & Equity", last.Label)
	assert.True(t, last.IsTotal)
	require.NotNil(t, last.Amount)
	assert.True(t, last.Amount.Equal(dec("700")))

	var netIncomeRow *export.Row
	for i := range rows {
		if rows[i].Label == reporting.CurrentPeriodNetIncomeName {
			netIncomeRow = &rows[i]
		}
	}
	require.NotNil(t, netIncomeRow, "the synthetic net income row must render")
	assert.Equal(t, 1, netIncomeRow.Indent)
	assert.True(t, netIncomeRow.Amount.Equal(dec("700")))
}

func TestIncomeStatementRows_NetIncomeIsFinalTotal(t *testing.T) {
	report := reporting.BuildIncomeStatement([]domain.AccountBalance{
		{Account: domain.AccountBalanceAccount{Code: "4000", Name: "Food Sales", AccountType: domain.Revenue}, Balance: dec("1000")},
		{Account: domain.AccountBalanceAccount{Code: "5000", Name: "Food Cost", AccountType: domain.COGS}, Balance: dec("250")},
	}, nil)

	rows := export.IncomeStatementRows(&report)

	last := rows[len(rows)-1]
	assert.Equal(t, "Net Income", last.Label)
	assert.True(t, last.IsTotal)
	assert.True(t, last.Amount.Equal(dec("750")))
}

func TestTrialBalanceRows_DifferenceOnlyWhenImbalanced(t *testing.T) {
	balanced := reporting.BuildTrialBalance([]domain.AccountBalance{
		{Account: domain.AccountBalanceAccount{Code: "1000", Name: "Cash", AccountType: domain.Asset}, Balance: dec("100")},
		{Account: domain.AccountBalanceAccount{Code: "3000", Name: "Owner Equity", AccountType: domain.Equity}, Balance: dec("100")},
	})
	rows := export.TrialBalanceRows(&balanced)
	assert.Equal(t, "Total Credits", rows[len(rows)-1].Label)

	broken := reporting.BuildTrialBalance([]domain.AccountBalance{
		{Account: domain.AccountBalanceAccount{Code: "1000", Name: "Cash", AccountType: domain.Asset}, Balance: dec("100")},
	})
	rows = export.TrialBalanceRows(&broken)
	last := rows[len(rows)-1]
	assert.Equal(t, "Difference", last.Label)
	assert.True(t, last.Amount.Equal(dec("100")))
}
