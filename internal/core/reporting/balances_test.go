package reporting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistrobooks/backoffice/internal/core/domain"
	"github.com/bistrobooks/backoffice/internal/core/reporting"
)

var testDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func account(id, code, name string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:    id,
		RestaurantID: "rest-1",
		Code:         code,
		Name:         name,
		AccountType:  accountType,
		IsActive:     true,
	}
}

func debitLine(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{
		AccountID:    accountID,
		RestaurantID: "rest-1",
		EntryDate:    testDate,
		Debit:        dec(amount),
	}
}

func creditLine(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{
		AccountID:    accountID,
		RestaurantID: "rest-1",
		EntryDate:    testDate,
		Credit:       dec(amount),
	}
}

func findBalance(t *testing.T, balances []domain.AccountBalance, accountID string) domain.AccountBalance {
	t.Helper()
	for _, b := range balances {
		if b.Account.AccountID == accountID {
			return b
		}
	}
	t.Fatalf("no balance for account %s", accountID)
	return domain.AccountBalance{}
}

func TestComputeBalances_SignConventions(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		wantBalance string
	}{
		{"asset is debits minus credits", domain.Asset, "600"},
		{"expense is debits minus credits", domain.Expense, "600"},
		{"cogs is debits minus credits", domain.COGS, "600"},
		{"liability is credits minus debits", domain.Liability, "-600"},
		{"equity is credits minus debits", domain.Equity, "-600"},
		{"revenue is credits minus debits", domain.Revenue, "-600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := []domain.Account{account("a1", "1000", "Target", tt.accountType)}
			lines := []domain.JournalLine{
				debitLine("a1", "1000"),
				creditLine("a1", "400"),
			}

			balances := reporting.ComputeBalances(accounts, lines)

			require.Len(t, balances, 1)
			assert.True(t, balances[0].Debits.Equal(dec("1000")))
			assert.True(t, balances[0].Credits.Equal(dec("400")))
			assert.True(t, balances[0].Balance.Equal(dec(tt.wantBalance)),
				"got balance %s, want %s", balances[0].Balance, tt.wantBalance)
		})
	}
}

func TestComputeBalances_SwappingSidesInvertsSign(t *testing.T) {
	accounts := []domain.Account{account("rev", "4000", "Sales", domain.Revenue)}

	credited := reporting.ComputeBalances(accounts, []domain.JournalLine{creditLine("rev", "250")})
	debited := reporting.ComputeBalances(accounts, []domain.JournalLine{debitLine("rev", "250")})

	require.Len(t, credited, 1)
	require.Len(t, debited, 1)
	assert.True(t, credited[0].Balance.Equal(debited[0].Balance.Neg()),
		"swapping debit/credit on a credit-normal account must invert the balance")
}

func TestComputeBalances_ZeroActivityAccountsIncluded(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "1000", "Cash", domain.Asset),
		account("dormant", "1900", "Security Deposits", domain.Asset),
	}
	lines := []domain.JournalLine{debitLine("cash", "100")}

	balances := reporting.ComputeBalances(accounts, lines)

	require.Len(t, balances, 2)
	dormant := findBalance(t, balances, "dormant")
	assert.True(t, dormant.Debits.IsZero())
	assert.True(t, dormant.Credits.IsZero())
	assert.True(t, dormant.Balance.IsZero())
}

func TestComputeBalances_NullAmountsTreatedAsZero(t *testing.T) {
	// Zero-valued decimals model NULL debit/credit columns from the store.
	accounts := []domain.Account{account("cash", "1000", "Cash", domain.Asset)}
	lines := []domain.JournalLine{
		{AccountID: "cash", EntryDate: testDate, Debit: dec("50")},
		{AccountID: "cash", EntryDate: testDate},
	}

	balances := reporting.ComputeBalances(accounts, lines)

	require.Len(t, balances, 1)
	assert.True(t, balances[0].Balance.Equal(dec("50")))
}

func TestComputeBalances_DeterministicRegardlessOfOrdering(t *testing.T) {
	accounts := []domain.Account{
		account("b", "2000", "Accounts Payable", domain.Liability),
		account("a", "1000", "Cash", domain.Asset),
		account("c", "4000", "Sales", domain.Revenue),
	}
	lines := []domain.JournalLine{
		debitLine("a", "10"),
		creditLine("c", "10"),
	}

	forward := reporting.ComputeBalances(accounts, lines)

	reversedAccounts := []domain.Account{accounts[2], accounts[0], accounts[1]}
	reversedLines := []domain.JournalLine{lines[1], lines[0]}
	backward := reporting.ComputeBalances(reversedAccounts, reversedLines)

	require.Equal(t, len(forward), len(backward))
	for i := range forward {
		assert.Equal(t, forward[i].Account.AccountID, backward[i].Account.AccountID)
		assert.True(t, forward[i].Balance.Equal(backward[i].Balance))
	}
	assert.Equal(t, "1000", forward[0].Account.Code, "output should be ordered by code")
}

func TestComputeBalances_IgnoresLinesForUnknownAccounts(t *testing.T) {
	accounts := []domain.Account{account("cash", "1000", "Cash", domain.Asset)}
	lines := []domain.JournalLine{
		debitLine("cash", "100"),
		debitLine("ghost", "999"),
	}

	balances := reporting.ComputeBalances(accounts, lines)

	require.Len(t, balances, 1)
	assert.True(t, balances[0].Balance.Equal(dec("100")))
}
