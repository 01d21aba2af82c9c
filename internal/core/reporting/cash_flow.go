package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// BuildCashFlow derives the simplified cash flow statement: the net change
// across cash-subtype asset accounts over the period's journal lines,
// with 100% of the movement attributed to operating activities.
//
// Investing and financing are intentionally zero. There is no journal-level
// activity categorization yet, and inventing one here would silently change
// reported figures; the split stays a placeholder until product defines the
// scheme.
func BuildCashFlow(accounts []domain.Account, lines []domain.JournalLine) domain.CashFlowReport {
	cashAccounts := make(map[string]bool)
	for _, a := range accounts {
		if IsCashAccount(a) {
			cashAccounts[a.AccountID] = true
		}
	}

	netChange := decimal.Zero
	for _, line := range lines {
		if !cashAccounts[line.AccountID] {
			continue
		}
		netChange = netChange.Add(line.Debit.Sub(line.Credit))
	}

	return domain.CashFlowReport{
		Operating: netChange,
		Investing: decimal.Zero,
		Financing: decimal.Zero,
		NetChange: netChange,
	}
}
