// Package reporting holds the pure financial-statement computation core:
// account balance aggregation, accrual gap-filling, and the four statement
// composers. Every function here is a deterministic transformation over
// already-fetched in-memory data; fetching, logging, and failure policy live
// in the service layer.
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// identityTolerance is the currency-rounding tolerance applied to the
// debit=credit and assets=liabilities+equity identity checks.
var identityTolerance = decimal.RequireFromString("0.01")

// ComputeBalances aggregates journal lines into one signed balance per
// account. Debits and credits are summed independently, then the balance is
// signed per the account type's normal side: debit-normal accounts report
// debits-credits, credit-normal accounts report credits-debits.
//
// Every account appears in the output, including those with no activity
// (a dormant account still shows $0 on statements). Lines referencing
// accounts outside the chart are ignored. Output is ordered by account code
// so the result is stable regardless of input ordering.
func ComputeBalances(accounts []domain.Account, lines []domain.JournalLine) []domain.AccountBalance {
	type sums struct {
		debits  decimal.Decimal
		credits decimal.Decimal
	}

	byAccount := make(map[string]*sums, len(accounts))
	for _, a := range accounts {
		byAccount[a.AccountID] = &sums{}
	}

	for _, line := range lines {
		s, ok := byAccount[line.AccountID]
		if !ok {
			continue
		}
		s.debits = s.debits.Add(line.Debit)
		s.credits = s.credits.Add(line.Credit)
	}

	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		s := byAccount[a.AccountID]

		var balance decimal.Decimal
		if a.NormalBalance() == domain.DebitSide {
			balance = s.debits.Sub(s.credits)
		} else {
			balance = s.credits.Sub(s.debits)
		}

		balances = append(balances, domain.AccountBalance{
			Account: domain.AccountBalanceAccount{
				AccountID:   a.AccountID,
				Code:        a.Code,
				Name:        a.Name,
				AccountType: a.AccountType,
			},
			Debits:  s.debits,
			Credits: s.credits,
			Balance: balance,
		})
	}

	sort.SliceStable(balances, func(i, j int) bool {
		if balances[i].Account.Code != balances[j].Account.Code {
			return balances[i].Account.Code < balances[j].Account.Code
		}
		return balances[i].Account.Name < balances[j].Account.Name
	})

	return balances
}

// sumByType totals the signed balances of all rows with the given account type.
func sumByType(balances []domain.AccountBalance, accountType domain.AccountType) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		if b.Account.AccountType == accountType {
			total = total.Add(b.Balance)
		}
	}
	return total
}

// withinTolerance reports whether |diff| is inside the identity tolerance.
func withinTolerance(diff decimal.Decimal) bool {
	return diff.Abs().LessThanOrEqual(identityTolerance)
}
