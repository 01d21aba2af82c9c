package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// BuildTrialBalance partitions balances into their normal-balance columns
// and totals both sides. Debit-normal accounts show their balance in the
// debit column, credit-normal in the credit column.
//
// The debit=credit identity is checked within the currency-rounding
// tolerance. A violated identity never fails the report: it is recorded as
// a note and via Balanced/Difference so the caller can surface it.
func BuildTrialBalance(balances []domain.AccountBalance) domain.TrialBalanceReport {
	report := domain.TrialBalanceReport{
		Rows:         make([]domain.TrialBalanceRow, 0, len(balances)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, b := range balances {
		row := domain.TrialBalanceRow{
			AccountID:   b.Account.AccountID,
			Code:        b.Account.Code,
			AccountName: b.Account.Name,
			AccountType: b.Account.AccountType,
		}
		if b.Account.AccountType.NormalBalance() == domain.DebitSide {
			row.Debit = b.Balance
			report.TotalDebits = report.TotalDebits.Add(b.Balance)
		} else {
			row.Credit = b.Balance
			report.TotalCredits = report.TotalCredits.Add(b.Balance)
		}
		report.Rows = append(report.Rows, row)
	}

	report.Difference = report.TotalDebits.Sub(report.TotalCredits)
	report.Balanced = withinTolerance(report.Difference)
	if !report.Balanced {
		report.Notes = append(report.Notes,
			fmt.Sprintf("Trial balance out of balance: debits %s vs credits %s (difference %s)",
				report.TotalDebits.StringFixed(2), report.TotalCredits.StringFixed(2), report.Difference.StringFixed(2)))
	}

	return report
}
