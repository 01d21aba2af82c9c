package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// Display names for the synthetic rows injected by the accrual gap-filler.
const (
	InventoryUsageAdjustmentName = "Inventory Usage Adjustment"
	PayrollExpenseUnpostedName   = "Payroll Expense (unposted)"
	PayrollAccrualUnpostedName   = "Payroll Accrual (unposted)"
)

// FillAccrualGaps augments computed balances with synthetic accrual entries
// for operational activity that has no journal entry yet.
//
// Inventory: when no COGS account has journaled activity and usageCost (the
// absolute summed cost of inventory usage transactions up to the report
// date) is positive, a single asset-reducing adjustment of -usageCost is
// appended. It needs no matching leg because the balance sheet nets it
// against a net-income figure computed from the same balance set.
//
// Payroll: when no payroll-classified expense account has journaled activity
// and payrollCost (hourly labor plus salary/contractor allocations up to the
// report date) is positive, a matched pair is appended: an expense of
// +payrollCost and a liability of +payrollCost. The pair keeps the
// assets = liabilities + equity identity intact — net income drops by the
// same amount liabilities rise.
//
// strict=true is GL-only mode: the input is returned unchanged no matter
// what the operational aggregates say. The input slice is never mutated.
func FillAccrualGaps(balances []domain.AccountBalance, usageCost, payrollCost decimal.Decimal, strict bool) []domain.AccountBalance {
	if strict {
		return balances
	}

	out := make([]domain.AccountBalance, len(balances), len(balances)+3)
	copy(out, balances)

	journaledCOGS := sumByType(balances, domain.COGS)
	if journaledCOGS.IsZero() && usageCost.IsPositive() {
		out = append(out, domain.AccountBalance{
			Account: domain.AccountBalanceAccount{
				Name:        InventoryUsageAdjustmentName,
				AccountType: domain.Asset,
			},
			Balance:          usageCost.Neg(),
			IsInventoryUsage: true,
		})
	}

	journaledPayroll := decimal.Zero
	for _, b := range balances {
		if IsPayrollExpense(b) {
			journaledPayroll = journaledPayroll.Add(b.Balance)
		}
	}
	if journaledPayroll.IsZero() && payrollCost.IsPositive() {
		out = append(out,
			domain.AccountBalance{
				Account: domain.AccountBalanceAccount{
					Name:        PayrollExpenseUnpostedName,
					AccountType: domain.Expense,
				},
				Balance:           payrollCost,
				IsPayrollFallback: true,
			},
			domain.AccountBalance{
				Account: domain.AccountBalanceAccount{
					Name:        PayrollAccrualUnpostedName,
					AccountType: domain.Liability,
				},
				Balance:           payrollCost,
				IsPayrollFallback: true,
			},
		)
	}

	return out
}

// inventoryUsageTotal sums the COGS contribution of injected inventory
// adjustments. The adjustment rows are asset-reducing (negative balance), so
// their expense-side contribution is the negation.
func inventoryUsageTotal(balances []domain.AccountBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		if b.IsInventoryUsage {
			total = total.Add(b.Balance.Neg())
		}
	}
	return total
}
