package domain

import (
	"github.com/shopspring/decimal"
)

// LaborCostTotals aggregates un-posted labor cost up to a report date.
// Hourly comes from daily_labor_costs, Allocated from daily_labor_allocations
// (salary and contractor spread). Both are summed as absolute values upstream.
type LaborCostTotals struct {
	Hourly    decimal.Decimal `json:"hourly"`
	Allocated decimal.Decimal `json:"allocated"`
}

// Total returns the combined payroll cost used by the accrual gap-filler.
func (l LaborCostTotals) Total() decimal.Decimal {
	return l.Hourly.Add(l.Allocated)
}

// RevenueBreakdown is the categorised POS sales rollup for a period. When
// present it overrides GL-derived revenue on the income statement: gross
// revenue net of discounts, refunds, and comps, with pass-through sales tax
// and tips excluded entirely (they are liabilities, not revenue).
type RevenueBreakdown struct {
	Gross     decimal.Decimal `json:"gross"`
	Discounts decimal.Decimal `json:"discounts"`
	Refunds   decimal.Decimal `json:"refunds"`
	Comps     decimal.Decimal `json:"comps"`
	SalesTax  decimal.Decimal `json:"salesTax"`
	Tips      decimal.Decimal `json:"tips"`
}

// NetRevenue returns gross revenue minus discounts, refunds, and comps.
func (r RevenueBreakdown) NetRevenue() decimal.Decimal {
	return r.Gross.Sub(r.Discounts).Sub(r.Refunds).Sub(r.Comps)
}

// IsEmpty reports whether the breakdown carries no sales data at all, in
// which case the income statement falls back to GL-derived revenue.
func (r RevenueBreakdown) IsEmpty() bool {
	return r.Gross.IsZero() && r.Discounts.IsZero() && r.Refunds.IsZero() &&
		r.Comps.IsZero() && r.SalesTax.IsZero() && r.Tips.IsZero()
}
