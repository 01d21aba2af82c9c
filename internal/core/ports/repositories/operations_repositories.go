package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// OperationsReader defines read-only access to raw operational data that may
// not have journal entries yet: inventory usage, daily labor, and the
// categorised POS sales rollup. These are secondary inputs — a failed read
// degrades the statement instead of failing it.
type OperationsReader interface {
	// InventoryUsageCost returns the absolute summed cost of inventory
	// transactions with transaction_type='usage' up to asOf.
	InventoryUsageCost(ctx context.Context, restaurantID string, asOf time.Time) (decimal.Decimal, error)

	// LaborCostTotals returns hourly labor cost and salary/contractor
	// allocations summed up to asOf, both as absolute values.
	LaborCostTotals(ctx context.Context, restaurantID string, asOf time.Time) (domain.LaborCostTotals, error)

	// RevenueBreakdown returns the categorised POS sales rollup for the
	// period, or nil when no categorised sales data exists.
	RevenueBreakdown(ctx context.Context, restaurantID string, from, to time.Time) (*domain.RevenueBreakdown, error)
}
