package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/core/domain"
	portsrepo "github.com/bistrobooks/backoffice/internal/core/ports/repositories"
)

// operationsRepository implements the OperationsReader interface over the
// raw operational tables: inventory_transactions, daily_labor_costs,
// daily_labor_allocations, and the pos_sales rollup.
type operationsRepository struct {
	BaseRepository
}

func newOperationsRepository(db *pgxpool.Pool) portsrepo.OperationsReader {
	return &operationsRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// InventoryUsageCost returns the absolute summed cost of inventory usage
// transactions up to asOf. Usage rows store negative costs (stock leaving),
// so the aggregate is taken as an absolute value.
func (r *operationsRepository) InventoryUsageCost(ctx context.Context, restaurantID string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(ABS(SUM(total_cost)), 0)
		FROM inventory_transactions
		WHERE restaurant_id = $1
			AND transaction_type = 'usage'
			AND transaction_date <= $2
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, restaurantID, asOf).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error querying inventory usage cost: %w", err)
	}
	return total, nil
}

// LaborCostTotals returns hourly labor cost and salary/contractor
// allocations summed up to asOf, both as absolute values.
func (r *operationsRepository) LaborCostTotals(ctx context.Context, restaurantID string, asOf time.Time) (domain.LaborCostTotals, error) {
	hourlyQuery := `
		SELECT COALESCE(ABS(SUM(total_cost)), 0)
		FROM daily_labor_costs
		WHERE restaurant_id = $1
			AND work_date <= $2
	`
	allocatedQuery := `
		SELECT COALESCE(ABS(SUM(allocated_amount)), 0)
		FROM daily_labor_allocations
		WHERE restaurant_id = $1
			AND allocation_date <= $2
	`

	var totals domain.LaborCostTotals
	if err := r.Pool.QueryRow(ctx, hourlyQuery, restaurantID, asOf).Scan(&totals.Hourly); err != nil {
		return domain.LaborCostTotals{}, fmt.Errorf("error querying hourly labor cost: %w", err)
	}
	if err := r.Pool.QueryRow(ctx, allocatedQuery, restaurantID, asOf).Scan(&totals.Allocated); err != nil {
		return domain.LaborCostTotals{}, fmt.Errorf("error querying labor allocations: %w", err)
	}
	return totals, nil
}

// RevenueBreakdown returns the categorised POS sales rollup for a period, or
// nil when the restaurant has no categorised sales rows in the window.
func (r *operationsRepository) RevenueBreakdown(ctx context.Context, restaurantID string, from, to time.Time) (*domain.RevenueBreakdown, error) {
	query := `
		SELECT
			COALESCE(SUM(gross_amount), 0),
			COALESCE(SUM(discount_amount), 0),
			COALESCE(SUM(refund_amount), 0),
			COALESCE(SUM(comp_amount), 0),
			COALESCE(SUM(sales_tax_amount), 0),
			COALESCE(SUM(tip_amount), 0)
		FROM pos_sales
		WHERE restaurant_id = $1
			AND sale_date BETWEEN $2 AND $3
	`

	var b domain.RevenueBreakdown
	if err := r.Pool.QueryRow(ctx, query, restaurantID, from, to).Scan(
		&b.Gross,
		&b.Discounts,
		&b.Refunds,
		&b.Comps,
		&b.SalesTax,
		&b.Tips,
	); err != nil {
		return nil, fmt.Errorf("error querying POS revenue breakdown: %w", err)
	}

	if b.IsEmpty() {
		return nil, nil
	}
	return &b, nil
}
