package repositories

import (
	"context"
	"time"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// LedgerReader defines read-only access to the chart of accounts and posted
// journal lines. The underlying tables are owned by the hosted backend;
// this service never writes them.
type LedgerReader interface {
	// FindActiveAccounts returns all active chart-of-accounts entries for a restaurant.
	FindActiveAccounts(ctx context.Context, restaurantID string) ([]domain.Account, error)

	// FindLinesAsOf returns journal lines with entry_date on or before asOf.
	FindLinesAsOf(ctx context.Context, restaurantID string, asOf time.Time) ([]domain.JournalLine, error)

	// FindLinesInRange returns journal lines with entry_date between from and to inclusive.
	FindLinesInRange(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.JournalLine, error)
}
