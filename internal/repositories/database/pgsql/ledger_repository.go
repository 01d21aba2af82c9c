package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bistrobooks/backoffice/internal/core/domain"
	portsrepo "github.com/bistrobooks/backoffice/internal/core/ports/repositories"
)

// ledgerRepository implements the LedgerReader interface over the hosted
// chart_of_accounts / journal_entries / journal_entry_lines tables.
type ledgerRepository struct {
	BaseRepository
}

func newLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerReader {
	return &ledgerRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindActiveAccounts returns all active chart-of-accounts entries for a
// restaurant, ordered by code. The store keeps account_type lower-cased;
// it is normalised to the domain constants at scan time.
func (r *ledgerRepository) FindActiveAccounts(ctx context.Context, restaurantID string) ([]domain.Account, error) {
	query := `
		SELECT
			account_id,
			restaurant_id,
			code,
			name,
			account_type
		FROM chart_of_accounts
		WHERE restaurant_id = $1
			AND is_active = TRUE
		ORDER BY code
	`

	rows, err := r.Pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("error querying chart of accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		var accountType string

		if err := rows.Scan(
			&a.AccountID,
			&a.RestaurantID,
			&a.Code,
			&a.Name,
			&accountType,
		); err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}

		a.AccountType = domain.AccountType(strings.ToUpper(accountType))
		if !a.AccountType.IsValid() {
			return nil, fmt.Errorf("unknown account type %q for account %s", accountType, a.AccountID)
		}
		a.IsActive = true
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	if len(accounts) == 0 {
		// Return empty slice instead of nil
		return []domain.Account{}, nil
	}

	return accounts, nil
}

// FindLinesAsOf returns journal lines with entry_date on or before asOf.
func (r *ledgerRepository) FindLinesAsOf(ctx context.Context, restaurantID string, asOf time.Time) ([]domain.JournalLine, error) {
	query := lineSelect + `
		WHERE e.restaurant_id = $1
			AND e.entry_date <= $2
	`
	return r.queryLines(ctx, query, restaurantID, asOf)
}

// FindLinesInRange returns journal lines with entry_date between from and to
// inclusive.
func (r *ledgerRepository) FindLinesInRange(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.JournalLine, error) {
	query := lineSelect + `
		WHERE e.restaurant_id = $1
			AND e.entry_date BETWEEN $2 AND $3
	`
	return r.queryLines(ctx, query, restaurantID, from, to)
}

// lineSelect joins lines to their parent entries for the date and scope.
// NULL debit/credit columns read as zero so the balance math never sees
// nulls.
const lineSelect = `
		SELECT
			l.line_id,
			l.entry_id,
			l.account_id,
			e.restaurant_id,
			e.entry_date,
			COALESCE(l.debit_amount, 0) AS debit,
			COALESCE(l.credit_amount, 0) AS credit,
			COALESCE(e.description, '') AS description
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
`

func (r *ledgerRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.JournalLine, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying journal lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.AccountID,
			&line.RestaurantID,
			&line.EntryDate,
			&line.Debit,
			&line.Credit,
			&line.Description,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal line row: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}

	if len(lines) == 0 {
		return []domain.JournalLine{}, nil
	}

	return lines, nil
}
