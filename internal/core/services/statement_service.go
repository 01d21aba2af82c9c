package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bistrobooks/backoffice/internal/apperrors"
	"github.com/bistrobooks/backoffice/internal/core/domain"
	portsrepo "github.com/bistrobooks/backoffice/internal/core/ports/repositories"
	portssvc "github.com/bistrobooks/backoffice/internal/core/ports/services"
	"github.com/bistrobooks/backoffice/internal/core/reporting"
)

// Data-quality notes surfaced when secondary aggregates are unavailable.
// The statement is still generated; it just silently omits the accrual, and
// the note makes the omission visible to the bookkeeper.
const (
	noteUsageUnavailable   = "Inventory usage data unavailable; COGS accrual omitted"
	notePayrollUnavailable = "Labor cost data unavailable; payroll accrual omitted"
	notePOSUnavailable     = "POS sales breakdown unavailable; revenue derived from the general ledger"
)

// statementService implements the StatementService interface
type statementService struct {
	BaseService
	ledger     portsrepo.LedgerReader
	operations portsrepo.OperationsReader
}

// NewStatementService creates a new statement service over the ledger and
// operational data readers.
func NewStatementService(ledger portsrepo.LedgerReader, operations portsrepo.OperationsReader) portssvc.StatementService {
	return &statementService{
		ledger:     ledger,
		operations: operations,
	}
}

// Ensure statementService implements the StatementService interface
var _ portssvc.StatementService = (*statementService)(nil)

// TrialBalance generates a trial balance as of a specific date. The trial
// balance is always GL-only: synthetic accruals never appear on it.
func (s *statementService) TrialBalance(ctx context.Context, restaurantID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, lines, err := s.fetchLedgerAsOf(ctx, restaurantID, asOf)
	if err != nil {
		return nil, err
	}

	balances := reporting.ComputeBalances(accounts, lines)
	report := reporting.BuildTrialBalance(balances)

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("restaurant_id", restaurantID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("balanced", report.Balanced))
	return &report, nil
}

// IncomeStatement generates an income statement for a period. Unless strict
// is set, missing COGS and payroll activity is estimated from operational
// data, and categorised POS sales override GL-derived revenue when present.
func (s *statementService) IncomeStatement(ctx context.Context, restaurantID string, from, to time.Time, strict bool) (*domain.IncomeStatementReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	accounts, lines, err := s.fetchLedgerInRange(ctx, restaurantID, from, to)
	if err != nil {
		return nil, err
	}

	balances := reporting.ComputeBalances(accounts, lines)
	balances, notes := s.fillGaps(ctx, restaurantID, to, balances, strict)

	var breakdown *domain.RevenueBreakdown
	breakdown, err = s.operations.RevenueBreakdown(ctx, restaurantID, from, to)
	if err != nil {
		s.LogWarn(ctx, "POS revenue breakdown query failed, falling back to GL revenue",
			slog.String("restaurant_id", restaurantID),
			slog.String("error", err.Error()))
		notes = append(notes, notePOSUnavailable)
		breakdown = nil
	}

	report := reporting.BuildIncomeStatement(balances, breakdown)
	report.Notes = append(report.Notes, notes...)

	s.LogInfo(ctx, "Income statement generated",
		slog.String("restaurant_id", restaurantID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Bool("strict", strict),
		slog.String("revenue_source", string(report.RevenueSource)),
		slog.String("net_income", report.NetIncome.String()))
	return &report, nil
}

// BalanceSheet generates a balance sheet as of a specific date, rolling the
// period's net income into equity.
func (s *statementService) BalanceSheet(ctx context.Context, restaurantID string, asOf time.Time, strict bool) (*domain.BalanceSheetReport, error) {
	accounts, lines, err := s.fetchLedgerAsOf(ctx, restaurantID, asOf)
	if err != nil {
		return nil, err
	}

	balances := reporting.ComputeBalances(accounts, lines)
	balances, notes := s.fillGaps(ctx, restaurantID, asOf, balances, strict)

	report := reporting.BuildBalanceSheet(balances)
	report.Notes = append(report.Notes, notes...)

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("restaurant_id", restaurantID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Bool("strict", strict),
		slog.Bool("balanced", report.Balanced))
	return &report, nil
}

// CashFlow generates the simplified cash flow statement for a period.
func (s *statementService) CashFlow(ctx context.Context, restaurantID string, from, to time.Time) (*domain.CashFlowReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	accounts, lines, err := s.fetchLedgerInRange(ctx, restaurantID, from, to)
	if err != nil {
		return nil, err
	}

	report := reporting.BuildCashFlow(accounts, lines)

	s.LogInfo(ctx, "Cash flow statement generated",
		slog.String("restaurant_id", restaurantID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.String("net_change", report.NetChange.String()))
	return &report, nil
}

// validatePeriod rejects inverted reporting windows before any data is read.
func validatePeriod(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: toDate %s precedes fromDate %s",
			apperrors.ErrValidation, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	return nil
}

// fetchLedgerAsOf loads the primary inputs for as-of reports. Errors here
// are hard failures: no statement can be produced without them.
func (s *statementService) fetchLedgerAsOf(ctx context.Context, restaurantID string, asOf time.Time) ([]domain.Account, []domain.JournalLine, error) {
	accounts, err := s.ledger.FindActiveAccounts(ctx, restaurantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve accounts",
			slog.String("restaurant_id", restaurantID))
		return nil, nil, fmt.Errorf("%w: failed to retrieve accounts: %w", apperrors.ErrUpstream, err)
	}

	lines, err := s.ledger.FindLinesAsOf(ctx, restaurantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve journal lines",
			slog.String("restaurant_id", restaurantID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, nil, fmt.Errorf("%w: failed to retrieve journal lines: %w", apperrors.ErrUpstream, err)
	}

	return accounts, lines, nil
}

// fetchLedgerInRange loads the primary inputs for period reports.
func (s *statementService) fetchLedgerInRange(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.Account, []domain.JournalLine, error) {
	accounts, err := s.ledger.FindActiveAccounts(ctx, restaurantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve accounts",
			slog.String("restaurant_id", restaurantID))
		return nil, nil, fmt.Errorf("%w: failed to retrieve accounts: %w", apperrors.ErrUpstream, err)
	}

	lines, err := s.ledger.FindLinesInRange(ctx, restaurantID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve journal lines",
			slog.String("restaurant_id", restaurantID),
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, nil, fmt.Errorf("%w: failed to retrieve journal lines: %w", apperrors.ErrUpstream, err)
	}

	return accounts, lines, nil
}

// fillGaps fetches the operational accrual aggregates and applies the
// gap-filler. Aggregate failures are soft: the amount is treated as zero,
// the statement proceeds, and a data-quality note records the omission.
func (s *statementService) fillGaps(ctx context.Context, restaurantID string, asOf time.Time, balances []domain.AccountBalance, strict bool) ([]domain.AccountBalance, []string) {
	if strict {
		return balances, nil
	}

	var notes []string

	usageCost, err := s.operations.InventoryUsageCost(ctx, restaurantID, asOf)
	if err != nil {
		s.LogWarn(ctx, "Inventory usage aggregate query failed, treating as zero",
			slog.String("restaurant_id", restaurantID),
			slog.String("error", err.Error()))
		usageCost = decimal.Zero
		notes = append(notes, noteUsageUnavailable)
	}

	payrollCost := decimal.Zero
	labor, err := s.operations.LaborCostTotals(ctx, restaurantID, asOf)
	if err != nil {
		s.LogWarn(ctx, "Labor cost aggregate query failed, treating as zero",
			slog.String("restaurant_id", restaurantID),
			slog.String("error", err.Error()))
		notes = append(notes, notePayrollUnavailable)
	} else {
		payrollCost = labor.Total()
	}

	return reporting.FillAccrualGaps(balances, usageCost, payrollCost, strict), notes
}
