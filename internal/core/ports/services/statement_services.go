package services

import (
	"context"
	"time"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// StatementService defines operations for generating financial statements.
//
// strict=true is GL-only mode: no synthetic accrual entries are injected,
// the statement reflects journaled data alone.
type StatementService interface {
	// TrialBalance generates a trial balance as of a specific date.
	TrialBalance(ctx context.Context, restaurantID string, asOf time.Time) (*domain.TrialBalanceReport, error)

	// IncomeStatement generates an income statement for a period.
	IncomeStatement(ctx context.Context, restaurantID string, from, to time.Time, strict bool) (*domain.IncomeStatementReport, error)

	// BalanceSheet generates a balance sheet as of a specific date.
	BalanceSheet(ctx context.Context, restaurantID string, asOf time.Time, strict bool) (*domain.BalanceSheetReport, error)

	// CashFlow generates the simplified cash flow statement for a period.
	CashFlow(ctx context.Context, restaurantID string, from, to time.Time) (*domain.CashFlowReport, error)
}

// ServiceContainer holds all service interfaces handed to the HTTP layer.
type ServiceContainer struct {
	Statement StatementService
}
