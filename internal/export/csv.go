package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// WriteBalanceSheetCSV writes a balance sheet as code/name/amount rows,
// section by section, with totals labelled in the name column.
func WriteBalanceSheetCSV(w io.Writer, report *domain.BalanceSheetReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	sections := []struct {
		balances []domain.AccountBalance
		totalRow []string
	}{
		{report.Assets, []string{"", "Total Assets", report.TotalAssets.StringFixed(2)}},
		{report.Liabilities, []string{"", "Total Liabilities", report.TotalLiabilities.StringFixed(2)}},
		{report.Equity, []string{"", "Total Equity", report.TotalEquity.StringFixed(2)}},
	}

	for _, section := range sections {
		for _, b := range section.balances {
			if err := cw.Write(balanceRecord(b)); err != nil {
				return fmt.Errorf("writing row for %q: %w", b.Account.Name, err)
			}
		}
		if err := cw.Write(section.totalRow); err != nil {
			return fmt.Errorf("writing total row: %w", err)
		}
	}

	return cw.Error()
}

// WriteIncomeStatementCSV writes an income statement as code/name/amount rows.
func WriteIncomeStatementCSV(w io.Writer, report *domain.IncomeStatementReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, group := range [][]domain.AccountBalance{report.Revenue, report.COGS, report.Expenses} {
		for _, b := range group {
			if err := cw.Write(balanceRecord(b)); err != nil {
				return fmt.Errorf("writing row for %q: %w", b.Account.Name, err)
			}
		}
	}

	summaryRows := [][]string{
		{"", "Total Revenue", report.TotalRevenue.StringFixed(2)},
		{"", "Total COGS", report.TotalCOGS.StringFixed(2)},
		{"", "Gross Profit", report.GrossProfit.StringFixed(2)},
		{"", "Total Expenses", report.TotalExpenses.StringFixed(2)},
		{"", "Net Income", report.NetIncome.StringFixed(2)},
	}
	for _, row := range summaryRows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	return cw.Error()
}

// WriteTrialBalanceCSV writes a trial balance as code/name/debit/credit rows.
func WriteTrialBalanceCSV(w io.Writer, report *domain.TrialBalanceReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "debit", "credit"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range report.Rows {
		record := []string{r.Code, r.AccountName, r.Debit.StringFixed(2), r.Credit.StringFixed(2)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row for %q: %w", r.AccountName, err)
		}
	}

	totals := []string{"", "Totals", report.TotalDebits.StringFixed(2), report.TotalCredits.StringFixed(2)}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("writing totals row: %w", err)
	}

	return cw.Error()
}

// WriteCashFlowCSV writes the cash flow statement as name/amount rows.
func WriteCashFlowCSV(w io.Writer, report *domain.CashFlowReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rows := [][]string{
		{"Operating Activities", report.Operating.StringFixed(2)},
		{"Investing Activities", report.Investing.StringFixed(2)},
		{"Financing Activities", report.Financing.StringFixed(2)},
		{"Net Change in Cash", report.NetChange.StringFixed(2)},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	return cw.Error()
}

func balanceRecord(b domain.AccountBalance) []string {
	return []string{b.Account.Code, b.Account.Name, b.Balance.StringFixed(2)}
}
