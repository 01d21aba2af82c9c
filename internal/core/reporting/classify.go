package reporting

import (
	"strings"

	"github.com/bistrobooks/backoffice/internal/core/domain"
)

// Category is a canonical account classification derived from account names.
// The source data carries no subtype column, so classification rides on
// naming conventions; keeping the lookup table here, separate from the
// balance math, lets the rules be tested and extended independently.
type Category string

const (
	CategoryGeneral Category = "GENERAL"
	CategoryPayroll Category = "PAYROLL"
	CategoryCash    Category = "CASH"
)

// categoryPatterns maps lower-cased name substrings to categories. First
// match wins, so more specific patterns belong earlier.
var categoryPatterns = []struct {
	substr   string
	category Category
}{
	{"payroll", CategoryPayroll},
	{"wages", CategoryPayroll},
	{"salar", CategoryPayroll}, // salary, salaries, salaried
	{"labor", CategoryPayroll},
	{"labour", CategoryPayroll},
	{"cash", CategoryCash},
	{"checking", CategoryCash},
	{"savings", CategoryCash},
	{"bank", CategoryCash},
	{"petty", CategoryCash},
}

// Classify returns the canonical category for an account name.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, p := range categoryPatterns {
		if strings.Contains(lower, p.substr) {
			return p.category
		}
	}
	return CategoryGeneral
}

// IsPayrollExpense reports whether a balance row is a payroll-classified
// expense account. The accrual gap-filler uses this to decide whether
// payroll has already been journaled for the window.
func IsPayrollExpense(b domain.AccountBalance) bool {
	return b.Account.AccountType == domain.Expense && Classify(b.Account.Name) == CategoryPayroll
}

// IsCashAccount reports whether an account is a cash-subtype asset account
// (cash, checking, savings, petty cash). The cash flow statement tracks
// movement through these accounts only.
func IsCashAccount(a domain.Account) bool {
	return a.AccountType == domain.Asset && Classify(a.Name) == CategoryCash
}
