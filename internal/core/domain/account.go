package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	COGS      AccountType = "COGS"
)

// BalanceSide indicates which side of the ledger increases an account.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// NormalBalance returns the side that increases accounts of this type.
// Asset, expense, and COGS accounts grow on the debit side; liability,
// equity, and revenue accounts grow on the credit side.
func (t AccountType) NormalBalance() BalanceSide {
	switch t {
	case Asset, Expense, COGS:
		return DebitSide
	default:
		return CreditSide
	}
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, COGS:
		return true
	}
	return false
}

// Account represents a chart-of-accounts entry within the core domain.
// Accounts are created and edited by the external account-management UI;
// this service only ever reads them.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary Key (e.g., UUID)
	RestaurantID string      `json:"restaurantID"` // FK -> restaurants.restaurant_id (NON-NULL)
	Code         string      `json:"code"`         // Display ordering key
	Name         string      `json:"name"`         // User-defined name
	AccountType  AccountType `json:"accountType"`  // ASSET, LIABILITY, etc.
	IsActive     bool        `json:"isActive"`     // Inactive accounts are excluded from statements
}

// NormalBalance returns the account's normal balance side, derived from its
// type. The chart_of_accounts table also stores a normal_balance column; the
// derived rule is authoritative for balance math so the sign convention can
// never drift from the account type.
func (a Account) NormalBalance() BalanceSide {
	return a.AccountType.NormalBalance()
}
