package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is one debit-or-credit leg of a posted journal entry,
// flattened with its parent entry's date. Lines are immutable once posted;
// this service never writes them. In well-formed data exactly one of
// Debit/Credit is nonzero per line, but that is upstream's contract and is
// not enforced here.
type JournalLine struct {
	LineID       string          `json:"lineID"`       // Primary Key (e.g., UUID)
	EntryID      string          `json:"entryID"`      // FK -> journal_entries.entry_id
	AccountID    string          `json:"accountID"`    // FK -> chart_of_accounts.account_id
	RestaurantID string          `json:"restaurantID"` // Scope, joined from the parent entry
	EntryDate    time.Time       `json:"entryDate"`    // Joined from the parent entry
	Debit        decimal.Decimal `json:"debit"`        // NULL in the store reads as zero
	Credit       decimal.Decimal `json:"credit"`       // NULL in the store reads as zero
	Description  string          `json:"description"`  // Nullable memo from the parent entry
}
