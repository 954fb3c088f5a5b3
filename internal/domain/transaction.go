package domain

import "github.com/shopspring/decimal"

type TransactionType string

const (
	// TransactionTypeCommon is a shared/team expense drawn against the common budget.
	TransactionTypeCommon TransactionType = "common"
	// TransactionTypePersonal is an individual expense drawn against the person's monthly budget.
	TransactionTypePersonal TransactionType = "personal"
)

// Transaction is a single corporate-card charge. Person and Card are display
// labels, not ids: renaming a person or re-issuing a card leaves historical
// transactions carrying the old label.
type Transaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // calendar date, YYYY-MM-DD
	Merchant string          `json:"merchant"`
	Person   string          `json:"person"`
	Type     TransactionType `json:"type"`
	Card     string          `json:"card"` // "**** NNNN" display label
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// TransactionPatch carries a partial update. Nil fields are left unchanged.
type TransactionPatch struct {
	Date     *string
	Merchant *string
	Person   *string
	Type     *TransactionType
	Card     *string
	Amount   *decimal.Decimal
	Note     *string
}

// FilterAll matches every value of a filter dimension.
const FilterAll = "all"

// Filters is the persisted view state used to narrow the transaction list.
// It never affects KPI aggregation.
type Filters struct {
	Type   string `json:"type"`
	Person string `json:"person"`
	Card   string `json:"card"`
}

// FiltersPatch carries a partial filters update. Nil fields are left unchanged.
type FiltersPatch struct {
	Type   *string
	Person *string
	Card   *string
}

// Match reports whether a transaction passes the filter set.
func (f Filters) Match(t *Transaction) bool {
	if f.Type != FilterAll && string(t.Type) != f.Type {
		return false
	}
	if f.Person != FilterAll && t.Person != f.Person {
		return false
	}
	if f.Card != FilterAll && t.Card != f.Card {
		return false
	}
	return true
}
