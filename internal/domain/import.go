package domain

import "github.com/shopspring/decimal"

// ImportProvider describes an external transaction source. All providers are
// mocked stubs; none performs real network integration.
type ImportProvider struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Available    bool     `json:"available"`
}

// ImportTransaction is a candidate charge fetched from an import provider,
// pending review. Person and Type stay empty until the reviewer assigns them.
type ImportTransaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Card     string          `json:"card"`
	Category string          `json:"category,omitempty"`
	Selected bool            `json:"selected"`
	Person   string          `json:"person,omitempty"`
	Type     TransactionType `json:"type,omitempty"`
}
