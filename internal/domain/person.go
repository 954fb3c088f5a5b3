package domain

import "github.com/shopspring/decimal"

// Person is a team member who can be assigned card transactions.
// MonthlyBudget is nil when no personal budget is set, which is distinct
// from a budget of zero.
type Person struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Team          string           `json:"team,omitempty"`
	Active        bool             `json:"active"`
	DefaultCard   string           `json:"defaultCard,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// PersonPatch carries a partial update. Nil fields are left unchanged.
// ClearMonthlyBudget resets the personal budget to "unset"; it wins over
// MonthlyBudget when both are provided.
type PersonPatch struct {
	Name               *string
	Team               *string
	Active             *bool
	DefaultCard        *string
	MonthlyBudget      *decimal.Decimal
	ClearMonthlyBudget bool
	Notes              *string
}
