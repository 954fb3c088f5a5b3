package domain

import "github.com/shopspring/decimal"

// KPISummary contains the budget/spend figures shown across the dashboard.
// Every field is derived from scratch from the current store contents.
type KPISummary struct {
	Budget              decimal.Decimal `json:"budget"`
	TotalSpent          decimal.Decimal `json:"totalSpent"`
	CommonSpent         decimal.Decimal `json:"commonSpent"`
	PersonalSpent       decimal.Decimal `json:"personalSpent"`
	PersonalBudgetTotal decimal.Decimal `json:"personalBudgetTotal"`
	TotalBudget         decimal.Decimal `json:"totalBudget"`
	TotalRemaining      decimal.Decimal `json:"totalRemaining"`
	CommonRemaining     decimal.Decimal `json:"commonRemaining"`
	PersonalRemaining   decimal.Decimal `json:"personalRemaining"`
	SpendRate           int             `json:"spendRate"` // percentage, nearest integer; 0 when totalBudget is 0
}

// PersonSpending accumulates spend for one person across all transactions
// matching that person's name exactly (case-sensitive).
type PersonSpending struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// PersonBudgetEntry pairs a person's aggregated spend with their monthly
// budget. HasBudget distinguishes "no budget set" from a zero budget.
type PersonBudgetEntry struct {
	Name      string          `json:"name"`
	Spent     decimal.Decimal `json:"spent"`
	Budget    decimal.Decimal `json:"budget"`
	HasBudget bool            `json:"hasBudget"`
}

// PersonBudgetSummaryLimit caps the dashboard person list at the top spenders.
const PersonBudgetSummaryLimit = 5
