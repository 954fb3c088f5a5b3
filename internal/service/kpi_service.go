package service

import (
	"sort"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SnapshotSource provides a consistent, side-effect-free view of the store.
type SnapshotSource interface {
	Snapshot() domain.State
}

// KPIService derives the dashboard figures from the store's current contents.
// Every call recomputes from scratch; there is no cached state.
type KPIService struct {
	source SnapshotSource
}

// NewKPIService creates a new KPIService.
func NewKPIService(source SnapshotSource) *KPIService {
	return &KPIService{source: source}
}

var oneHundred = decimal.NewFromInt(100)

// Summary computes the budget/spend/remaining/rate figures.
func (s *KPIService) Summary() domain.KPISummary {
	state := s.source.Snapshot()
	return ComputeSummary(&state)
}

// ComputeSummary derives the KPI figures from a state snapshot.
func ComputeSummary(state *domain.State) domain.KPISummary {
	totalSpent := decimal.Zero
	commonSpent := decimal.Zero
	personalSpent := decimal.Zero
	for _, t := range state.Transactions {
		totalSpent = totalSpent.Add(t.Amount)
		switch t.Type {
		case domain.TransactionTypeCommon:
			commonSpent = commonSpent.Add(t.Amount)
		case domain.TransactionTypePersonal:
			personalSpent = personalSpent.Add(t.Amount)
		}
	}

	personalBudgetTotal := decimal.Zero
	for _, p := range state.People {
		if p.MonthlyBudget != nil {
			personalBudgetTotal = personalBudgetTotal.Add(*p.MonthlyBudget)
		}
	}

	totalBudget := state.Budget.Add(personalBudgetTotal)

	spendRate := 0
	if !totalBudget.IsZero() {
		spendRate = int(totalSpent.Div(totalBudget).Mul(oneHundred).Round(0).IntPart())
	}

	return domain.KPISummary{
		Budget:              state.Budget,
		TotalSpent:          totalSpent,
		CommonSpent:         commonSpent,
		PersonalSpent:       personalSpent,
		PersonalBudgetTotal: personalBudgetTotal,
		TotalBudget:         totalBudget,
		TotalRemaining:      totalBudget.Sub(totalSpent),
		CommonRemaining:     state.Budget.Sub(commonSpent),
		PersonalRemaining:   personalBudgetTotal.Sub(personalSpent),
		SpendRate:           spendRate,
	}
}

// PersonSpending aggregates spend per person name across all transactions.
// Names match by exact string equality; no normalization.
func (s *KPIService) PersonSpending() map[string]domain.PersonSpending {
	state := s.source.Snapshot()

	spending := make(map[string]domain.PersonSpending)
	for _, t := range state.Transactions {
		entry := spending[t.Person]
		entry.Total = entry.Total.Add(t.Amount)
		entry.Count++
		spending[t.Person] = entry
	}
	return spending
}

// PersonBudgetSummary pairs each person's aggregated spend with their monthly
// budget, sorted by spend descending and truncated to the top spenders.
func (s *KPIService) PersonBudgetSummary() []domain.PersonBudgetEntry {
	state := s.source.Snapshot()

	spending := make(map[string]decimal.Decimal)
	for _, t := range state.Transactions {
		spending[t.Person] = spending[t.Person].Add(t.Amount)
	}

	entries := make([]domain.PersonBudgetEntry, 0, len(state.People))
	for _, p := range state.People {
		budget := decimal.Zero
		if p.MonthlyBudget != nil {
			budget = *p.MonthlyBudget
		}
		entries = append(entries, domain.PersonBudgetEntry{
			Name:      p.Name,
			Spent:     spending[p.Name],
			Budget:    budget,
			HasBudget: p.MonthlyBudget != nil && p.MonthlyBudget.IsPositive(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Spent.GreaterThan(entries[j].Spent)
	})

	if len(entries) > domain.PersonBudgetSummaryLimit {
		entries = entries[:domain.PersonBudgetSummaryLimit]
	}
	return entries
}
