package store

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// StorageKey is the namespace the expense state snapshot is persisted under.
const StorageKey = "expense-tracker-storage"

// ExpenseStore owns the transactions, people, cards, shared budget and view
// filters. Every mutation writes the whole state through to the snapshot
// repository. Mutations never fail: unknown ids are silently ignored and a
// persistence error is logged, not surfaced.
//
// The store performs no validation; that contract belongs to the caller.
type ExpenseStore struct {
	mu     sync.RWMutex
	state  *domain.State
	repo   domain.SnapshotRepository
	lastID int64
}

// NewExpenseStore loads the persisted snapshot, falling back to a fresh
// default state when none exists or the stored blob cannot be decoded.
func NewExpenseStore(repo domain.SnapshotRepository) *ExpenseStore {
	s := &ExpenseStore{repo: repo, state: domain.NewState()}

	data, err := repo.Load(StorageKey)
	switch {
	case err == domain.ErrSnapshotNotFound:
		// first run
	case err != nil:
		log.Warn().Err(err).Msg("Failed to load expense snapshot, starting fresh")
	default:
		var state domain.State
		if err := json.Unmarshal(data, &state); err != nil {
			log.Warn().Err(err).Msg("Corrupt expense snapshot, starting fresh")
		} else {
			normalize(&state)
			s.state = &state
		}
	}

	s.seedLastID()
	return s
}

// normalize fills zero values a hand-edited or older snapshot may be missing.
func normalize(state *domain.State) {
	if state.Transactions == nil {
		state.Transactions = []*domain.Transaction{}
	}
	if state.People == nil {
		state.People = []*domain.Person{}
	}
	if state.Cards == nil {
		state.Cards = []*domain.Card{}
	}
	if state.Filters.Type == "" {
		state.Filters.Type = domain.FilterAll
	}
	if state.Filters.Person == "" {
		state.Filters.Person = domain.FilterAll
	}
	if state.Filters.Card == "" {
		state.Filters.Card = domain.FilterAll
	}
}

func (s *ExpenseStore) seedLastID() {
	for _, t := range s.state.Transactions {
		if n, err := strconv.ParseInt(t.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	for _, p := range s.state.People {
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	for _, c := range s.state.Cards {
		if n, err := strconv.ParseInt(c.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
}

// newID issues a creation-ordered id: the current millisecond clock, bumped
// past the last issued id so rapid calls within one session never collide.
func (s *ExpenseStore) newID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// persist writes the whole state through to durable storage. Must be called
// with the write lock held.
func (s *ExpenseStore) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize expense state")
		return
	}
	if err := s.repo.Save(StorageKey, data); err != nil {
		log.Warn().Err(err).Msg("Failed to persist expense state")
	}
}

// InitializeData seeds the demonstration dataset, but only when transactions,
// people and cards are all simultaneously empty. Safe to call repeatedly.
// Returns true when seeding actually happened.
func (s *ExpenseStore) InitializeData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Transactions) != 0 || len(s.state.People) != 0 || len(s.state.Cards) != 0 {
		return false
	}

	s.state.Transactions = domain.SeedTransactions()
	s.state.People = domain.SeedPeople()
	s.state.Cards = domain.SeedCards()
	s.seedLastID()
	s.persist()
	return true
}

// AddTransaction assigns a fresh id and prepends the transaction, so the list
// stays most-recent-first by insertion order, not by date field.
func (s *ExpenseStore) AddTransaction(t domain.Transaction) *domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.newID()
	s.state.Transactions = append([]*domain.Transaction{&t}, s.state.Transactions...)
	s.persist()

	copied := t
	return &copied
}

// UpdateTransaction merges the patch into the matching record. Unknown ids
// are a no-op; the updated record (or nil) is returned.
func (s *ExpenseStore) UpdateTransaction(id string, patch domain.TransactionPatch) *domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *domain.Transaction
	for _, t := range s.state.Transactions {
		if t.ID != id {
			continue
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Merchant != nil {
			t.Merchant = *patch.Merchant
		}
		if patch.Person != nil {
			t.Person = *patch.Person
		}
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Card != nil {
			t.Card = *patch.Card
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Note != nil {
			t.Note = *patch.Note
		}
		copied := *t
		updated = &copied
		break
	}
	s.persist()
	return updated
}

// DeleteTransaction removes the matching record; unknown ids are a no-op.
func (s *ExpenseStore) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Transactions[:0]
	for _, t := range s.state.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.state.Transactions = kept
	s.persist()
}

// AddPerson assigns a fresh id and prepends the person.
func (s *ExpenseStore) AddPerson(p domain.Person) *domain.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID()
	s.state.People = append([]*domain.Person{&p}, s.state.People...)
	s.persist()

	copied := p
	return &copied
}

// UpdatePerson merges the patch into the matching record. No cascading
// rename: transactions keep referencing the old name by value.
func (s *ExpenseStore) UpdatePerson(id string, patch domain.PersonPatch) *domain.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *domain.Person
	for _, p := range s.state.People {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Team != nil {
			p.Team = *patch.Team
		}
		if patch.Active != nil {
			p.Active = *patch.Active
		}
		if patch.DefaultCard != nil {
			p.DefaultCard = *patch.DefaultCard
		}
		if patch.ClearMonthlyBudget {
			p.MonthlyBudget = nil
		} else if patch.MonthlyBudget != nil {
			b := *patch.MonthlyBudget
			p.MonthlyBudget = &b
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		copied := *p
		updated = &copied
		break
	}
	s.persist()
	return updated
}

// DeletePerson removes the matching record. Existing transactions referencing
// the person's name are left untouched.
func (s *ExpenseStore) DeletePerson(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.People[:0]
	for _, p := range s.state.People {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.People = kept
	s.persist()
}

// AddCard assigns a fresh id and prepends the card. The first card added to
// an empty collection becomes the default regardless of the supplied flag.
func (s *ExpenseStore) AddCard(c domain.Card) *domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID()
	if len(s.state.Cards) == 0 {
		c.IsDefault = true
	}
	s.state.Cards = append([]*domain.Card{&c}, s.state.Cards...)
	s.persist()

	copied := c
	return &copied
}

// UpdateCard merges the patch into the matching record. It deliberately does
// not re-enforce the single-default invariant; only SetDefaultCard does.
func (s *ExpenseStore) UpdateCard(id string, patch domain.CardPatch) *domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *domain.Card
	for _, c := range s.state.Cards {
		if c.ID != id {
			continue
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.LastFourDigits != nil {
			c.LastFourDigits = *patch.LastFourDigits
		}
		if patch.Active != nil {
			c.Active = *patch.Active
		}
		if patch.IsDefault != nil {
			c.IsDefault = *patch.IsDefault
		}
		copied := *c
		updated = &copied
		break
	}
	s.persist()
	return updated
}

// DeleteCard removes the matching record. The store does not stop the caller
// from deleting the current default card; that guard lives in the UI layer.
func (s *ExpenseStore) DeleteCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Cards[:0]
	for _, c := range s.state.Cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.state.Cards = kept
	s.persist()
}

// SetDefaultCard makes the matching card the single default in one atomic
// update: every card's flag becomes (card.id == id), so an unknown id leaves
// no default at all.
func (s *ExpenseStore) SetDefaultCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.state.Cards {
		c.IsDefault = c.ID == id
	}
	s.persist()
}

// DefaultCard returns the card currently flagged as default, if any.
func (s *ExpenseStore) DefaultCard() (*domain.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.state.Cards {
		if c.IsDefault {
			copied := *c
			return &copied, true
		}
	}
	return nil, false
}

// UpdateBudget replaces the shared budget scalar. Non-negativity is the
// caller's responsibility.
func (s *ExpenseStore) UpdateBudget(budget decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Budget = budget
	s.persist()
}

// UpdateFilters merges the patch into the persisted view filters.
func (s *ExpenseStore) UpdateFilters(patch domain.FiltersPatch) domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Type != nil {
		s.state.Filters.Type = *patch.Type
	}
	if patch.Person != nil {
		s.state.Filters.Person = *patch.Person
	}
	if patch.Card != nil {
		s.state.Filters.Card = *patch.Card
	}
	s.persist()
	return s.state.Filters
}

// Transactions returns a copy of the transaction list, most recent first.
func (s *ExpenseStore) Transactions() []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTransactions(s.state.Transactions)
}

// People returns a copy of the people list.
func (s *ExpenseStore) People() []*domain.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPeople(s.state.People)
}

// Cards returns a copy of the card list.
func (s *ExpenseStore) Cards() []*domain.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCards(s.state.Cards)
}

// Budget returns the shared budget scalar.
func (s *ExpenseStore) Budget() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Budget
}

// Filters returns the persisted view filters.
func (s *ExpenseStore) Filters() domain.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Filters
}

// Snapshot returns a deep copy of the whole state for side-effect-free reads.
func (s *ExpenseStore) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.State{
		Transactions: copyTransactions(s.state.Transactions),
		People:       copyPeople(s.state.People),
		Cards:        copyCards(s.state.Cards),
		Budget:       s.state.Budget,
		Filters:      s.state.Filters,
	}
}

func copyTransactions(src []*domain.Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, len(src))
	for i, t := range src {
		copied := *t
		out[i] = &copied
	}
	return out
}

func copyPeople(src []*domain.Person) []*domain.Person {
	out := make([]*domain.Person, len(src))
	for i, p := range src {
		copied := *p
		if p.MonthlyBudget != nil {
			b := *p.MonthlyBudget
			copied.MonthlyBudget = &b
		}
		out[i] = &copied
	}
	return out
}

func copyCards(src []*domain.Card) []*domain.Card {
	out := make([]*domain.Card, len(src))
	for i, c := range src {
		copied := *c
		out[i] = &copied
	}
	return out
}
