package domain

import "github.com/shopspring/decimal"

// State is the full expense-tracker state, serialized as one unit under a
// single namespace key.
type State struct {
	Transactions []*Transaction  `json:"transactions"`
	People       []*Person       `json:"people"`
	Cards        []*Card         `json:"cards"`
	Budget       decimal.Decimal `json:"budget"`
	Filters      Filters         `json:"filters"`
}

// DefaultBudget is the initial shared/common budget pool.
var DefaultBudget = decimal.NewFromInt(10_000_000)

// NewState returns the state a fresh installation starts from.
func NewState() *State {
	return &State{
		Transactions: []*Transaction{},
		People:       []*Person{},
		Cards:        []*Card{},
		Budget:       DefaultBudget,
		Filters:      Filters{Type: FilterAll, Person: FilterAll, Card: FilterAll},
	}
}

// SnapshotRepository persists one serialized snapshot per namespace key.
type SnapshotRepository interface {
	// Load returns the snapshot stored under key, or ErrSnapshotNotFound.
	Load(key string) ([]byte, error)
	// Save replaces the snapshot stored under key.
	Save(key string, data []byte) error
}
