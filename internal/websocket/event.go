package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the kind of change that happened
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
	EventTypeChanged EventType = "changed"
	EventTypeSeeded  EventType = "seeded"
)

// EntityType represents the entity the event is about
type EntityType string

const (
	EntityTypeTransaction EntityType = "transaction"
	EntityTypePerson      EntityType = "person"
	EntityTypeCard        EntityType = "card"
	EntityTypeBudget      EntityType = "budget"
	EntityTypeFilters     EntityType = "filters"
	EntityTypeRole        EntityType = "role"
	EntityTypeStore       EntityType = "store"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "transaction"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionCreated creates a transaction.created event
func TransactionCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
}

// TransactionUpdated creates a transaction.updated event
func TransactionUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeTransaction, payload)
}

// TransactionDeleted creates a transaction.deleted event
func TransactionDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeTransaction, payload)
}

// PersonCreated creates a person.created event
func PersonCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypePerson, payload)
}

// PersonUpdated creates a person.updated event
func PersonUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypePerson, payload)
}

// PersonDeleted creates a person.deleted event
func PersonDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypePerson, payload)
}

// CardCreated creates a card.created event
func CardCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeCard, payload)
}

// CardUpdated creates a card.updated event
func CardUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeCard, payload)
}

// CardDeleted creates a card.deleted event
func CardDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeCard, payload)
}

// BudgetChanged creates a budget.changed event
func BudgetChanged(payload interface{}) Event {
	return NewEvent(EventTypeChanged, EntityTypeBudget, payload)
}

// FiltersChanged creates a filters.changed event
func FiltersChanged(payload interface{}) Event {
	return NewEvent(EventTypeChanged, EntityTypeFilters, payload)
}

// RoleChanged creates a role.changed event
func RoleChanged(payload interface{}) Event {
	return NewEvent(EventTypeChanged, EntityTypeRole, payload)
}

// StoreSeeded creates a store.seeded event
func StoreSeeded(payload interface{}) Event {
	return NewEvent(EventTypeSeeded, EntityTypeStore, payload)
}
