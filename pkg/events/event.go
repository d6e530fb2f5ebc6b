package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides a default implementation of DomainEvent. Fields are
// exported with JSON tags so that a concrete event embedding BaseEvent
// serializes its envelope along with its payload fields.
type BaseEvent struct {
	ID         string    `json:"event_id"`
	Type       string    `json:"event_type"`
	Aggregate  string    `json:"aggregate_id"`
	Kind       string    `json:"aggregate_type"`
	OccurredTS time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType string) BaseEvent {
	return BaseEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Aggregate:  aggregateID,
		Kind:       aggregateType,
		OccurredTS: time.Now().UTC(),
	}
}

// EventID returns the unique identifier for this event.
func (e BaseEvent) EventID() string { return e.ID }

// EventType returns the type name of this event.
func (e BaseEvent) EventType() string { return e.Type }

// AggregateID returns the identifier of the aggregate that produced this event.
func (e BaseEvent) AggregateID() string { return e.Aggregate }

// AggregateType returns the type name of the aggregate that produced this event.
func (e BaseEvent) AggregateType() string { return e.Kind }

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.OccurredTS }
