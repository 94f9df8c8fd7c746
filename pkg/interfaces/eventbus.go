package interfaces

import (
	"context"
)

// Event represents something the gateway did that other components may care about.
type Event interface {
	// EventType returns the type of the event
	EventType() string

	// Timestamp returns when the event occurred (unix nanoseconds)
	Timestamp() int64

	// AggregateID returns the ID of the operation that produced the event
	AggregateID() string
}

// EventHandler handles events of a specific type.
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event Event) error

	// Name identifies the handler in logs
	Name() string
}

// EventBus provides in-process pub/sub for gateway events.
type EventBus interface {
	// Publish delivers an event to all subscribers of its type
	Publish(ctx context.Context, event Event) error

	// Subscribe registers a handler for a specific event type
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler for a specific event type
	Unsubscribe(eventType string, handler EventHandler) error
}
