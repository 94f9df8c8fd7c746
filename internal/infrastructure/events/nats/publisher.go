package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/narwhalmedia/greenroom/pkg/interfaces"
)

const publishAckTimeout = 5 * time.Second

// Forwarder is an event handler that republishes in-process events to JetStream.
type Forwarder struct {
	client *Client
	logger interfaces.Logger
}

// NewForwarder creates a new NATS forwarder
func NewForwarder(client *Client, logger interfaces.Logger) *Forwarder {
	return &Forwarder{
		client: client,
		logger: logger.WithFields(interfaces.String("component", "nats_forwarder")),
	}
}

// EventEnvelope wraps an event with metadata for transport
type EventEnvelope struct {
	ID          string           `json:"id"`
	AggregateID string           `json:"aggregate_id"`
	EventType   string           `json:"event_type"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Data        interfaces.Event `json:"data"`
}

// Name identifies the forwarder in event bus logs.
func (f *Forwarder) Name() string {
	return "nats_forwarder"
}

// Handle queues the event for <prefix>.<event type> and returns without
// waiting for the JetStream ack. The ack is logged in the background.
func (f *Forwarder) Handle(ctx context.Context, event interfaces.Event) error {
	if !f.client.IsConnected() {
		return fmt.Errorf("nats is not connected, dropping %s", event.EventType())
	}

	subject := f.client.Subject(event.EventType())

	envelope := EventEnvelope{
		ID:          uuid.NewString(),
		AggregateID: event.AggregateID(),
		EventType:   event.EventType(),
		OccurredAt:  time.Unix(0, event.Timestamp()).UTC(),
		Data:        event,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	future, err := f.client.JetStream().PublishAsync(subject, data, jetstream.WithMsgID(envelope.ID))
	if err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", subject, err)
	}

	go f.awaitAck(future, event.EventType(), subject)
	return nil
}

func (f *Forwarder) awaitAck(future jetstream.PubAckFuture, eventType, subject string) {
	timer := time.NewTimer(publishAckTimeout)
	defer timer.Stop()

	select {
	case ack := <-future.Ok():
		f.logger.Debug("event forwarded",
			interfaces.String("event_type", eventType),
			interfaces.String("subject", subject),
			interfaces.Any("sequence", ack.Sequence),
			interfaces.String("stream", ack.Stream))
	case err := <-future.Err():
		f.logger.Error("event forward failed",
			interfaces.String("event_type", eventType),
			interfaces.String("subject", subject),
			interfaces.Error(err))
	case <-timer.C:
		f.logger.Warn("event forward ack timed out",
			interfaces.String("event_type", eventType),
			interfaces.String("subject", subject))
	}
}

// StreamName derives the JetStream stream name from a subject prefix.
func StreamName(prefix string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(prefix)) + "_EVENTS"
}
