package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/greenroom/pkg/events"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
)

type recordingHandler struct {
	name     string
	err      error
	received []interfaces.Event
}

func (h *recordingHandler) Handle(_ context.Context, event interfaces.Event) error {
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) Name() string { return h.name }

func TestInMemoryEventBus_PublishDeliversByType(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoop())
	completed := &recordingHandler{name: "completed"}
	other := &recordingHandler{name: "other"}

	require.NoError(t, bus.Subscribe("comparison.completed", completed))
	require.NoError(t, bus.Subscribe("something.else", other))

	event := events.NewAggregateEvent("comparison.completed", "cmp-1", map[string]interface{}{"failures": 0})
	require.NoError(t, bus.Publish(context.Background(), event))

	require.Len(t, completed.received, 1)
	assert.Equal(t, "cmp-1", completed.received[0].AggregateID())
	assert.Empty(t, other.received)
}

func TestInMemoryEventBus_HandlerFailureDoesNotStopDelivery(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoop())
	failing := &recordingHandler{name: "failing", err: errors.New("boom")}
	after := &recordingHandler{name: "after"}

	require.NoError(t, bus.Subscribe("comparison.completed", failing))
	require.NoError(t, bus.Subscribe("comparison.completed", after))

	err := bus.Publish(context.Background(), events.NewEvent("comparison.completed", nil))
	require.NoError(t, err)
	assert.Len(t, failing.received, 1)
	assert.Len(t, after.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoop())
	handler := &recordingHandler{name: "handler"}

	require.NoError(t, bus.Subscribe("comparison.completed", handler))
	require.NoError(t, bus.Unsubscribe("comparison.completed", handler))
	require.NoError(t, bus.Publish(context.Background(), events.NewEvent("comparison.completed", nil)))

	assert.Empty(t, handler.received)
}

func TestNewEvent(t *testing.T) {
	event := events.NewEvent("comparison.completed", map[string]interface{}{"k": "v"})
	assert.Equal(t, "comparison.completed", event.EventType())
	assert.Empty(t, event.AggregateID())
	assert.Positive(t, event.Timestamp())
}
