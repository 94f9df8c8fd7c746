package nats_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/greenroom/internal/infrastructure/events/nats"
	"github.com/narwhalmedia/greenroom/pkg/config"
	"github.com/narwhalmedia/greenroom/pkg/events"
	"github.com/narwhalmedia/greenroom/pkg/logger"
)

func testEventsConfig() config.EventsConfig {
	return config.EventsConfig{
		Enabled:       true,
		NATSURL:       "nats://localhost:4222",
		ClientName:    "greenroom-test",
		SubjectPrefix: "greenroom-test",
		MaxReconnect:  1,
		ReconnectWait: 100 * time.Millisecond,
	}
}

func TestStreamName(t *testing.T) {
	assert.Equal(t, "GREENROOM_EVENTS", nats.StreamName("greenroom"))
	assert.Equal(t, "GREENROOM_TEST_EVENTS", nats.StreamName("greenroom-test"))
	assert.Equal(t, "A_B_EVENTS", nats.StreamName("a.b"))
}

func TestForwarder_Handle(t *testing.T) {
	cfg := testEventsConfig()
	log := logger.NewNoop()

	// Skip if NATS is not available
	client, cleanup, err := nats.NewClient(cfg, log)
	if err != nil {
		t.Skip("NATS not available:", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	consumer, err := client.JetStream().CreateOrUpdateConsumer(ctx, nats.StreamName(cfg.SubjectPrefix), jetstream.ConsumerConfig{
		FilterSubject: client.Subject("comparison.completed"),
		DeliverPolicy: jetstream.DeliverNewPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	require.NoError(t, err)

	require.True(t, client.IsConnected())
	forwarder := nats.NewForwarder(client, log)
	assert.Equal(t, "nats_forwarder", forwarder.Name())

	event := events.NewAggregateEvent("comparison.completed", "cmp-1", map[string]interface{}{
		"prompt_length": 5,
	})
	require.NoError(t, forwarder.Handle(ctx, event))

	msg, err := consumer.Next(jetstream.FetchMaxWait(2 * time.Second))
	require.NoError(t, err)
	require.NoError(t, msg.Ack())

	assert.Equal(t, "greenroom-test.comparison.completed", msg.Subject())

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Data(), &envelope))
	assert.Equal(t, "comparison.completed", envelope["event_type"])
	assert.Equal(t, "cmp-1", envelope["aggregate_id"])
	assert.NotEmpty(t, envelope["id"])
}

func TestForwarder_HandleReturnsBeforeAck(t *testing.T) {
	cfg := testEventsConfig()
	log := logger.NewNoop()

	client, cleanup, err := nats.NewClient(cfg, log)
	if err != nil {
		t.Skip("NATS not available:", err)
	}
	defer cleanup()

	forwarder := nats.NewForwarder(client, log)
	event := events.NewAggregateEvent("comparison.completed", "cmp-2", nil)

	start := time.Now()
	for i := 0; i < 20; i++ {
		require.NoError(t, forwarder.Handle(context.Background(), event))
	}
	assert.Less(t, time.Since(start), time.Second)

	select {
	case <-client.JetStream().PublishAsyncComplete():
	case <-time.After(5 * time.Second):
		t.Fatal("async publishes were not acknowledged")
	}
}

func TestForwarder_HandleFailsFastWhenDisconnected(t *testing.T) {
	cfg := testEventsConfig()
	log := logger.NewNoop()

	client, cleanup, err := nats.NewClient(cfg, log)
	if err != nil {
		t.Skip("NATS not available:", err)
	}
	cleanup()

	assert.False(t, client.IsConnected())

	forwarder := nats.NewForwarder(client, log)
	start := time.Now()
	err = forwarder.Handle(context.Background(), events.NewAggregateEvent("comparison.completed", "cmp-3", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
	assert.Less(t, time.Since(start), time.Second)
}
