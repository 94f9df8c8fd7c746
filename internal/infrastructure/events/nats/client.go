package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/narwhalmedia/greenroom/pkg/config"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
)

// Client wraps NATS and JetStream connections
type Client struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger interfaces.Logger
	prefix string
}

// NewClient connects to NATS and makes sure the gateway event stream exists.
func NewClient(cfg config.EventsConfig, logger interfaces.Logger) (*Client, func(), error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", interfaces.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", interfaces.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{
		nc:     nc,
		js:     js,
		logger: logger.WithFields(interfaces.String("component", "nats")),
		prefix: cfg.SubjectPrefix,
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.initializeStream(initCtx); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to initialize stream: %w", err)
	}

	cleanup := func() {
		select {
		case <-js.PublishAsyncComplete():
		case <-time.After(publishAckTimeout):
			logger.Warn("pending NATS publishes not acknowledged before shutdown",
				interfaces.Int("pending", js.PublishAsyncPending()))
		}
		if err := nc.Drain(); err != nil {
			logger.Error("failed to drain NATS connection", interfaces.Error(err))
		}
		nc.Close()
	}

	client.logger.Info("NATS client initialized",
		interfaces.String("url", cfg.NATSURL),
		interfaces.String("subject_prefix", cfg.SubjectPrefix))

	return client, cleanup, nil
}

// initializeStream creates the JetStream stream holding gateway events.
func (c *Client) initializeStream(ctx context.Context) error {
	stream := jetstream.StreamConfig{
		Name:         StreamName(c.prefix),
		Description:  "Gateway tool events",
		Subjects:     []string{c.prefix + ".>"},
		Retention:    jetstream.LimitsPolicy,
		MaxAge:       7 * 24 * time.Hour,
		MaxConsumers: -1,
		Replicas:     1,
		Storage:      jetstream.FileStorage,
		Discard:      jetstream.DiscardOld,
		MaxMsgs:      -1,
		MaxBytes:     -1,
	}

	if _, err := c.js.CreateOrUpdateStream(ctx, stream); err != nil {
		return fmt.Errorf("failed to create %s stream: %w", stream.Name, err)
	}
	return nil
}

// Subject returns the subject an event type is published on.
func (c *Client) Subject(eventType string) string {
	return c.prefix + "." + eventType
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// IsConnected reports whether the connection is currently up.
func (c *Client) IsConnected() bool {
	return c.nc.IsConnected()
}
