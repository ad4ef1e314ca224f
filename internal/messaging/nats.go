package messaging

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/config"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Subjects published by this service.
const (
	SubjectSuggestions    = "growth.suggestions"
	SubjectContextUpdated = "growth.context.updated"
)

// NATSClient distributes suggestion batches and context refreshes to
// interested consumers (the websocket hub, other dashboard services).
type NATSClient struct {
	conn   *nats.Conn
	logger *logrus.Entry
	cfg    *config.NATSConfig

	subs   map[string]*nats.Subscription
	subsMu sync.Mutex
}

// NewNATSClient creates a new NATS client.
func NewNATSClient(cfg *config.NATSConfig, logger *logrus.Logger) (*NATSClient, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSClient{
		conn:   conn,
		logger: logger.WithField("component", "nats"),
		cfg:    cfg,
		subs:   make(map[string]*nats.Subscription),
	}, nil
}

// Close drains and closes the NATS connection.
func (nc *NATSClient) Close() error {
	nc.subsMu.Lock()
	for subject, sub := range nc.subs {
		if err := sub.Unsubscribe(); err != nil {
			nc.logger.WithError(err).WithField("subject", subject).Warn("Failed to unsubscribe")
		}
	}
	nc.subs = make(map[string]*nats.Subscription)
	nc.subsMu.Unlock()

	if err := nc.conn.Drain(); err != nil {
		nc.conn.Close()
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}

	return nil
}

// Health reports whether the connection is up.
func (nc *NATSClient) Health() error {
	if !nc.conn.IsConnected() {
		return fmt.Errorf("NATS not connected")
	}
	return nil
}

// PublishSuggestions publishes a freshly generated batch.
func (nc *NATSClient) PublishSuggestions(suggestions []models.ContentSuggestion) error {
	return nc.publishJSON(SubjectSuggestions, suggestions)
}

// PublishContextUpdate publishes a fresh context snapshot.
func (nc *NATSClient) PublishContextUpdate(block *models.ContextBlock) error {
	return nc.publishJSON(SubjectContextUpdated, block)
}

// Subscribe registers a handler for a subject. One subscription per
// subject; subscribing again replaces the previous handler.
func (nc *NATSClient) Subscribe(subject string, handler func(data []byte)) error {
	nc.subsMu.Lock()
	defer nc.subsMu.Unlock()

	if prev, ok := nc.subs[subject]; ok {
		if err := prev.Unsubscribe(); err != nil {
			nc.logger.WithError(err).WithField("subject", subject).Warn("Failed to replace subscription")
		}
	}

	sub, err := nc.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	nc.subs[subject] = sub
	return nil
}

func (nc *NATSClient) publishJSON(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", subject, err)
	}

	if err := nc.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}
