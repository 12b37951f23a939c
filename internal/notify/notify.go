// Package notify publishes client events to a NATS subject so other services
// can react to pull requests created from the command line.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// Subjects events are published on.
const (
	SubjectPullRequestCreated = "ado.pullrequests.created"
)

// Event is the JSON document published for every notification.
type Event struct {
	Subject    string          `json:"-"`
	Tenant     string          `json:"tenant"`
	Project    string          `json:"project"`
	Repository string          `json:"repository"`
	Username   string          `json:"username,omitempty"`
	Time       time.Time       `json:"time"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Publisher sends events.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close()
}

// Conn is the subset of *nats.Conn used by NATSPublisher.
type Conn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Close()
}

// NATSPublisher publishes events over a NATS connection.
type NATSPublisher struct {
	conn   Conn
	logger ado.Logger
}

// NewNATSPublisher wraps an established connection.
func NewNATSPublisher(conn Conn, logger ado.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, logger: ado.ChildLogger(logger, "notify")}
}

// Connect dials url and returns a publisher owning the connection.
func Connect(url string, logger ado.Logger, opts ...nats.Option) (*NATSPublisher, error) {
	opts = append([]nats.Option{nats.Name("ado-client")}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return NewNATSPublisher(conn, logger), nil
}

// Publish encodes event and waits until the server has received it.
func (p *NATSPublisher) Publish(ctx context.Context, event *Event) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	err = p.conn.Publish(event.Subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", event.Subject, err)
	}

	err = p.conn.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("flushing %s: %w", event.Subject, err)
	}

	p.logger.Debug("Published event", map[string]interface{}{
		"subject": event.Subject,
		"bytes":   len(data),
	})

	return nil
}

// Close closes the connection.
func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// NopPublisher drops every event. It is used when no NATS URL is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) error { return nil }
func (NopPublisher) Close()                                {}
