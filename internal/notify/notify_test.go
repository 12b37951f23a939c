package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ado-client/internal/notify"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

var errTestFlush = errors.New("flush timeout")

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages []published
	flushErr error
	closed   bool
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	c.messages = append(c.messages, published{subject: subject, data: data})

	return nil
}

func (c *fakeConn) FlushWithContext(context.Context) error {
	return c.flushErr
}

func (c *fakeConn) Close() {
	c.closed = true
}

func TestNATSPublisher_Publish(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	publisher := notify.NewNATSPublisher(conn, ado.NopLogger{})

	event := &notify.Event{
		Subject:    notify.SubjectPullRequestCreated,
		Tenant:     "contoso",
		Project:    "proj",
		Repository: "repo-1",
		Username:   "jdoe",
		Payload:    json.RawMessage(`{"pullRequestId": 42}`),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, conn.messages, 1)
	assert.Equal(t, "ado.pullrequests.created", conn.messages[0].subject)

	var decoded map[string]interface{}

	require.NoError(t, json.Unmarshal(conn.messages[0].data, &decoded))
	assert.Equal(t, "contoso", decoded["tenant"])
	assert.Equal(t, "repo-1", decoded["repository"])
	assert.Equal(t, map[string]interface{}{"pullRequestId": float64(42)}, decoded["payload"])
	assert.NotContains(t, decoded, "Subject")
	assert.False(t, event.Time.IsZero())

	publisher.Close()
	assert.True(t, conn.closed)
}

func TestNATSPublisher_FlushError(t *testing.T) {
	t.Parallel()

	publisher := notify.NewNATSPublisher(&fakeConn{flushErr: errTestFlush}, nil)

	err := publisher.Publish(context.Background(), &notify.Event{Subject: notify.SubjectPullRequestCreated})
	require.ErrorIs(t, err, errTestFlush)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	publisher, err := notify.Connect("nats://127.0.0.1:1", ado.NopLogger{}, nats.Timeout(200*time.Millisecond))
	require.Error(t, err)
	assert.Nil(t, publisher)
}

func TestNopPublisher(t *testing.T) {
	t.Parallel()

	var publisher notify.Publisher = notify.NopPublisher{}

	require.NoError(t, publisher.Publish(context.Background(), &notify.Event{}))
	publisher.Close()
}
