package mailSender

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"contact_service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	m := &Mailer{Username: "owner@example.com", FromName: "Site Owner"}

	msg := m.message(models.EmailDispatch{
		To:      "visitor@example.com",
		Subject: "Email Received - Thank You",
		Body:    "Hi Alice",
	})

	assert.Equal(t, []string{"visitor@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Email Received - Thank You"}, msg.GetHeader("Subject"))

	from := msg.GetHeader("From")
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "owner@example.com")
	assert.Contains(t, from[0], "Site Owner")

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/plain")
	assert.Contains(t, buf.String(), "Hi Alice")
}

func TestSendRelayUnavailable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	m := &Mailer{Host: "127.0.0.1", Port: port, Username: "owner@example.com", Password: "pass"}

	err = m.Send(context.Background(), models.EmailDispatch{To: "visitor@example.com", Subject: "s", Body: "b"})
	require.Error(t, err)
}

func TestSendContextDone(t *testing.T) {
	// The listener never greets, so the SMTP handshake blocks.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	m := &Mailer{Host: "127.0.0.1", Port: l.Addr().(*net.TCPAddr).Port, Username: "owner@example.com", Password: "pass"}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = m.Send(ctx, models.EmailDispatch{To: "visitor@example.com", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
