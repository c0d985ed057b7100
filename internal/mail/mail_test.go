package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("noreply@watchlog.local", "ana@example.com", "Password reset instructions", "Follow the link.")

	lines := strings.Split(msg, "\r\n")
	assert.Equal(t, "From: noreply@watchlog.local", lines[0])
	assert.Equal(t, "To: ana@example.com", lines[1])
	assert.Equal(t, "Subject: Password reset instructions", lines[2])
	assert.Equal(t, "MIME-Version: 1.0", lines[3])
	assert.Equal(t, `Content-Type: text/plain; charset="UTF-8"`, lines[4])

	// Blank line separates headers from the body
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "Follow the link.", lines[6])
}

func TestSend_UnreachableServer(t *testing.T) {
	m := New("127.0.0.1", "1", "user", "pass", "noreply@watchlog.local")

	err := m.Send(context.Background(), "ana@example.com", "subject", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ana@example.com")
}
