package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/jpfonseca/watchlog/internal/logger"
)

// SMTPMailer sends plain-text emails over SMTP with PLAIN auth.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// New creates a new SMTPMailer.
func New(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a plain-text message to a single recipient. Delivery is
// synchronous; any transport failure is returned to the caller.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body)

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))

	logger.Log.Infow("send email",
		"to", to,
		"subject", subject,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// buildMessage constructs the raw RFC 5322 message with headers.
func buildMessage(from, to, subject, body string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.String()
}
