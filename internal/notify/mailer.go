package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends one email. Implementations can be swapped without
// touching the lifecycle code.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --------------------------------------------------
// SendGrid
// --------------------------------------------------

type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("notify: sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// --------------------------------------------------
// Stub (email disabled / tests)
// --------------------------------------------------

type StubMailer struct {
	log zerolog.Logger
}

func NewStubMailer(log zerolog.Logger) *StubMailer {
	return &StubMailer{log: log}
}

func (m *StubMailer) Send(ctx context.Context, to, subject, body string) error {
	m.log.Info().Str("to", to).Str("subject", subject).Msg("stub mailer: skipping send")
	return nil
}
