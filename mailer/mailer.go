package mailer

import (
	"context"
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender is the outbound delivery capability consumed by the digest
// batch. Implementations own provider specifics (rate limits, retries);
// callers only see success or a delivery error.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// SendGridSender delivers mail through the SendGrid v3 API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridSender(apiKey, fromName, fromEmail string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// NewSendGridFromEnv reads SENDGRID_API_KEY and builds a sender with the
// given verified from-address.
func NewSendGridFromEnv(fromName, fromEmail string) (*SendGridSender, error) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is required")
	}
	return NewSendGridSender(apiKey, fromName, fromEmail), nil
}

func (s *SendGridSender) Send(ctx context.Context, to, subject, html string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.fromEmail),
		subject,
		mail.NewEmail("", to),
		"Check out the events curated for you this week!",
		html,
	)
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
