package server

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Mail is a message carrying a one-time link.
type Mail struct {
	To      string
	Subject string
	Body    string
	Link    string
}

// Mailer delivers verification and password reset links.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// LogMailer writes mail to the log instead of sending it. It is the default for local development.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, mail Mail) error {
	log.Info().
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Str("link", mail.Link).
		Msg(mail.Body)
	return nil
}
