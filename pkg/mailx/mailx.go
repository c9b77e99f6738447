// Package mailx sends plain text transactional email.
package mailx

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
)

// ErrInvalidMessage is returned for messages without a usable recipient or subject.
var ErrInvalidMessage = errors.New("mailx: invalid message")

// Message is a plain text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Validate checks the recipient address and subject.
func (m Message) Validate() error {
	if m.Subject == "" {
		return errors.Join(ErrInvalidMessage, errors.New("subject is empty"))
	}
	if _, err := mail.ParseAddress(m.To); err != nil {
		return errors.Join(ErrInvalidMessage, err)
	}
	return nil
}

// Mailer delivers a message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of delivering them. It is the
// development default.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	l := m.Logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "email (not delivered)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
