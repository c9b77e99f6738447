package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/aussiebroadwan/gymtrack/pkg/mailx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

const (
	SubjectVerifyEmail   = "Verify your email"
	SubjectResetPassword = "Reset your password"
)

// Notifier issues link tokens and mails them to users. Delivery problems are
// logged and counted but never returned, so a committed change is not
// reported as failed because the mail server was down.
type Notifier struct {
	Mailer  mailx.Mailer
	Codec   *jwtx.Codec
	BaseURL string
	Metrics *metrics.Metrics
}

// VerificationLink is the address the verification email points to.
func (n *Notifier) VerificationLink(token string) string {
	return strings.TrimRight(n.BaseURL, "/") + "/email-verify?token=" + url.QueryEscape(token)
}

// ResetLink is the address the password reset email points to.
func (n *Notifier) ResetLink(token string) string {
	return strings.TrimRight(n.BaseURL, "/") + "/password-reset-confirm/" + url.PathEscape(token)
}

// SendVerification mails u a fresh email verification link.
func (n *Notifier) SendVerification(ctx context.Context, u domain.User) {
	n.send(ctx, u, jwtx.PurposeEmailVerification)
}

// SendPasswordReset mails u a fresh password reset link.
func (n *Notifier) SendPasswordReset(ctx context.Context, u domain.User) {
	n.send(ctx, u, jwtx.PurposePasswordReset)
}

func (n *Notifier) send(ctx context.Context, u domain.User, purpose jwtx.Purpose) {
	log := slogx.FromContext(ctx).With(
		slog.String("user_id", u.ID),
		slog.String("purpose", string(purpose)),
	)

	token, err := n.Codec.Issue(u.ID, purpose)
	if err != nil {
		log.Error("failed to issue link token", slog.Any("error", err))
		n.Metrics.EmailSent(string(purpose), err)
		return
	}

	var msg mailx.Message
	switch purpose {
	case jwtx.PurposePasswordReset:
		msg = mailx.Message{
			To:      u.Email,
			Subject: SubjectResetPassword,
			Body:    fmt.Sprintf("Hello %s! Use link below to reset your password \n%s", u.Username, n.ResetLink(token)),
		}
	default:
		msg = mailx.Message{
			To:      u.Email,
			Subject: SubjectVerifyEmail,
			Body:    fmt.Sprintf("Hello %s! Use link below to verify your email \n%s", u.Username, n.VerificationLink(token)),
		}
	}

	err = n.Mailer.Send(ctx, msg)
	n.Metrics.EmailSent(string(purpose), err)
	if err != nil {
		log.Error("failed to send email", slog.Any("error", err))
		return
	}
	log.Debug("email sent")
}

// decodeLink maps a codec result to the service sentinels.
func decodeLink(codec *jwtx.Codec, raw string, purpose jwtx.Purpose) (string, error) {
	res := codec.Decode(raw, purpose)
	switch res.Status {
	case jwtx.Valid:
		return res.UserID, nil
	case jwtx.Expired:
		return "", ErrTokenExpired
	default:
		return "", ErrInvalidToken
	}
}
