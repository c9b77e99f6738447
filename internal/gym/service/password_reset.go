package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

type PasswordResetService struct {
	Store    store.Store
	Codec    *jwtx.Codec
	Notifier *Notifier
	Metrics  *metrics.Metrics
}

// Request mails a reset link to the account registered under email.
// Unknown addresses are reported with ErrUserNotFound.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Metrics.AuthEvent("password_reset_request", "unknown_email")
			return ErrUserNotFound
		}
		slogx.FromContext(ctx).Error("failed to look up user", slog.Any("error", err))
		return err
	}

	s.Notifier.SendPasswordReset(ctx, user)
	s.Metrics.AuthEvent("password_reset_request", "ok")
	return nil
}

// Check reports whether token is a usable reset token without consuming it.
func (s *PasswordResetService) Check(ctx context.Context, token string) error {
	_, err := decodeLink(s.Codec, token, jwtx.PurposePasswordReset)
	return err
}

// Confirm sets a new password. The confirmation is compared before the
// password or the token are looked at.
func (s *PasswordResetService) Confirm(ctx context.Context, token, password, confirm string) error {
	log := slogx.FromContext(ctx)

	// 1. Payload.
	if password != confirm {
		ve := &ValidationError{}
		ve.AddNonField(MsgPasswordMatch)
		return ve
	}
	if err := checkPassword("password", password).Err(); err != nil {
		return err
	}

	// 2. Token.
	userID, err := decodeLink(s.Codec, token, jwtx.PurposePasswordReset)
	if err != nil {
		s.Metrics.AuthEvent("password_reset_confirm", outcome(err))
		return err
	}

	// 3. Re-hash.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		log.Error("failed to store password", slog.String("user_id", userID), slog.Any("error", err))
		return err
	}

	s.Metrics.AuthEvent("password_reset_confirm", "ok")
	log.Info("password reset", slog.String("user_id", userID))
	return nil
}
