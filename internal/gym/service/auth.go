package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

type AuthService struct {
	Store    store.Store
	Codec    *jwtx.Codec
	Notifier *Notifier
	Metrics  *metrics.Metrics
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// Register creates an unverified account and mails a verification link.
// Every invalid field is reported at once and nothing is sent on failure.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)
	in.Email = domain.NormalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	// 1. Validate the payload.
	ve := &ValidationError{}
	if err := ve.Merge(validation.Errors{
		"email":    validation.Validate(in.Email, emailRules...),
		"password": validation.Validate(in.Password, passwordRules...),
		"username": validation.Validate(in.Username, usernameRules...),
	}.Filter()); err != nil {
		return domain.User{}, err
	}

	// 2. Email uniqueness is a field error reported alongside the others.
	if _, ok := ve.Fields["email"]; !ok {
		_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
		switch {
		case err == nil:
			ve.Add("email", MsgEmailTaken)
		case !errors.Is(err, store.ErrNotFound):
			log.Error("failed to look up email", slog.Any("error", err))
			return domain.User{}, err
		}
	}
	if err := ve.Err(); err != nil {
		s.Metrics.AuthEvent("register", "invalid")
		return domain.User{}, err
	}

	// 3. Hash and persist.
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fieldError("email", MsgEmailTaken)
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Send the verification link.
	s.Notifier.SendVerification(ctx, user)

	s.Metrics.AuthEvent("register", "ok")
	log.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// VerifyEmail marks the token's user as verified. Verifying twice is fine.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	userID, err := decodeLink(s.Codec, token, jwtx.PurposeEmailVerification)
	if err != nil {
		s.Metrics.AuthEvent("verify_email", outcome(err))
		return err
	}

	changed, err := s.Store.Users().SetVerified(ctx, userID, true)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Signed by us, but the account is gone.
			return ErrInvalidToken
		}
		log.Error("failed to verify user", slog.String("user_id", userID), slog.Any("error", err))
		return err
	}

	s.Metrics.AuthEvent("verify_email", "ok")
	log.Info("email verified", slog.String("user_id", userID), slog.Bool("changed", changed))
	return nil
}

// Login checks credentials and then the account guards in order, and returns
// the caller's session token, creating it on first login. Presenting that
// same token again is rejected with ErrAlreadyLoggedIn.
func (s *AuthService) Login(ctx context.Context, email, password, presented string) (string, error) {
	log := slogx.FromContext(ctx)

	ve := &ValidationError{}
	if err := ve.Merge(validation.Errors{
		"email":    validation.Validate(email, validation.Required.Error(MsgBlank)),
		"password": validation.Validate(password, validation.Required.Error(MsgBlank)),
	}.Filter()); err != nil {
		return "", err
	}
	if err := ve.Err(); err != nil {
		return "", err
	}

	// 1. Credentials.
	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Metrics.AuthEvent("login", outcome(ErrInvalidCredentials))
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return "", err
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("failed to verify password", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		s.Metrics.AuthEvent("login", outcome(ErrInvalidCredentials))
		return "", ErrInvalidCredentials
	}

	// 2. Account guards.
	if err := checkGuards(user, RequireVerified, RequireActive); err != nil {
		s.Metrics.AuthEvent("login", outcome(err))
		return "", err
	}

	// 3. Get or create the session token.
	var token domain.SessionToken
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		token, err = tx.SessionTokens().GetByUserID(ctx, user.ID)
		if err == nil || !errors.Is(err, store.ErrNotFound) {
			return err
		}

		value, err := cryptox.NewSessionToken()
		if err != nil {
			return err
		}
		token = domain.SessionToken{Value: value, UserID: user.ID, CreatedAt: time.Now().UTC()}
		return tx.SessionTokens().Create(ctx, token)
	})
	if err != nil {
		log.Error("failed to issue session token", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", err
	}

	// 4. Reject a caller who already holds this token.
	if presented != "" && subtle.ConstantTimeCompare([]byte(presented), []byte(token.Value)) == 1 {
		s.Metrics.AuthEvent("login", outcome(ErrAlreadyLoggedIn))
		return "", ErrAlreadyLoggedIn
	}

	s.Metrics.AuthEvent("login", "ok")
	log.Info("user logged in", slog.String("user_id", user.ID))
	return token.Value, nil
}

// Logout deletes every session token held by the user.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	n, err := s.Store.SessionTokens().DeleteByUserID(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to delete session tokens", slog.Any("error", err))
		return err
	}
	s.Metrics.AuthEvent("logout", "ok")
	slogx.FromContext(ctx).Info("user logged out", slog.String("user_id", userID), slog.Int64("tokens", n))
	return nil
}

// Authenticate resolves a bearer session token to its active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	st, err := s.Store.SessionTokens().GetByValue(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, st.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInactive
		}
		return domain.User{}, err
	}
	if err := RequireActive(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// outcome names a rejection for metrics labels.
func outcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrNotVerified):
		return "not_verified"
	case errors.Is(err, ErrInactive):
		return "inactive"
	case errors.Is(err, ErrAlreadyLoggedIn):
		return "already_logged_in"
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	default:
		return "error"
	}
}
