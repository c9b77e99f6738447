package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("reports every invalid field and sends nothing", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.auth.Register(ctx, RegisterInput{Email: "not-an-email", Password: "abc", Username: ""})

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		require.Equal(t, []string{MsgInvalidEmail}, ve.Fields["email"])
		require.Equal(t, []string{MsgShortPassword}, ve.Fields["password"])
		require.Equal(t, []string{MsgBlank}, ve.Fields["username"])
		require.Empty(t, e.mailer.messages())
	})

	t.Run("whitespace username is blank", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.auth.Register(ctx, RegisterInput{Email: "b@example.com", Password: "secret123", Username: "   "})
		requireFieldError(t, err, "username", MsgBlank)
		require.Empty(t, e.mailer.messages())
	})

	t.Run("username is trimmed", func(t *testing.T) {
		e := newEnv(t)
		u, err := e.auth.Register(ctx, RegisterInput{Email: "c@example.com", Password: "secret", Username: "  lifter "})
		require.NoError(t, err)
		require.Equal(t, "lifter", u.Username)
	})

	t.Run("password too long", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.auth.Register(ctx, RegisterInput{Email: "d@example.com", Password: strings.Repeat("p", MaxPasswordLength+1), Username: "d"})
		requireFieldError(t, err, "password", MsgLongPassword)
	})

	t.Run("duplicate email", func(t *testing.T) {
		e := newEnv(t)
		e.mustUser(t, "taken@example.com", "secret", true, true)

		_, err := e.auth.Register(ctx, RegisterInput{Email: "taken@EXAMPLE.com", Password: "secret", Username: "x"})
		requireFieldError(t, err, "email", MsgEmailTaken)
		require.Empty(t, e.mailer.messages())
	})

	t.Run("creates unverified user and mails one link", func(t *testing.T) {
		e := newEnv(t)
		u, err := e.auth.Register(ctx, RegisterInput{Email: "New@Example.COM", Password: "secret", Username: "newbie"})
		require.NoError(t, err)
		require.Equal(t, "New@example.com", u.Email)
		require.False(t, u.IsVerified)
		require.True(t, u.IsActive)

		msgs := e.mailer.messages()
		require.Len(t, msgs, 1)
		require.Equal(t, "New@example.com", msgs[0].To)
		require.Equal(t, SubjectVerifyEmail, msgs[0].Subject)
		require.Contains(t, msgs[0].Body, "Hello newbie! Use link below to verify your email \nhttp://gym.test/email-verify?token=")

		stored, err := e.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotEqual(t, "secret", stored.PasswordHash)
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		e := newEnv(t)
		e.mailer.err = errors.New("smtp down")

		u, err := e.auth.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret", Username: "a"})
		require.NoError(t, err)
		_, err = e.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("registered link verifies and is idempotent", func(t *testing.T) {
		e := newEnv(t)
		u, err := e.auth.Register(ctx, RegisterInput{Email: "v@example.com", Password: "secret", Username: "v"})
		require.NoError(t, err)
		token := linkToken(t, e.mailer.messages()[0])

		require.NoError(t, e.auth.VerifyEmail(ctx, token))
		require.NoError(t, e.auth.VerifyEmail(ctx, token))

		got, err := e.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.IsVerified)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		e := newEnv(t)
		require.ErrorIs(t, e.auth.VerifyEmail(ctx, "garbage"), ErrInvalidToken)
		require.ErrorIs(t, e.auth.VerifyEmail(ctx, ""), ErrInvalidToken)
	})

	t.Run("reset token is not a verification token", func(t *testing.T) {
		e := newEnv(t)
		u := e.mustUser(t, "p@example.com", "secret", false, true)
		token, err := e.codec.Issue(u.ID, jwtx.PurposePasswordReset)
		require.NoError(t, err)
		require.ErrorIs(t, e.auth.VerifyEmail(ctx, token), ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		e := newEnv(t)
		u := e.mustUser(t, "old@example.com", "secret", false, true)
		past, err := jwtx.NewCodec(testSecret, time.Hour, jwtx.WithClock(func() time.Time {
			return time.Now().Add(-2 * time.Hour)
		}))
		require.NoError(t, err)
		token, err := past.Issue(u.ID, jwtx.PurposeEmailVerification)
		require.NoError(t, err)

		require.ErrorIs(t, e.auth.VerifyEmail(ctx, token), ErrTokenExpired)
		got, err := e.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.False(t, got.IsVerified)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("guards run in order", func(t *testing.T) {
		e := newEnv(t)
		e.mustUser(t, "unverified@example.com", "secret", false, false)
		e.mustUser(t, "inactive@example.com", "secret", true, false)

		_, err := e.auth.Login(ctx, "nobody@example.com", "secret", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = e.auth.Login(ctx, "unverified@example.com", "wrong", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		// unverified and inactive: verification is checked first
		_, err = e.auth.Login(ctx, "unverified@example.com", "secret", "")
		require.ErrorIs(t, err, ErrNotVerified)

		_, err = e.auth.Login(ctx, "inactive@example.com", "secret", "")
		require.ErrorIs(t, err, ErrInactive)
	})

	t.Run("token is reused across logins", func(t *testing.T) {
		e := newEnv(t)
		e.mustUser(t, "ok@example.com", "secret", true, true)

		first, err := e.auth.Login(ctx, "ok@example.com", "secret", "")
		require.NoError(t, err)
		require.Len(t, first, 40)

		second, err := e.auth.Login(ctx, "ok@EXAMPLE.com", "secret", "someone-elses-token")
		require.NoError(t, err)
		require.Equal(t, first, second)

		_, err = e.auth.Login(ctx, "ok@example.com", "secret", first)
		require.ErrorIs(t, err, ErrAlreadyLoggedIn)
	})

	t.Run("logout removes the token", func(t *testing.T) {
		e := newEnv(t)
		u := e.mustUser(t, "out@example.com", "secret", true, true)

		token, err := e.auth.Login(ctx, "out@example.com", "secret", "")
		require.NoError(t, err)

		got, err := e.auth.Authenticate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)

		require.NoError(t, e.auth.Logout(ctx, u.ID))
		_, err = e.auth.Authenticate(ctx, token)
		require.ErrorIs(t, err, ErrInvalidToken)

		again, err := e.auth.Login(ctx, "out@example.com", "secret", token)
		require.NoError(t, err)
		require.NotEqual(t, token, again)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	u := e.mustUser(t, "auth@example.com", "secret", true, true)

	token, err := e.auth.Login(ctx, "auth@example.com", "secret", "")
	require.NoError(t, err)

	_, err = e.auth.Authenticate(ctx, "unknown")
	require.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, e.store.Users().SetActive(ctx, u.ID, false))
	_, err = e.auth.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInactive)
}
