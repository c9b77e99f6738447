package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
)

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		e := newEnv(t)
		require.ErrorIs(t, e.reset.Request(ctx, "ghost@example.com"), ErrUserNotFound)
		require.Empty(t, e.mailer.messages())
	})

	t.Run("full flow", func(t *testing.T) {
		e := newEnv(t)
		e.mustUser(t, "reset@example.com", "old-secret", true, true)

		require.NoError(t, e.reset.Request(ctx, "reset@example.com"))
		msgs := e.mailer.messages()
		require.Len(t, msgs, 1)
		require.Equal(t, SubjectResetPassword, msgs[0].Subject)
		require.Contains(t, msgs[0].Body, "Use link below to reset your password \nhttp://gym.test/password-reset-confirm/")

		token := linkToken(t, msgs[0])
		require.NoError(t, e.reset.Check(ctx, token))
		require.NoError(t, e.reset.Confirm(ctx, token, "new-secret", "new-secret"))

		_, err := e.auth.Login(ctx, "reset@example.com", "old-secret", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = e.auth.Login(ctx, "reset@example.com", "new-secret", "")
		require.NoError(t, err)
	})

	t.Run("mismatch is reported before the token is read", func(t *testing.T) {
		e := newEnv(t)
		err := e.reset.Confirm(ctx, "not-a-token", "abcdef", "abcdeg")

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		require.Equal(t, []string{MsgPasswordMatch}, ve.NonField)
		require.Empty(t, ve.Fields)
	})

	t.Run("short password", func(t *testing.T) {
		e := newEnv(t)
		err := e.reset.Confirm(ctx, "not-a-token", "abc", "abc")
		requireFieldError(t, err, "password", MsgShortPassword)
	})

	t.Run("bad tokens", func(t *testing.T) {
		e := newEnv(t)
		u := e.mustUser(t, "tok@example.com", "secret", true, true)

		require.ErrorIs(t, e.reset.Check(ctx, "garbage"), ErrInvalidToken)
		require.ErrorIs(t, e.reset.Confirm(ctx, "garbage", "abcdef", "abcdef"), ErrInvalidToken)

		verify, err := e.codec.Issue(u.ID, jwtx.PurposeEmailVerification)
		require.NoError(t, err)
		require.ErrorIs(t, e.reset.Check(ctx, verify), ErrInvalidToken)
	})
}
