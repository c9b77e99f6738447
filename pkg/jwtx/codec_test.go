package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func newCodec(t *testing.T, opts ...jwtx.Option) *jwtx.Codec {
	t.Helper()
	c, err := jwtx.NewCodec(secret, time.Hour, opts...)
	require.NoError(t, err)
	return c
}

func TestNewCodec_WeakSecret(t *testing.T) {
	_, err := jwtx.NewCodec([]byte("short"), time.Hour)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	c, err := jwtx.NewCodec(secret, 0)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultLinkTTL, c.TTL())
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newCodec(t)

	raw, err := c.Issue("user-1", jwtx.PurposeEmailVerification)
	require.NoError(t, err)
	require.Len(t, strings.Split(raw, "."), 3)

	res := c.Decode(raw, jwtx.PurposeEmailVerification)
	require.Equal(t, jwtx.Valid, res.Status)
	require.Equal(t, "user-1", res.UserID)
	require.NotEmpty(t, res.Claims.ID)
	require.WithinDuration(t, time.Now().Add(time.Hour), res.Claims.ExpiresAt.Time, 5*time.Second)
}

func TestCodec_Expired(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err := newCodec(t, jwtx.WithClock(past)).Issue("user-1", jwtx.PurposePasswordReset)
	require.NoError(t, err)

	res := newCodec(t).Decode(raw, jwtx.PurposePasswordReset)
	require.Equal(t, jwtx.Expired, res.Status)
	require.Empty(t, res.UserID)
}

func TestCodec_Invalid(t *testing.T) {
	c := newCodec(t)
	raw, err := c.Issue("user-1", jwtx.PurposeEmailVerification)
	require.NoError(t, err)
	parts := strings.Split(raw, ".")

	otherKey, err := jwtx.NewCodec([]byte("fedcba9876543210fedcba9876543210"), time.Hour)
	require.NoError(t, err)
	foreign, err := otherKey.Issue("user-1", jwtx.PurposeEmailVerification)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1", "purpose": "email_verification",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	flip := func(s string) string {
		b := []byte(s)
		i := len(b) / 2
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		return string(b)
	}

	tests := map[string]string{
		"empty":            "",
		"garbage":          "not.a.token",
		"tampered payload": parts[0] + "." + flip(parts[1]) + "." + parts[2],
		"tampered sig":     parts[0] + "." + parts[1] + "." + flip(parts[2]),
		"other secret":     foreign,
		"alg none":         none,
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, jwtx.InvalidSignature, c.Decode(tok, jwtx.PurposeEmailVerification).Status)
		})
	}

	t.Run("wrong purpose", func(t *testing.T) {
		require.Equal(t, jwtx.InvalidSignature, c.Decode(raw, jwtx.PurposePasswordReset).Status)
	})
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "valid", jwtx.Valid.String())
	require.Equal(t, "expired", jwtx.Expired.String())
	require.Equal(t, "invalid_signature", jwtx.InvalidSignature.String())
}
