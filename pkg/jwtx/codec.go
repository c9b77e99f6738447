// Package jwtx issues and decodes the signed, expiring tokens embedded in
// verification and password reset links.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLinkTTL is the lifetime of a link token unless configured otherwise.
const DefaultLinkTTL = time.Hour

// MinSecretLength is the shortest accepted HMAC secret in bytes.
const MinSecretLength = 32

var ErrWeakSecret = errors.New("jwtx: signing secret too short")

// Status is the outcome of decoding a link token.
type Status int

const (
	Valid Status = iota
	InvalidSignature
	Expired
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	default:
		return "invalid_signature"
	}
}

// Result is returned by Decode. UserID is only set when Status is Valid.
type Result struct {
	Status Status
	UserID string
	Claims LinkClaims
}

// Codec signs link tokens with HMAC-SHA256.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec returns a codec signing with secret. A non-positive ttl selects DefaultLinkTTL.
func NewCodec(secret []byte, ttl time.Duration, opts ...Option) (*Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(secret))
	}
	if ttl <= 0 {
		ttl = DefaultLinkTTL
	}
	c := &Codec{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue returns a compact JWS for userID scoped to purpose.
func (c *Codec) Issue(userID string, purpose Purpose) (string, error) {
	claims := newLinkClaims(userID, purpose, c.now().UTC(), c.ttl)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign link token: %w", err)
	}
	return signed, nil
}

// Decode verifies raw. Tampered, malformed or wrong-purpose tokens are
// InvalidSignature; correctly signed tokens past their expiry are Expired.
func (c *Codec) Decode(raw string, purpose Purpose) Result {
	var claims LinkClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithoutClaimsValidation(),
	)
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || claims.UserID == "" || claims.Purpose != purpose {
		return Result{Status: InvalidSignature}
	}

	if claims.expired(c.now()) {
		return Result{Status: Expired, Claims: claims}
	}
	return Result{Status: Valid, UserID: claims.UserID, Claims: claims}
}
