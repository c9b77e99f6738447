package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose scopes a link token to the flow it was issued for.
type Purpose string

const (
	PurposeEmailVerification Purpose = "email_verification"
	PurposePasswordReset     Purpose = "password_reset"
)

// LinkClaims is the payload of an emailed link token.
type LinkClaims struct {
	jwt.RegisteredClaims

	UserID  string  `json:"user_id"`
	Purpose Purpose `json:"purpose"`
}

func newLinkClaims(userID string, purpose Purpose, now time.Time, ttl time.Duration) LinkClaims {
	return LinkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:  userID,
		Purpose: purpose,
	}
}

// expired reports whether exp has passed at now.
func (c LinkClaims) expired(now time.Time) bool {
	return c.ExpiresAt == nil || !now.Before(c.ExpiresAt.Time)
}
