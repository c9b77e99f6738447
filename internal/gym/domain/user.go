package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // normalised, see NormalizeEmail
	Username     string
	PasswordHash string // argon2id PHC string
	IsVerified   bool
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims the address and lowercases its domain part. The local
// part is left untouched since mail servers may treat it case sensitively.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// SessionToken is the opaque bearer credential issued on login. Each user
// holds at most one.
type SessionToken struct {
	Value     string
	UserID    string
	CreatedAt time.Time
}
