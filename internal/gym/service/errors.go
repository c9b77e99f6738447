package service

import (
	"errors"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account not verified")
	ErrInactive           = errors.New("account inactive")
	ErrAlreadyLoggedIn    = errors.New("already logged in")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("not found")
	ErrNoSets             = errors.New("exercise set has no sets")
	ErrNoWeight           = errors.New("exercise set has no weight")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError carries per field messages and messages that apply to the
// request as a whole. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields   map[string][]string
	NonField []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.NonField))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], " "))
	}
	parts = append(parts, e.NonField...)
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) AddNonField(msg string) {
	e.NonField = append(e.NonField, msg)
}

// Merge folds the messages of an ozzo validation result into e. Errors that
// are not validation results are returned unchanged.
func (e *ValidationError) Merge(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return err
	}
	for field, fe := range fields {
		if fe != nil {
			e.Add(field, fe.Error())
		}
	}
	return nil
}

// Err returns e when it holds any message and nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 && len(e.NonField) == 0 {
		return nil
	}
	return e
}

func fieldError(field, msg string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, msg)
	return e
}
