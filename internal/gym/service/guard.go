package service

import "github.com/aussiebroadwan/gymtrack/internal/gym/domain"

// RequireVerified rejects users who have not confirmed their email.
func RequireVerified(u domain.User) error {
	if !u.IsVerified {
		return ErrNotVerified
	}
	return nil
}

// RequireActive rejects deactivated users.
func RequireActive(u domain.User) error {
	if !u.IsActive {
		return ErrInactive
	}
	return nil
}

// checkGuards runs guards in order and returns the first rejection.
func checkGuards(u domain.User, guards ...func(domain.User) error) error {
	for _, g := range guards {
		if err := g(u); err != nil {
			return err
		}
	}
	return nil
}
