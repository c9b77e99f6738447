package http

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

const (
	detailInvalidToken = "Invalid token."
	detailInactiveUser = "User inactive or deleted."
)

// sessionAuthenticator resolves bearer session tokens through AuthService.
type sessionAuthenticator struct {
	auth *service.AuthService
}

func (a sessionAuthenticator) Authenticate(ctx context.Context, token string) (httpx.Identity, error) {
	user, err := a.auth.Authenticate(ctx, token)
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		return httpx.Identity{}, &httpx.AuthError{Detail: detailInvalidToken}
	case errors.Is(err, service.ErrInactive):
		return httpx.Identity{}, &httpx.AuthError{Detail: detailInactiveUser}
	case err != nil:
		return httpx.Identity{}, err
	}

	return httpx.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		Staff:     user.IsStaff,
		Superuser: user.IsSuperuser,
	}, nil
}

// actor converts the request identity into a service actor.
func actor(ctx context.Context) service.Actor {
	id, _ := httpx.IdentityFromContext(ctx)
	return service.Actor{UserID: id.UserID, Staff: id.Staff, Superuser: id.Superuser}
}
