package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

// DetailNotAuthenticated is the response detail when no credentials are sent.
const DetailNotAuthenticated = "Authentication credentials were not provided."

// Authenticator resolves a bearer token to the caller identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

// AuthError rejects a presented token. Detail is returned to the client.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string { return "authentication failed: " + e.Detail }

// BearerToken extracts the token from an Authorization header using either
// the "Bearer" or the "Token" keyword.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok {
		return "", false
	}
	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthnMiddleware rejects requests without a valid bearer token.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := BearerToken(r)
			if !ok {
				writeUnauthorized(w, DetailNotAuthenticated)
				return
			}

			id, err := a.Authenticate(r.Context(), raw)
			if err != nil {
				rejectAuth(w, r, err)
				return
			}

			ctx := slogx.With(WithIdentity(r.Context(), id), slog.String("user_id", id.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthn attaches the caller identity when a valid token is sent and
// otherwise lets the request through anonymously.
func OptionalAuthn(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, ok := BearerToken(r); ok {
				if id, err := a.Authenticate(r.Context(), raw); err == nil {
					r = r.WithContext(WithIdentity(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rejectAuth(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		writeUnauthorized(w, authErr.Detail)
		return
	}
	slogx.FromContext(r.Context()).Error("authentication lookup failed", slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "server_error", "A server error occurred.")
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeError(w, http.StatusUnauthorized, "not_authenticated", detail)
}
