package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator map[string]httpx.Identity

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (httpx.Identity, error) {
	if token == "boom" {
		return httpx.Identity{}, errors.New("database is on fire")
	}
	id, ok := f[token]
	if !ok {
		return httpx.Identity{}, &httpx.AuthError{Detail: "Invalid token."}
	}
	id.Token = token
	return id, nil
}

func echoIdentity(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"user": ""})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"user": id.UserID})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"Token abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", tt.header)
		got, ok := httpx.BearerToken(req)
		require.Equal(t, tt.ok, ok, tt.header)
		require.Equal(t, tt.want, got, tt.header)
	}
}

func TestAuthnMiddleware(t *testing.T) {
	auth := fakeAuthenticator{"good": {UserID: "u1"}}
	h := httpx.Chain(http.HandlerFunc(echoIdentity), httpx.AuthnMiddleware(auth))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, httpx.DetailNotAuthenticated},
		{"unknown", "Bearer nope", http.StatusUnauthorized, "Invalid token."},
		{"store failure", "Bearer boom", http.StatusInternalServerError, "server_error"},
		{"valid", "Token good", http.StatusOK, `"user":"u1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestOptionalAuthn(t *testing.T) {
	auth := fakeAuthenticator{"good": {UserID: "u1"}}
	h := httpx.Chain(http.HandlerFunc(echoIdentity), httpx.OptionalAuthn(auth))

	for header, want := range map[string]string{
		"":            `"user":""`,
		"Bearer nope": `"user":""`,
		"Bearer good": `"user":"u1"`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), want)
	}
}

func TestRequireStaff(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := httpx.RequireStaff(ok)

	tests := []struct {
		name   string
		id     *httpx.Identity
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"member", &httpx.Identity{UserID: "u"}, http.StatusForbidden},
		{"staff", &httpx.Identity{UserID: "u", Staff: true}, http.StatusNoContent},
		{"superuser", &httpx.Identity{UserID: "u", Superuser: true}, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.id != nil {
				req = req.WithContext(httpx.WithIdentity(req.Context(), *tt.id))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}
