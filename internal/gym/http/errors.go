package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

const (
	detailInvalidCredentials = "Unable to login with provided credentials."
	detailNotVerified        = "User account is not verified."
	detailInactive           = "User account not active."
	detailAlreadyLoggedIn    = "You are already logged in."
	detailUserNotFound       = "User with this email does not exist."
	detailNoSets             = "This exercise has no sets."
	detailNoWeight           = "This exercise has no weight"
	detailInvalidLinkToken   = "Invalid token"
	detailTokenExpired       = "Activation Expired !"
)

// writeServiceError maps service errors onto API errors. Anything unknown is
// logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		gymsdk.NewValidationError(ve.Fields, ve.NonField).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		gymsdk.NewAPIError(http.StatusUnauthorized, gymsdk.CodeUnauthorized, detailInvalidCredentials).WriteError(w)
	case errors.Is(err, service.ErrNotVerified):
		gymsdk.NewAPIError(http.StatusUnauthorized, gymsdk.CodeUnauthorized, detailNotVerified).WriteError(w)
	case errors.Is(err, service.ErrInactive):
		gymsdk.NewAPIError(http.StatusUnauthorized, gymsdk.CodeUnauthorized, detailInactive).WriteError(w)
	case errors.Is(err, service.ErrAlreadyLoggedIn):
		gymsdk.NewAPIError(http.StatusForbidden, gymsdk.CodeAlreadyLoggedIn, detailAlreadyLoggedIn).WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		gymsdk.NewAPIError(http.StatusBadRequest, gymsdk.CodeInvalidToken, detailInvalidLinkToken).WriteError(w)
	case errors.Is(err, service.ErrTokenExpired):
		gymsdk.NewAPIError(http.StatusBadRequest, gymsdk.CodeTokenExpired, detailTokenExpired).WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		gymsdk.NewAPIError(http.StatusNotFound, gymsdk.CodeNotFound, detailUserNotFound).WriteError(w)
	case errors.Is(err, service.ErrNoSets):
		gymsdk.NewAPIError(http.StatusNotFound, gymsdk.CodeNotFound, detailNoSets).WriteError(w)
	case errors.Is(err, service.ErrNoWeight):
		gymsdk.NewAPIError(http.StatusNotFound, gymsdk.CodeNotFound, detailNoWeight).WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		gymsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		gymsdk.ErrPermissionDenied.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		gymsdk.ErrServerError.WriteError(w)
	}
}

// writeDecodeError reports a body that is not valid JSON for the endpoint.
func writeDecodeError(w http.ResponseWriter, err error) {
	gymsdk.NewAPIError(http.StatusBadRequest, gymsdk.CodeValidation, "JSON parse error - "+err.Error()).WriteError(w)
}
