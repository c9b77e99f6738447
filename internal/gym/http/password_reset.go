package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

const (
	msgResetSent      = "The link to reset your password was sent to email."
	msgResetCheck     = "Reset your password"
	msgResetConfirmed = "Password reset successfully!"
)

type PasswordResetHandler struct {
	Reset *service.PasswordResetService
}

// HandleRequest mails a password reset link.
//
//	@Summary	Request a password reset
//	@Tags		Password Reset
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.PasswordResetRequest	true	"Account email"
//	@Success	200		{object}	gymsdk.MessageResponse
//	@Failure	404		{object}	gymsdk.APIError	"Unknown email"
//	@Router		/password-reset [post]
func (h *PasswordResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.PasswordResetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Reset.Request(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.MessageResponse{Message: msgResetSent})
}

// HandleCheck reports whether a reset token is still usable.
//
//	@Summary	Check a password reset token
//	@Tags		Password Reset
//	@Produce	json
//	@Param		token	path		string	true	"Reset token"
//	@Success	200		{object}	gymsdk.MessageResponse
//	@Failure	400		{object}	gymsdk.APIError	"Invalid or expired token"
//	@Router		/password-reset-confirm/{token} [get]
func (h *PasswordResetHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.Reset.Check(r.Context(), r.PathValue("token")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.MessageResponse{Message: msgResetCheck})
}

// HandleConfirm sets a new password.
//
//	@Summary	Confirm a password reset
//	@Tags		Password Reset
//	@Accept		json
//	@Produce	json
//	@Param		token	path		string								true	"Reset token"
//	@Param		request	body		gymsdk.PasswordResetConfirmRequest	true	"New password"
//	@Success	200		{object}	gymsdk.MessageResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed, invalid or expired token"
//	@Router		/password-reset-confirm/{token} [post]
func (h *PasswordResetHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.PasswordResetConfirmRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Reset.Confirm(r.Context(), r.PathValue("token"), req.Password, req.ConfirmPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.MessageResponse{Message: msgResetConfirmed})
}
