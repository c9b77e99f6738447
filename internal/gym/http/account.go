package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

const (
	msgVerificationSent = "Link for email verification was sent to provided email address"
	msgActivated        = "Successfully activated!"
)

type AccountHandler struct {
	Auth  *service.AuthService
	Users *service.UserService
}

// HandleRegister creates an account and mails a verification link.
//
//	@Summary		Register an account
//	@Description	Creates an unverified account and emails a verification link. All invalid fields are reported together.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	gymsdk.RegisterResponse
//	@Failure		400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure		429		{object}	gymsdk.APIError	"Rate limited"
//	@Router			/register [post]
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Auth.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gymsdk.RegisterResponse{
		User:    userResponse(user),
		Message: msgVerificationSent,
	})
}

// HandleLogin exchanges credentials for the caller's session token.
//
//	@Summary		Log in
//	@Description	Returns the user's session token, creating it on first login. Presenting the current token again is rejected.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	gymsdk.LoginResponse
//	@Failure		400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure		401		{object}	gymsdk.APIError	"Bad credentials, unverified or inactive account"
//	@Failure		403		{object}	gymsdk.APIError	"Already logged in"
//	@Router			/login [post]
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var presented string
	if id, ok := httpx.IdentityFromContext(r.Context()); ok {
		presented = id.Token
	}

	token, err := h.Auth.Login(r.Context(), req.Email, req.Password, presented)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.LoginResponse{Token: token})
}

// HandleLogout deletes the caller's session token.
//
//	@Summary	Log out
//	@Tags		Account
//	@Produce	json
//	@Success	200	{object}	gymsdk.MessageResponse
//	@Failure	401	{object}	gymsdk.APIError	"Not authenticated"
//	@Security	BearerAuth
//	@Router		/logout [get]
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFromContext(r.Context())
	if err := h.Auth.Logout(r.Context(), id.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.MessageResponse{
		Message: fmt.Sprintf("User %s has logged out successfully.", id.Email),
	})
}

// HandleVerifyEmail activates the account named by a verification link.
//
//	@Summary	Verify email
//	@Tags		Account
//	@Produce	json
//	@Param		token	query		string	true	"Verification token"
//	@Success	200		{object}	gymsdk.MessageResponse
//	@Failure	400		{object}	gymsdk.APIError	"Invalid or expired token"
//	@Router		/email-verify [get]
func (h *AccountHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.VerifyEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.MessageResponse{Message: msgActivated})
}

// HandleGetMe returns the caller's profile.
//
//	@Summary	Current user
//	@Tags		Account
//	@Produce	json
//	@Success	200	{object}	gymsdk.UserResponse
//	@Failure	401	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/me [get]
func (h *AccountHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.GetProfile(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleUpdateMe updates the caller's profile. PUT requires every field.
// Changing the email clears verification and mails a new link.
//
//	@Summary	Update current user
//	@Tags		Account
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.ProfileUpdateRequest	true	"Profile fields"
//	@Success	200		{object}	gymsdk.UserResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure	401		{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/me [put]
//	@Router		/me [patch]
func (h *AccountHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.ProfileUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Users.UpdateProfile(r.Context(), httpx.UserIDFromContext(r.Context()), service.ProfileUpdate{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Partial:  r.Method == http.MethodPatch,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}
