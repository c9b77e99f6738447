package gymsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient talks to the public endpoints and opens Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account. The server mails a verification link.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.send(ctx, "", http.MethodPost, "/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyEmail submits the token from a verification link.
func (c *SDKClient) VerifyEmail(ctx context.Context, token string) (*MessageResponse, error) {
	var out MessageResponse
	path := "/email-verify?token=" + url.QueryEscape(token)
	if err := c.send(ctx, "", http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	if err := c.send(ctx, "", http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(out.Token), nil
}

// NewSession wraps an existing session token.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *SDKClient) RequestPasswordReset(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.send(ctx, "", http.MethodPost, "/password-reset", PasswordResetRequest{Email: email}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckPasswordReset reports whether a reset token is still usable.
func (c *SDKClient) CheckPasswordReset(ctx context.Context, token string) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.send(ctx, "", http.MethodGet, "/password-reset-confirm/"+url.PathEscape(token), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ConfirmPasswordReset(ctx context.Context, token string, req PasswordResetConfirmRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.send(ctx, "", http.MethodPost, "/password-reset-confirm/"+url.PathEscape(token), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.send(ctx, "", http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.send(ctx, "", http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
