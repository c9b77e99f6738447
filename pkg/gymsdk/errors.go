package gymsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

const (
	CodeValidation       = "validation_error"
	CodeInvalidToken     = "invalid_token"
	CodeTokenExpired     = "token_expired"
	CodeNotAuthenticated = "not_authenticated"
	CodeUnauthorized     = "unauthorized"
	CodeAlreadyLoggedIn  = "already_logged_in"
	CodePermissionDenied = "permission_denied"
	CodeNotFound         = "not_found"
	CodeRateLimited      = "rate_limited"
	CodeServerError      = "server_error"
)

// APIError is the body of every error response.
type APIError struct {
	StatusCode int `json:"-"`

	Code           string              `json:"error"`
	Detail         string              `json:"detail,omitempty"`
	Fields         map[string][]string `json:"fields,omitempty"`
	NonFieldErrors []string            `json:"non_field_errors,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", e.StatusCode, e.Code)
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}
	for field, msgs := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", field, strings.Join(msgs, " "))
	}
	for _, msg := range e.NonFieldErrors {
		b.WriteString("; " + msg)
	}
	return b.String()
}

// WriteError writes e as the JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	}
	httpx.WriteJSON(w, e.StatusCode, e)
}

func NewAPIError(status int, code, detail string) *APIError {
	return &APIError{StatusCode: status, Code: code, Detail: detail}
}

// NewValidationError builds a 400 carrying field and non field messages.
func NewValidationError(fields map[string][]string, nonField []string) *APIError {
	return &APIError{
		StatusCode:     http.StatusBadRequest,
		Code:           CodeValidation,
		Detail:         "Invalid input.",
		Fields:         fields,
		NonFieldErrors: nonField,
	}
}

var (
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeServerError,
		Detail:     "A server error occurred.",
	}
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Detail:     "Not found.",
	}
	ErrPermissionDenied = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       CodePermissionDenied,
		Detail:     "You do not have permission to perform this action.",
	}
)

// parseErrorResponse turns an error body into *APIError, falling back to the
// raw body when it is not one.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       http.StatusText(resp.StatusCode),
			Detail:     strings.TrimSpace(string(body)),
		}
	}
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}
