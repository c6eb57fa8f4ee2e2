package kindlingsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kindling-app/kindling/pkg/httpx"
)

// API error codes.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeDuplicateEmail     = "duplicate_email"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error type shared by the server (to write HTTP
// responses) and the SDK client (to represent parsed failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	// ErrInvalidRequest is returned for malformed request bodies.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "request body must be valid JSON",
	}

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken (any case variant).
	ErrDuplicateEmail = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDuplicateEmail,
		Description: "an account with this email already exists",
	}

	// ErrInvalidCredentials is returned for every login failure. The
	// message is identical whether the email is unknown or the password
	// is wrong, so callers cannot enumerate registered emails.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrInvalidToken is returned when the bearer token is missing,
	// invalid or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrNotFound is returned for unknown member ids.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "member not found",
	}

	// ErrServerError is returned for unexpected storage or internal
	// failures. Details stay in the server logs.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// ValidationError wraps field-level validation failures so the client
// can surface per-field messages.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Details))
}

// parseAPIError turns a non-2xx response into an APIError or
// ValidationError.
func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError, Description: "unreadable error response"}
	}

	var validation ValidationErrorResponse
	if json.Unmarshal(body, &validation) == nil && validation.Code == ErrorCodeValidation {
		return &ValidationError{Details: validation.Details}
	}

	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        apiErr.Error,
			Description: apiErr.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}
