package kindlingsdk

import (
	"strings"
	"time"
)

// UserProfile is the public projection of a user. Password material
// never appears here.
type UserProfile struct {
	// ID is the user's ULID.
	ID string `json:"id"`

	// Email used for login, stored and returned lowercased.
	Email string `json:"email"`

	// DisplayName shown in the UI.
	DisplayName string `json:"display_name"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by both the register and login endpoints.
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// Validate checks required fields and returns field-level errors.
// Presence alone is not enough: empty strings are rejected explicitly.
func (r RegisterRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required and must be non-empty"
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		errs["display_name"] = "display_name is required and must be non-empty"
	}
	if r.Password == "" {
		errs["password"] = "password is required and must be non-empty"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and returns field-level errors.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required and must be non-empty"
	}
	if r.Password == "" {
		errs["password"] = "password is required and must be non-empty"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ErrorResponse is the generic error body used for JSON unmarshaling.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request validation fails.
type ValidationErrorResponse struct {
	// Code is the error code ("validation_error")
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific validation errors (field name: error message)
	Details map[string]string `json:"details,omitempty"`
}

// HealthChecks reports per-dependency health for the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is the body of the livez/readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
