package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kindling-app/kindling/internal/api/domain"
	"github.com/kindling-app/kindling/internal/api/service"
	"github.com/kindling-app/kindling/pkg/httpx"
	"github.com/kindling-app/kindling/pkg/kindlingsdk"
	"github.com/kindling-app/kindling/pkg/slogx"
)

// RegisterHandler creates accounts.
type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /register.
//
//	@Summary		Register a new account
//	@Description	Creates a user with a unique email, hashes the password with a per-user salt and returns the profile plus a bearer token.
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		kindlingsdk.RegisterRequest	true	"Registration details"
//	@Success		200		{object}	kindlingsdk.AuthResponse
//	@Failure		400		{object}	kindlingsdk.ValidationErrorResponse	"Validation failed or email already taken"
//	@Failure		429		{object}	kindlingsdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	kindlingsdk.ErrorResponse
//	@Router			/register [post]
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req kindlingsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kindlingsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if details := req.Validate(); details != nil {
		writeValidationError(w, details)
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			kindlingsdk.ErrDuplicateEmail.WriteError(w)
			return
		}
		slogx.FromContext(r.Context()).Error("register failed", "error", err)
		kindlingsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, kindlingsdk.AuthResponse{
		User:  toProfile(user),
		Token: token,
	})
}

// LoginHandler verifies credentials and mints tokens.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /login.
//
//	@Summary		Log in
//	@Description	Verifies email and password and returns the profile plus a fresh bearer token. Unknown email and wrong password produce the identical response.
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		kindlingsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	kindlingsdk.AuthResponse
//	@Failure		400		{object}	kindlingsdk.ValidationErrorResponse
//	@Failure		401		{object}	kindlingsdk.ErrorResponse	"Invalid email or password"
//	@Failure		429		{object}	kindlingsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	kindlingsdk.ErrorResponse
//	@Router			/login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req kindlingsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kindlingsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if details := req.Validate(); details != nil {
		writeValidationError(w, details)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			kindlingsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		slogx.FromContext(r.Context()).Error("login failed", "error", err)
		kindlingsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, kindlingsdk.AuthResponse{
		User:  toProfile(user),
		Token: token,
	})
}

func writeValidationError(w http.ResponseWriter, details map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, kindlingsdk.ValidationErrorResponse{
		Code:    kindlingsdk.ErrorCodeValidation,
		Message: "one or more fields are missing or empty",
		Details: details,
	})
}

// toProfile projects a user onto the public wire shape. Password hash
// and salt never leave the server.
func toProfile(u domain.User) kindlingsdk.UserProfile {
	return kindlingsdk.UserProfile{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
