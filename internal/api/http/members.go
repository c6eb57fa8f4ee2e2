package http

import (
	"errors"
	"net/http"

	"github.com/kindling-app/kindling/internal/api/service"
	"github.com/kindling-app/kindling/internal/api/store"
	"github.com/kindling-app/kindling/pkg/httpx"
	"github.com/kindling-app/kindling/pkg/kindlingsdk"
	"github.com/kindling-app/kindling/pkg/slogx"
)

// MembersHandler serves the authenticated member browsing endpoints.
type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleList handles GET /members.
//
//	@Summary		List members
//	@Description	Returns every registered member's public profile.
//	@Tags			members
//	@Produce		json
//	@Success		200	{array}		kindlingsdk.UserProfile
//	@Failure		401	{object}	kindlingsdk.ErrorResponse	"Missing or invalid bearer token"
//	@Failure		500	{object}	kindlingsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/members [get]
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if id, ok := httpx.UserIDFromContext(r.Context()); ok {
		slogx.FromContext(r.Context()).Debug("member list requested", "requester", id)
	}

	users, err := h.MemberService.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("member list failed", "error", err)
		kindlingsdk.ErrServerError.WriteError(w)
		return
	}

	profiles := make([]kindlingsdk.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toProfile(u))
	}
	httpx.WriteJSON(w, http.StatusOK, profiles)
}

// HandleGet handles GET /members/{id}.
//
//	@Summary		Get a member
//	@Description	Returns one member's public profile by id.
//	@Tags			members
//	@Produce		json
//	@Param			id	path		string	true	"Member ID (ULID)"
//	@Success		200	{object}	kindlingsdk.UserProfile
//	@Failure		401	{object}	kindlingsdk.ErrorResponse	"Missing or invalid bearer token"
//	@Failure		404	{object}	kindlingsdk.ErrorResponse	"Unknown member id"
//	@Failure		500	{object}	kindlingsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/members/{id} [get]
func (h *MembersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := h.MemberService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			kindlingsdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(r.Context()).Error("member lookup failed", "error", err)
		kindlingsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(user))
}
