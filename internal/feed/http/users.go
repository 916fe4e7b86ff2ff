package http

import (
	"net/http"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleProfile serves a public profile addressed by user id or username.
func (h *UsersHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.UserService.Profile(ctx, r.PathValue("identifier"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *UsersHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.Follow(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "followed"})
}

func (h *UsersHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.Unfollow(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "unfollowed"})
}
