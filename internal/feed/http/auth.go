package http

import (
	"net/http"
	"time"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/pkg/apierr"
	"github.com/bailanysta/api/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// userResponse is the authenticated self-view: public fields plus email,
// never the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		apierr.ErrBadRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		apierr.ErrBadRequest.WriteError(w)
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		apierr.ErrUnauthorized.WriteError(w)
		return
	}

	user, err := h.AuthService.Verify(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
