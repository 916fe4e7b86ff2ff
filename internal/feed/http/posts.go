package http

import (
	"net/http"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/pkg/apierr"
	"github.com/bailanysta/api/pkg/httpx"
)

type PostsHandler struct {
	FeedService *service.FeedService
	PostService *service.PostService
}

type postContentRequest struct {
	Content string `json:"content"`
}

type commentRequest struct {
	Text string `json:"text"`
}

// HandleFeed serves the viewer's personalized feed.
func (h *PostsHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.FeedService.Feed(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, posts)
}

// HandleUserPosts serves one author's posts publicly.
func (h *PostsHandler) HandleUserPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.FeedService.UserPosts(ctx, r.PathValue("userId"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postContentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		apierr.ErrBadRequest.WriteError(w)
		return
	}

	post, err := h.PostService.Create(ctx, httpx.UserIDFromCtx(ctx), req.Content)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, post)
}

func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postContentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		apierr.ErrBadRequest.WriteError(w)
		return
	}

	post, err := h.PostService.Update(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Content)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, post)
}

func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.PostService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (h *PostsHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.PostService.ToggleLike(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, post)
}

func (h *PostsHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req commentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		apierr.ErrBadRequest.WriteError(w)
		return
	}

	post, err := h.PostService.AddComment(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Text)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, post)
}
