package http

import (
	"net/http"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/pkg/httpx"
)

type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.NotificationService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notifications)
}

func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.NotificationService.MarkRead(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, n)
}

type markAllReadResponse struct {
	Count int64 `json:"count"`
}

func (h *NotificationsHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.NotificationService.MarkAllRead(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, markAllReadResponse{Count: count})
}
