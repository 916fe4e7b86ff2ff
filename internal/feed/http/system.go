package http

import (
	"net/http"

	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/apierr"
	"github.com/bailanysta/api/pkg/httpx"
)

// PingHandler is the health check: it answers only when the store does.
func PingHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			apierr.ErrServerError.WithMessage("database unreachable").WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "pong"})
	})
}
