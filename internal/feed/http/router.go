// Package http is the REST edge: route dispatch, the authentication gate
// and request/response marshaling on top of the services.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/httpx"
	"github.com/bailanysta/api/pkg/jwtx"
	"github.com/bailanysta/api/pkg/slogx"
)

// Router holds shared dependencies for the HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier  jwtx.Verifier
	startTime time.Time
	logger    *slog.Logger
	store     store.Store

	AuthService         *service.AuthService
	UserService         *service.UserService
	FeedService         *service.FeedService
	PostService         *service.PostService
	NotificationService *service.NotificationService
}

func NewRouter(verifier jwtx.Verifier, st store.Store, allowedOrigins []string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		verifier:  verifier,
		startTime: time.Now(),
		store:     st,
		logger:    logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(allowedOrigins),
	}

	return r
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPosts()
	r.registerUsers()
	r.registerNotifications()
	r.registerSystem()
}

// secured wraps a handler with the bearer-token gate.
func (r *Router) secured(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.verifier))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /api/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/auth/login", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("GET /api/auth/verify", r.secured(http.HandlerFunc(h.HandleVerify)))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{
		FeedService: r.FeedService,
		PostService: r.PostService,
	}

	r.Mux.Handle("GET /api/posts", r.secured(http.HandlerFunc(h.HandleFeed)))
	r.Mux.Handle("POST /api/posts", r.secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /api/posts/{id}", r.secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/posts/{id}", r.secured(http.HandlerFunc(h.HandleDelete)))
	r.Mux.Handle("GET /api/posts/user/{userId}", http.HandlerFunc(h.HandleUserPosts))
	r.Mux.Handle("PATCH /api/posts/{id}/like", r.secured(http.HandlerFunc(h.HandleToggleLike)))
	r.Mux.Handle("POST /api/posts/{id}/comment", r.secured(http.HandlerFunc(h.HandleComment)))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/users/{identifier}", http.HandlerFunc(h.HandleProfile))
	r.Mux.Handle("POST /api/users/{id}/follow", r.secured(http.HandlerFunc(h.HandleFollow)))
	r.Mux.Handle("DELETE /api/users/{id}/follow", r.secured(http.HandlerFunc(h.HandleUnfollow)))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{NotificationService: r.NotificationService}

	r.Mux.Handle("GET /api/notifications", r.secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("PATCH /api/notifications/{id}/read", r.secured(http.HandlerFunc(h.HandleMarkRead)))
	r.Mux.Handle("POST /api/notifications/read-all", r.secured(http.HandlerFunc(h.HandleMarkAllRead)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/ping", PingHandler(r.store))
}
