package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/bailanysta/api/internal/feed/http"
	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/internal/feed/store/drivers/sqlite"
	"github.com/bailanysta/api/pkg/cryptox"
	"github.com/bailanysta/api/pkg/jwtx"
	"github.com/bailanysta/api/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// ErrMissingSecret means FEED_JWT_SECRET was not provided. The service
// refuses to start rather than minting unverifiable tokens.
var ErrMissingSecret = errors.New("app: FEED_JWT_SECRET is required")

// Application encapsulates the feed service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *jwtx.HS256

	authService         *service.AuthService
	userService         *service.UserService
	feedService         *service.FeedService
	postService         *service.PostService
	notificationService *service.NotificationService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "feed-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	tokens, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, ErrMissingSecret
	}
	app.tokens = tokens

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("feed service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down feed service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("feed service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.tokens,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.feedService = &service.FeedService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.notificationService = &service.NotificationService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.tokens, app.db, app.cfg.AllowedOrigins, app.logger)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.FeedService = app.feedService
	router.PostService = app.postService
	router.NotificationService = app.notificationService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
