package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sauticheck/sauticheck-api/internal/auth"
	"github.com/sauticheck/sauticheck-api/internal/config"
	"github.com/sauticheck/sauticheck-api/internal/http/handlers"
	"github.com/sauticheck/sauticheck-api/internal/middleware"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// NewRouter wires middleware and routes and returns the root handler.
// Exposed separately from New so tests can drive it with httptest.
func NewRouter(cfg config.Config, store storage.Store) http.Handler {
	router := mux.NewRouter()
	handlers.NewHealthHandler(time.Now()).Register(router)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authMw := middleware.NewAuth(tokens, store)

	api := router.PathPrefix("/api").Subrouter()
	handlers.NewContentHandler(store).Register(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(authMw.RequireAuth)
	handlers.NewAuthHandler(store, tokens).Register(api, protected)
	handlers.NewFactCheckHandler(store).Register(protected)
	handlers.NewChatHandler().Register(protected)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.RequireAuth, authMw.RequireAdmin)
	handlers.NewAdminHandler(store).Register(admin)

	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(router))
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewRouter(cfg, store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
