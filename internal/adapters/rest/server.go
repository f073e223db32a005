package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/config"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/inbound"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Server struct {
	handler    *Handler
	httpServer *http.Server
	config     *config.Config
	logger     zerolog.Logger
}

type ServerParams struct {
	Config      *config.Config
	ItemService inbound.ItemService
	AuthService inbound.AuthService
	Logger      zerolog.Logger
}

// NewServer builds the HTTP server and wires the routing table
func NewServer(params ServerParams) *Server {
	handler := NewHandler(HandlerParams{
		ItemService: params.ItemService,
		AuthService: params.AuthService,
		Logger:      params.Logger,
	})

	router := newRouter(handler, params.AuthService, params.Logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", params.Config.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler:    handler,
		httpServer: httpServer,
		config:     params.Config,
		logger:     params.Logger.With().Str("component", "http_server").Logger(),
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

// newRouter wires the routing table
func newRouter(handler *Handler, authService inbound.AuthService, logger zerolog.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", handleHealth)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)

		r.Get("/items", handler.ListItems)
		r.Get("/items/{itemID}", handler.GetItem)

		// Mutations require an authenticated session
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(authService, logger))
			r.Post("/items", handler.CreateItem)
			r.Put("/items/{itemID}", handler.UpdateItem)
			r.Delete("/items/{itemID}", handler.DeleteItem)
		})
	})

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok", "service": "item-management"}`))
}
