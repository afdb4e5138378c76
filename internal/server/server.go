package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/edutalks/portfolio-api/internal/handler"
	"github.com/edutalks/portfolio-api/internal/openapi"
	"github.com/edutalks/portfolio-api/internal/server/middleware"
	"github.com/edutalks/portfolio-api/internal/service"
	"github.com/edutalks/portfolio-api/internal/store"
)

// Config holds the HTTP server configuration.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	EnvStatus       handler.EnvStatus
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            5000,
		ShutdownTimeout: 30 * time.Second,
		CORSOrigins:     []string{"*"},
	}
}

// Server is the top-level HTTP server. It owns the Chi router and wires the
// store, auth service, mailer, and newsletter set into the handlers.
type Server struct {
	cfg        Config
	router     chi.Router
	store      *store.Store
	authSvc    *service.AuthService
	mailer     service.Mailer
	newsletter *service.Newsletter
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a new Server, wires up all routes and middleware, and returns
// it ready to listen. Call ListenAndServe to start accepting connections.
func New(cfg Config, st *store.Store, authSvc *service.AuthService, mailer service.Mailer, newsletter *service.Newsletter, logger *slog.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		store:      st,
		authSvc:    authSvc,
		mailer:     mailer,
		newsletter: newsletter,
		logger:     logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handler.NewAuthHandler(s.authSvc, s.logger)
	jobHandler := handler.NewJobHandler(s.store, s.logger)
	teamHandler := handler.NewTeamHandler(s.store, s.logger)
	contactHandler := handler.NewContactHandler(s.mailer, s.logger)
	newsHandler := handler.NewNewsletterHandler(s.newsletter)
	sysHandler := handler.NewSystemHandler(s.store, s.cfg.EnvStatus, s.logger)

	r.Get("/", s.handleRoot)
	r.Get("/openapi.json", s.handleOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", sysHandler.Health)

		r.Post("/contact", contactHandler.Submit)
		r.Post("/newsletter", newsHandler.Subscribe)
		r.Get("/newsletter/count", newsHandler.Count)

		r.Post("/admin/login", authHandler.Login)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.ListPublic)
			r.Get("/{jobID}", jobHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(s.authSvc))
				r.Post("/", jobHandler.Create)
				r.Put("/{jobID}", jobHandler.Update)
				r.Delete("/{jobID}", jobHandler.Delete)
				r.Get("/admin/all", jobHandler.ListAll)
			})
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", teamHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(s.authSvc))
				r.Post("/", teamHandler.Create)
				r.Put("/{memberID}", teamHandler.Update)
				r.Delete("/{memberID}", teamHandler.Delete)
			})
		})
	})

	s.router = r
}

// handleRoot is a plain-text banner confirming the API is up.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Portfolio API is running..."))
}

// handleOpenAPI serves the API description. The document is static, so it is
// built once on first use.
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	doc := openapi.Spec()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// ListenAndServe starts the HTTP server and blocks until a SIGINT or SIGTERM
// is received. It then performs a graceful shutdown, draining in-flight
// requests before closing the database pool.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.store.Close()
	s.logger.Info("server stopped")
	return nil
}

// Router returns the underlying Chi router, useful for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler, delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
