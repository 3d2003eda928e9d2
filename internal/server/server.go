// Package server provides the HTTP server setup and routing configuration.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vitrine-app/vitrine/internal/api"
	"github.com/vitrine-app/vitrine/internal/auth"
	"github.com/vitrine-app/vitrine/internal/config"
	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/media"
	"github.com/vitrine-app/vitrine/internal/middleware"
	"github.com/vitrine-app/vitrine/internal/profile"
	"github.com/vitrine-app/vitrine/internal/storage"
	"github.com/vitrine-app/vitrine/internal/webhook"
)

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	db          *db.DB
	repos       *db.Repositories
	authService *auth.Service
	gate        *auth.Gate
	uploader    *media.Uploader
	resolver    *profile.Resolver
	notifier    *webhook.Notifier
	router      *gin.Engine
	server      *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, database *db.DB, store storage.BlobStore) *Server {
	repos := db.NewRepositories(database)
	authService := auth.NewService(repos, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	gate := auth.NewGate(cfg.Auth.AdminSecret)
	uploader := media.NewUploader(store, repos)
	resolver := profile.NewResolver(repos)
	notifier := webhook.NewNotifier(cfg.Webhook.RegistrationURL, cfg.Webhook.Timeout)

	return &Server{
		config:      cfg,
		db:          database,
		repos:       repos,
		authService: authService,
		gate:        gate,
		uploader:    uploader,
		resolver:    resolver,
		notifier:    notifier,
	}
}

// setupRouter initializes the Gin router with middleware and routes
func (s *Server) setupRouter() {
	if s.config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	s.router.Use(middleware.RequestLogger())
	s.router.Use(gin.Recovery())
	s.router.Use(cors.Default())

	apiGroup := s.router.Group("/api")

	// Public surface: health, registration, sign-in, admin gate
	api.SetupHealthRoutes(apiGroup, s.db)
	api.SetupAuthRoutes(apiGroup, s.authService, s.gate, s.notifier)

	// Everything behind the session gate
	dashboard := apiGroup.Group("", middleware.RequireSession(s.authService))
	api.SetupMediaRoutes(dashboard, s.uploader, s.repos, s.gate)
	api.SetupProfileRoutes(dashboard, s.resolver)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.setupRouter()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.server = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	logger.Log.Info().
		Str("host", s.config.Server.Host).
		Int("port", s.config.Server.Port).
		Msg("Starting HTTP server")

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info().Msg("Shutting down server gracefully")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	logger.Log.Info().Msg("Server stopped")
	return nil
}
