package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crately/crately-core/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	authService   driving.AuthService
	userService   driving.UserService
	boxService    driving.BoxService
	itemService   driving.ItemService
	searchService driving.SearchService
	labelService  driving.LabelService

	// Infrastructure
	db          Pinger // PostgreSQL health check
	redisClient Pinger // Redis health check (optional)
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	Version        string
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		Version:        "dev",
		AllowedOrigins: []string{"*"},
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	userService driving.UserService,
	boxService driving.BoxService,
	itemService driving.ItemService,
	searchService driving.SearchService,
	labelService driving.LabelService,
	db Pinger,
	redisClient Pinger, // can be nil
) *Server {
	s := &Server{
		router:        http.NewServeMux(),
		version:       cfg.Version,
		authService:   authService,
		userService:   userService,
		boxService:    boxService,
		itemService:   itemService,
		searchService: searchService,
		labelService:  labelService,
		db:            db,
		redisClient:   redisClient,
	}

	s.setupRoutes()

	// Outer middleware chain: recovery wraps everything
	handler := NewCORSMiddleware(cfg.AllowedOrigins).Handler(s.router)
	handler = NewLoggingMiddleware().Handler(handler)
	handler = NewRecoveryMiddleware().Handler(handler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	authMiddleware := NewAuthMiddleware(s.authService)

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Auth endpoints (public)
	s.router.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.router.HandleFunc("POST /api/v1/auth/refresh", s.handleRefresh)

	// Setup endpoint (public, one-time use)
	s.router.HandleFunc("POST /api/v1/setup", s.handleSetup)

	// Auth endpoints (authenticated)
	s.router.Handle("POST /api/v1/auth/logout",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleLogout)))

	// User endpoints
	s.router.Handle("GET /api/v1/me",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetMe)))

	// Admin-only user management
	s.router.Handle("GET /api/v1/users",
		authMiddleware.Authenticate(
			authMiddleware.RequireAdmin(http.HandlerFunc(s.handleListUsers))))
	s.router.Handle("POST /api/v1/users",
		authMiddleware.Authenticate(
			authMiddleware.RequireAdmin(http.HandlerFunc(s.handleCreateUser))))
	s.router.Handle("DELETE /api/v1/users/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireAdmin(http.HandlerFunc(s.handleDeleteUser))))

	// Box endpoints (reads public, mutations authenticated, deletes admin)
	s.router.HandleFunc("GET /api/v1/boxes", s.handleListBoxes)
	s.router.HandleFunc("GET /api/v1/boxes/{id}", s.handleGetBox)
	s.router.HandleFunc("GET /api/v1/boxes/{id}/items", s.handleListBoxItems)
	s.router.HandleFunc("GET /api/v1/boxes/{id}/label", s.handleGetBoxLabel)
	s.router.Handle("POST /api/v1/boxes",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateBox)))
	s.router.Handle("PUT /api/v1/boxes/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateBox)))
	s.router.Handle("DELETE /api/v1/boxes/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireAdmin(http.HandlerFunc(s.handleDeleteBox))))

	// Item endpoints
	s.router.HandleFunc("GET /api/v1/items/{id}", s.handleGetItem)
	s.router.Handle("POST /api/v1/items",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateItem)))
	s.router.Handle("PUT /api/v1/items/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateItem)))
	s.router.Handle("DELETE /api/v1/items/{id}",
		authMiddleware.Authenticate(
			authMiddleware.RequireAdmin(http.HandlerFunc(s.handleDeleteItem))))

	// Search and scan endpoints (public, like reads)
	s.router.HandleFunc("GET /api/v1/search", s.handleSearch)
	s.router.HandleFunc("POST /api/v1/scan", s.handleScan)

	// Stats endpoint
	s.router.HandleFunc("GET /api/v1/stats", s.handleStats)
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
