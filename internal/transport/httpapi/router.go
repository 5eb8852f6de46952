package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kavishzap/native-wallet/internal/transport/httpapi/handler"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
	"github.com/kavishzap/native-wallet/pkg/logger"
)

// Config holds router configuration
type Config struct {
	Logger           *logger.Logger
	AllowedOrigins   []string
	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	StatementHandler *handler.StatementHandler
	HealthHandler    *handler.HealthHandler
	SessionAuth      func(http.Handler) http.Handler
}

// NewRouter creates a new HTTP router
func NewRouter(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RateLimit())

	// Health check endpoints (no authentication required)
	r.Get("/health", handler.GetHealth)
	r.Get("/health/live", handler.GetLiveness)
	if cfg.HealthHandler != nil {
		r.Get("/health/ready", cfg.HealthHandler.GetReadiness)
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes: login, and the change-password flow, which
		// re-verifies the old password itself.
		if cfg.AuthHandler != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
			r.Post("/auth/password", cfg.AuthHandler.ChangePassword)
		}

		// Protected routes (require an established session)
		if cfg.SessionAuth != nil {
			r.Group(func(r chi.Router) {
				r.Use(cfg.SessionAuth)

				if cfg.AuthHandler != nil {
					r.Post("/auth/logout", cfg.AuthHandler.Logout)
				}

				if cfg.AccountHandler != nil {
					r.Get("/account", cfg.AccountHandler.GetProfile)
				}

				if cfg.StatementHandler != nil {
					r.Get("/transactions", cfg.StatementHandler.GetStatement)
				}
			})
		}
	})

	return r
}
