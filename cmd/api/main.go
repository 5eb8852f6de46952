package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kavishzap/native-wallet/internal/infra/postgres"
	infraredis "github.com/kavishzap/native-wallet/internal/infra/redis"
	"github.com/kavishzap/native-wallet/internal/module/statement"
	"github.com/kavishzap/native-wallet/internal/platform/account"
	"github.com/kavishzap/native-wallet/internal/platform/credential"
	"github.com/kavishzap/native-wallet/internal/platform/session"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/handler"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
	"github.com/kavishzap/native-wallet/pkg/config"
	"github.com/kavishzap/native-wallet/pkg/logger"
)

func main() {
	// Create context that listens for termination signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewDefault(cfg.Env)
	log.Info("Starting Native account portal API",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Initialize database connection pool
	db, err := postgres.NewPool(ctx, postgres.Config{URL: cfg.DatabaseURL})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("Database connection established")

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		log.Info("Redis connection established")

		sessions = infraredis.NewSessionStore(redisClient, cfg.SessionTTL, log)
	} else {
		log.Warn("REDIS_URL not configured, using in-memory sessions")
		sessions = session.NewMemoryStore()
	}

	// Credential scheme (bcrypt, or plain for the legacy table)
	scheme, err := credential.FromName(cfg.PasswordScheme)
	if err != nil {
		log.Error("Invalid password scheme", "error", err)
		os.Exit(1)
	}
	log.Info("Credential scheme selected", "scheme", cfg.PasswordScheme)

	// Initialize repositories
	accountRepo := postgres.NewAccountRepository(db.Pool)
	transactionRepo := postgres.NewTransactionRepository(db.Pool)

	// Initialize services
	accountSvc := account.NewService(accountRepo, scheme)
	statementSvc := statement.NewService(transactionRepo)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(accountSvc, sessions)
	accountHandler := handler.NewAccountHandler(accountSvc)
	statementHandler := handler.NewStatementHandler(statementSvc)
	healthHandler := handler.NewHealthHandler(db)

	// Create HTTP router
	r := httpapi.NewRouter(httpapi.Config{
		Logger:           log,
		AllowedOrigins:   cfg.AllowedOrigins,
		AuthHandler:      authHandler,
		AccountHandler:   accountHandler,
		StatementHandler: statementHandler,
		HealthHandler:    healthHandler,
		SessionAuth:      middleware.SessionAuth(sessions),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}
