package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ByteOps02/URL-Shortener/internal/config"
	"github.com/ByteOps02/URL-Shortener/internal/handlers"
	"github.com/ByteOps02/URL-Shortener/internal/repository"
	"github.com/ByteOps02/URL-Shortener/internal/services"
	"github.com/ByteOps02/URL-Shortener/internal/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// 1. Load Config (fails fast when JWT_SECRET is absent)
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	var handler slog.Handler
	if cfg.AppEnv == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 3. Initialize Database
	db, err := repository.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 4. Run Migrations
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		logger.Info("Running database migrations...")
		if err := repository.RunMigrations(cfg.DatabaseURL, ""); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	// 5. Initialize Services
	tokens := token.NewService(cfg.JWTSecret)
	auditService := services.NewAuditService(db, logger)
	shortenerService := services.NewShortenerService(db, auditService)

	// Request ceilings mirror the per-tier limits the service has always run
	// with: 100 req/15 min globally, 5 req/15 min on auth, 30 req/min on
	// shortening.
	limiters := handlers.RateLimiters{
		Global:  services.NewIPRateLimiter(rate.Limit(100.0/900.0), 100, logger),
		Auth:    services.NewIPRateLimiter(rate.Limit(5.0/900.0), 5, logger),
		Shorten: services.NewIPRateLimiter(rate.Limit(30.0/60.0), 30, logger),
	}

	// 6. Initialize Handler
	h := handlers.NewHandler(cfg, logger, db, tokens, shortenerService, auditService)

	// 7. Setup Router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := h.SetupRouter(limiters)

	// 8. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Background Context for workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	go auditService.Start(workerCtx)
	limiters.Global.StartCleanup(10 * time.Minute)
	limiters.Auth.StartCleanup(10 * time.Minute)
	limiters.Shorten.StartCleanup(10 * time.Minute)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	workerCancel()
	// Wait a tiny bit for workers
	time.Sleep(100 * time.Millisecond)

	logger.Info("Server exiting")
	return nil
}
