package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/logitrack/logitrack/internal/app"
	"github.com/logitrack/logitrack/internal/auth"
	"github.com/logitrack/logitrack/internal/enquiry"
	"github.com/logitrack/logitrack/internal/observability"
	"github.com/logitrack/logitrack/internal/platform/db"
	"github.com/logitrack/logitrack/internal/refdata"
	"github.com/logitrack/logitrack/internal/shared"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "logitrack_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	metrics := observability.NewMetrics()

	catalog := refdata.DefaultCatalog()
	refdataCache := refdata.NewCache(redisClient, cfg.RefdataCacheTTL)
	refdataService := refdata.NewService(catalog, refdataCache)
	refdataHandler := refdata.NewHandler(logger, refdataService)

	var repo enquiry.Repository
	if cfg.PGDSN != "" {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		repo = enquiry.NewPGRepository(pool)
		logger.Info("using postgres store")
	} else {
		memRepo := enquiry.NewMemoryRepository()
		if cfg.SeedDemoData {
			if err := enquiry.SeedDemoData(ctx, memRepo); err != nil {
				logger.Error("seed demo data", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("seeded demo enquiries")
		}
		repo = memRepo
		logger.Info("using in-memory store")
	}

	enquiryService := enquiry.NewService(logger, repo, catalog,
		enquiry.WithStrictReferenceNumbers(cfg.RefnumStrict),
		enquiry.WithMetrics(metrics),
	)
	enquiryHandler := enquiry.NewHandler(logger, enquiryService)

	authService := auth.NewService(cfg.AdminUser, cfg.AdminPasswordHash)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		AuthHandler:    authHandler,
		EnquiryHandler: enquiryHandler,
		RefdataHandler: refdataHandler,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
