package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odyssey-erp/medicare-web/internal/app"
	"github.com/odyssey-erp/medicare-web/internal/auth"
	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/catalog"
	"github.com/odyssey-erp/medicare-web/internal/dashboard"
	"github.com/odyssey-erp/medicare-web/internal/listing"
	"github.com/odyssey-erp/medicare-web/internal/observability"
	"github.com/odyssey-erp/medicare-web/internal/platform/cache"
	"github.com/odyssey-erp/medicare-web/internal/reports"
	"github.com/odyssey-erp/medicare-web/internal/settings"
	"github.com/odyssey-erp/medicare-web/internal/shared"
	"github.com/odyssey-erp/medicare-web/internal/shell"
	"github.com/odyssey-erp/medicare-web/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(os.Getenv("ENV_FILE"))
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.Open(ctx, cache.Options{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Warn("redis unavailable at startup", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	gateway := backend.NewClient(backend.Config{
		BaseURL:  cfg.BackendURL,
		Timeout:  cfg.BackendTimeout,
		Observer: metrics,
	})
	if err := gateway.Ping(ctx); err != nil {
		logger.Warn("backend ping", slog.String("url", cfg.BackendURL), slog.Any("error", err))
	}

	sessionManager := shared.NewSessionManager(redisClient, "medicare_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	store := auth.NewStore(logger, gateway, sessionManager, auth.StoreConfig{
		ProbeCompany:    cfg.RestoreProbeCompany,
		FallbackCompany: cfg.CompanyFallbackID,
	})
	layout := shell.NewLayout(shell.DefaultNavigation(), csrfManager)

	var listHandlers []*listing.Handler
	for _, res := range catalog.All() {
		listHandlers = append(listHandlers, listing.NewHandler(logger, gateway, templates, layout, res))
	}

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		CSRFManager:      csrfManager,
		Metrics:          metrics,
		Guard:            shell.NewGuard(store, logger),
		AuthHandler:      auth.NewHandler(logger, gateway, store, templates, csrfManager),
		DashboardHandler: dashboard.NewHandler(logger, gateway, templates, layout),
		ListHandlers:     listHandlers,
		SettingsHandler:  settings.NewHandler(logger, gateway, templates, layout),
		ReportsHandler:   reports.NewHandler(logger, gateway, templates, layout),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("backend", cfg.BackendURL))
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
