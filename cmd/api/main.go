package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"negative-mentions/internal/common/pagination"
	"negative-mentions/internal/config"
	"negative-mentions/internal/dataset"
	"negative-mentions/internal/domain/entity"
	hhttp "negative-mentions/internal/handler/http"
	hauth "negative-mentions/internal/handler/http/auth"
	hmention "negative-mentions/internal/handler/http/mention"
	"negative-mentions/internal/handler/http/requestid"
	"negative-mentions/internal/observability/logging"
	"negative-mentions/internal/observability/tracing"
	"negative-mentions/internal/sample"
	"negative-mentions/internal/sentiment"
	"negative-mentions/internal/session"
	"negative-mentions/internal/usecase/feed"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	authProvider, err := hauth.NewProviderFromEnv()
	if err != nil {
		logger.Error("auth configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	shutdownTracing := tracing.Setup("negative-mentions", version)

	store := session.NewStore()
	handler := setupServer(logger, cfg, catalog, authProvider, store)

	runServer(logger, cfg, handler, store, shutdownTracing, version)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer builds the service graph and the routed, middleware-wrapped
// root handler.
func setupServer(
	logger *slog.Logger,
	cfg config.ServerConfig,
	catalog entity.Catalog,
	authProvider *hauth.Provider,
	store *session.Store,
) http.Handler {
	loader := &dataset.Loader{
		Generator: sample.NewGenerator(catalog),
		Scorer:    sentiment.NewScorer(catalog.NegativeKeywords),
		Logger:    logger,
	}
	service := &feed.Service{Loader: loader, Catalog: catalog}
	feedHandler := hmention.NewHandler(service, pagination.LoadFromEnv(), logger)

	rootMux := setupRoutes(cfg, catalog, authProvider, store, feedHandler)
	return applyMiddleware(logger, cfg, rootMux)
}

// setupRoutes registers all HTTP routes. Token issuance and health checks are
// public; everything else requires a bearer token and a session.
func setupRoutes(
	cfg config.ServerConfig,
	catalog entity.Catalog,
	authProvider *hauth.Provider,
	store *session.Store,
	feedHandler *hmention.Handler,
) *http.ServeMux {
	publicMux := http.NewServeMux()
	publicMux.Handle("POST /auth/token", hauth.TokenHandler(authProvider))
	publicMux.Handle("GET /health", hhttp.HealthHandler(catalog, store))
	publicMux.Handle("GET /ready", hhttp.ReadyHandler(catalog))
	publicMux.Handle("GET /live", hhttp.LiveHandler())

	privateMux := http.NewServeMux()
	feedHandler.Register(privateMux)

	protected := hauth.Authz(authProvider)(hhttp.Sessions(store)(privateMux))

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/token", publicMux)
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/", protected)
	return rootMux
}

// applyMiddleware wraps the handler with the outer middleware chain.
// Order: request ID -> tracing -> IP rate limit -> recovery -> logging ->
// body limit -> metrics.
func applyMiddleware(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) http.Handler {
	chain := handler
	// Apply in reverse order (innermost to outermost).
	chain = hhttp.Metrics(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxUploadBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	if cfg.RateLimitEnabled {
		ipLimiter := hhttp.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		chain = ipLimiter.Middleware(chain)
	}
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the API and metrics listeners and handles graceful
// shutdown on SIGINT/SIGTERM.
func runServer(
	logger *slog.Logger,
	cfg config.ServerConfig,
	handler http.Handler,
	store *session.Store,
	shutdownTracing func(context.Context) error,
	version string,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go store.StartCleanup(ctx, cfg.SessionCleanupInterval, cfg.SessionTTL, logger)

	apiServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", hhttp.MetricsHandler())
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server starting", slog.String("addr", cfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
