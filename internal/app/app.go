package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres"
	"github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/mention"
	signalrepo "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/signal"
	sourcerepo "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/source"
	subscriberrepo "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/subscriber"
	"github.com/noah-vh/airbour-web-sub001/internal/auth"
	"github.com/noah-vh/airbour-web-sub001/internal/config"
	"github.com/noah-vh/airbour-web-sub001/internal/service/analytics"
	"github.com/noah-vh/airbour-web-sub001/internal/service/signal"
	"github.com/noah-vh/airbour-web-sub001/internal/service/source"
	"github.com/noah-vh/airbour-web-sub001/internal/service/subscriber"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/dataloader"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/middleware"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/rest"
	"github.com/noah-vh/airbour-web-sub001/migrations"
)

// shutdownGrace is used when no shutdown timeout is configured.
const shutdownGrace = time.Second

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations, wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return err
		}
	}

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	handler := NewHandler(cfg, pool, logger, rl)

	return serve(ctx, logger, cfg.Server, handler)
}

// NewHandler wires repositories, services and transport on top of pool and
// returns the root HTTP handler.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, rl *middleware.RateLimiter) http.Handler {
	signals := signalrepo.New(pool)
	sources := sourcerepo.New(pool)
	mentions := mention.New(pool)
	subscribers := subscriberrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	signalSvc := signal.NewService(logger, signals, signals, mentions, txm)
	sourceSvc := source.NewService(logger, sources)
	subscriberSvc := subscriber.NewService(logger, subscribers)
	analyticsSvc := analytics.NewService(logger, cfg.Analytics, signals, mentions, sources, subscribers)

	jwtm := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	return rest.NewRouter(rest.RouterDeps{
		Health: rest.NewHealthHandler(Version, map[string]rest.Checker{
			"database":   pool,
			"migrations": postgres.NewMigrationCheck(pool, migrations.FS),
		}),
		Signals:     rest.NewSignalHandler(signalSvc, logger),
		Sources:     rest.NewSourceHandler(sourceSvc, logger),
		Subscribers: rest.NewSubscriberHandler(subscriberSvc, logger),
		Analytics:   rest.NewAnalyticsHandler(analyticsSvc, logger),
		Loaders:     &dataloader.Repos{Update: signals, Signal: signals},
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Metrics(),
		},
		API: []middleware.Middleware{
			rl.Limit(cfg.RateLimit.RequestsPerMinute),
			middleware.Auth(jwtm),
		},
	})
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = shutdownGrace
	}
	logger.Info("shutting down", slog.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
