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

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres/activitylog"
	readstaterepo "github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres/readstate"
	"github.com/heartmarshall/sitetrack-backend/internal/auth"
	"github.com/heartmarshall/sitetrack-backend/internal/config"
	"github.com/heartmarshall/sitetrack-backend/internal/service/activity"
	"github.com/heartmarshall/sitetrack-backend/internal/service/readstate"
	"github.com/heartmarshall/sitetrack-backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled,
// then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("tracing", cfg.Tracing.Enabled),
	)

	shutdownTracing, err := InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Ping(ctx); err != nil {
		logger.Warn("database schema is not current", slog.String("error", err.Error()))
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, Deps{
		Pool:      pool,
		Schema:    migrator,
		Activity:  activity.NewService(logger, activitylog.New(pool), postgres.NewTxManager(pool), cfg.Activity),
		ReadState: readstate.NewService(logger, readstaterepo.New(pool)),
		Tokens:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
