package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/gym-checkin/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-checkin/internal/db"
	"github.com/BruksfildServices01/gym-checkin/internal/logging"
	"github.com/BruksfildServices01/gym-checkin/internal/routes"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run returns errors instead of exiting; its deferred cleanup always runs.
func run() error {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if !timezone.IsValid(cfg.Timezone) {
		logger.Warn("unknown APP_TIMEZONE, using default", "timezone", cfg.Timezone, "default", timezone.DefaultTimezone)
	}
	clock := timezone.NewClock(cfg.Timezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		return err
	}

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, gym cache will fall through", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Logger: logger,
		Clock:  clock,
	})
	defer dispatcher.Close()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv, logger)
}

// serve runs srv until ctx is done, then shuts it down. Listen failures are
// returned to the caller.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			logger.Error("failed to start server", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
