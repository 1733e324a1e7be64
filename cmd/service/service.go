// @title        Project Admin API
// @version      1.0
// @description  專案與使用者管理後台 API，專案指派決定一般使用者可見的專案
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-admin/internal/cache"
	"project-admin/internal/config"
	"project-admin/internal/database"
	"project-admin/internal/logger"
	"project-admin/internal/middleware"
	"project-admin/internal/router"
	"project-admin/internal/service"
	"project-admin/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	_ "project-admin/docs" // 引入 swag 產出的 docs
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	bootstrapAdmin  = service.BootstrapAdmin
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit

	// nil 代表使用 prometheus 預設 registry
	newRegistry = func() *prometheus.Registry { return nil }
)

func run(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	ctx = log.WithContext(ctx)

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	if cfg.Bootstrap.Enabled() {
		admin, created, err := bootstrapAdmin(ctx, db, cfg.Bootstrap.Username, cfg.Bootstrap.Email, cfg.Bootstrap.Password)
		if err != nil {
			return fmt.Errorf("建立管理員失敗: %w", err)
		}
		log.Info().Int("user_id", admin.ID).Bool("created", created).Msg("bootstrap admin ensured")
	}

	gate, err := service.NewGate(cfg.JWTSecret, cfg.SessionTTL, rdb)
	if err != nil {
		return err
	}

	wp := newWorkerPool(worker.Options{Workers: cfg.WorkerCount, Logger: log})
	defer wp.Stop()

	e := echo.New()
	router.Setup(e, router.Deps{
		DB:           db,
		Cache:        rdb,
		Gate:         gate,
		Pool:         wp,
		Logger:       log,
		LoginLimiter: middleware.NewIPRateLimiter(middleware.PerMinute(cfg.LoginRate.PerMinute), cfg.LoginRate.Burst),
		SecureCookie: cfg.CookieSecure,
		Registry:     newRegistry(),
	})

	return serve(ctx, e, ":"+cfg.Port, log)
}

// serve 啟動 HTTP 服務，ctx 結束時優雅關閉
func serve(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		errCh <- startServer(e, addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("service exited")
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
