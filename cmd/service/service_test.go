package main

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"project-admin/internal/cache"
	"project-admin/internal/config"
	"project-admin/internal/database"
	"project-admin/internal/model"
	"project-admin/internal/service"
	"project-admin/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	bootstrapAdmin = service.BootstrapAdmin
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
	newRegistry = func() *prometheus.Registry { return nil }
}

func testConfig() *config.Config {
	return &config.Config{
		Port:        "8081",
		DatabaseURL: "db",
		JWTSecret:   "s",
		SessionTTL:  time.Hour,
		WorkerCount: 1,
		Redis:       config.RedisConfig{Addr: "127", Password: "pw", DB: 1},
		LoginRate:   config.LoginRateConfig{PerMinute: 10, Burst: 5},
	}
}

// stubAll 讓 run() 不碰真正的外部服務
func stubAll(t *testing.T, cfg *config.Config) map[string]bool {
	t.Helper()
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newRegistry = prometheus.NewRegistry
	loadConfig = func(context.Context) (*config.Config, error) { return cfg, nil }
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8081", addr)
		return nil
	}
	return called
}

func TestRunSuccess(t *testing.T) {
	called := stubAll(t, testConfig())

	require.NoError(t, run(context.Background()))
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
	require.False(t, called["bootstrap"])
}

func TestRunBootstrapAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.Bootstrap = config.BootstrapConfig{Username: "root", Password: "pw", Email: "root@example.com"}
	called := stubAll(t, cfg)
	bootstrapAdmin = func(_ context.Context, _ database.DB, u, email, pw string) (*model.User, bool, error) {
		called["bootstrap"] = true
		require.Equal(t, "root", u)
		require.Equal(t, "root@example.com", email)
		require.Equal(t, "pw", pw)
		return &model.User{ID: 1, Username: u, Role: model.RoleAdmin}, true, nil
	}
	require.NoError(t, run(context.Background()))
	require.True(t, called["bootstrap"])

	bootstrapAdmin = func(context.Context, database.DB, string, string, string) (*model.User, bool, error) {
		return nil, false, errors.New("insert")
	}
	require.Error(t, run(context.Background()))
}

func TestRunErrors(t *testing.T) {
	stubAll(t, testConfig())

	loadConfig = func(context.Context) (*config.Config, error) { return nil, errors.New("config") }
	require.Error(t, run(context.Background()))
	loadConfig = func(context.Context) (*config.Config, error) { return testConfig(), nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run(context.Background()))

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run(context.Background()))

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run(context.Background()))

	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run(context.Background()))

	startServer = func(*echo.Echo, string) error { return http.ErrServerClosed }
	require.NoError(t, run(context.Background()))

	bad := testConfig()
	bad.JWTSecret = ""
	loadConfig = func(context.Context) (*config.Config, error) { return bad, nil }
	require.Error(t, run(context.Background()))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	stubAll(t, testConfig())
	started := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	startServer = func(e *echo.Echo, addr string) error {
		close(started)
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	require.NoError(t, run(ctx))
}

func TestMainFunction(t *testing.T) {
	stubAll(t, testConfig())
	main()
}

func TestMainExit(t *testing.T) {
	stubAll(t, testConfig())
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
