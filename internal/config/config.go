package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string        `env:"PORT, default=8080"`
	DatabaseURL  string        `env:"DATABASE_URL, required"`
	JWTSecret    string        `env:"JWT_SECRET, required"`
	SessionTTL   time.Duration `env:"SESSION_TTL, default=24h"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=false"`
	WorkerCount  int           `env:"WORKER_COUNT, default=2"`

	Log       LogConfig
	Redis     RedisConfig
	LoginRate LoginRateConfig
	Bootstrap BootstrapConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type LoginRateConfig struct {
	PerMinute int `env:"LOGIN_RATE_PER_MINUTE, default=10"`
	Burst     int `env:"LOGIN_RATE_BURST, default=5"`
}

// BootstrapConfig 設定後服務啟動時會確保該管理員存在
type BootstrapConfig struct {
	Username string `env:"BOOTSTRAP_ADMIN_USERNAME"`
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
	Email    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
}

func (b BootstrapConfig) Enabled() bool {
	return b.Username != "" && b.Password != ""
}

var lookuper envconfig.Lookuper = envconfig.OsLookuper()

// Load 從環境變數讀取設定
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.LoginRate.PerMinute <= 0 || cfg.LoginRate.Burst <= 0 {
		return nil, fmt.Errorf("config: login rate must be positive")
	}
	return &cfg, nil
}
