package middleware

import (
	"net/http"
	"sync"
	"time"

	"project-admin/internal/handler"
	"project-admin/internal/metrics"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// IPRateLimiter 以 client IP 為單位的 token bucket
type IPRateLimiter struct {
	ips   map[string]*visitor
	mu    sync.Mutex
	limit rate.Limit
	burst int
	idle  time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var limiterNow = time.Now

// NewIPRateLimiter limit 為每秒事件數；每分鐘 N 次請用 PerMinute
func NewIPRateLimiter(limit rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:   make(map[string]*visitor),
		limit: limit,
		burst: burst,
		idle:  10 * time.Minute,
	}
}

// PerMinute 把每分鐘 n 次換算成 rate.Limit
func PerMinute(n int) rate.Limit {
	return rate.Limit(float64(n) / 60.0)
}

func (l *IPRateLimiter) Allow(ip string) bool {
	now := limiterNow()

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.ips[ip]
	if !ok {
		l.prune(now)
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// prune 移除閒置的 bucket；呼叫端需持有鎖
func (l *IPRateLimiter) prune(now time.Time) {
	for ip, v := range l.ips {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.ips, ip)
		}
	}
}

// Middleware 超過限制時回傳 429
func (l *IPRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
				c.Response().Header().Set(echo.HeaderRetryAfter, "60")
				return handler.Fail(c, http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
