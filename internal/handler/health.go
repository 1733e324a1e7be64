// File: internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"project-admin/internal/api"
	"project-admin/internal/cache"
	"project-admin/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const readinessTimeout = 2 * time.Second

// HealthHandler 存活檢查
// @Summary     Liveness
// @Description 服務程序存活即回傳 healthy，不檢查相依服務
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "healthy"})
	}
}

// ReadyHandler 就緒檢查
// @Summary     Readiness
// @Description 檢查資料庫與 Redis 連線，任一失敗回傳 503
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     503 {object} api.HealthResponse
// @Router      /health/ready [get]
func ReadyHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{"database": "ok", "redis": "ok"}
		status := http.StatusOK
		log := zerolog.Ctx(c.Request().Context())

		if err := db.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("database unhealthy")
			checks["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unhealthy")
			checks["redis"] = "unavailable"
			status = http.StatusServiceUnavailable
		}

		resp := api.HealthResponse{Status: "ready", Checks: checks}
		if status != http.StatusOK {
			resp.Status = "unavailable"
		}
		return c.JSON(status, resp)
	}
}
