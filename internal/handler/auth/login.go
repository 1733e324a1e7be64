// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"project-admin/internal/api"
	"project-admin/internal/database"
	"project-admin/internal/handler"
	"project-admin/internal/metrics"
	"project-admin/internal/service"
	"project-admin/internal/store"
	"project-admin/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	authenticate   = service.Authenticate
	touchLastLogin = store.TouchLastLogin
	getUserByID    = store.GetUserByID
	timeNow        = time.Now
)

// SessionOptions 控制 session cookie 的屬性
type SessionOptions struct {
	SecureCookie bool
}

// LoginHandler 使用 Username/Password 驗證並發行 session
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，回傳 session token 並設定 HttpOnly cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資訊"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, gate *service.Gate, pool worker.Pool, opts SessionOptions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		user, err := authenticate(ctx, db, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			} else {
				metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
			}
			return handler.RespondError(c, err)
		}

		session, err := gate.Issue(*user)
		if err != nil {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
			return handler.RespondError(c, err)
		}
		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

		// 最後登入時間在背景更新，失敗不影響登入
		userID, at := user.ID, timeNow().UTC()
		log := zerolog.Ctx(ctx).With().Int("user_id", userID).Logger()
		pool.Submit("touch_last_login", func(taskCtx context.Context) error {
			if err := touchLastLogin(taskCtx, db, userID, at); err != nil {
				log.Warn().Err(err).Msg("record last login failed")
				return err
			}
			return nil
		})

		c.SetCookie(service.SessionCookie(session, opts.SecureCookie))
		return c.JSON(http.StatusOK, api.LoginResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      string(user.Role),
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
		})
	}
}
