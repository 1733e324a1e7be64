package auth

import (
	"context"
	"net/http"

	"project-admin/internal/api"
	"project-admin/internal/database"
	"project-admin/internal/handler"
	"project-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// Revoker 撤銷一個 session，*service.Gate 實作此介面
type Revoker interface {
	Revoke(ctx context.Context, id service.Identity) error
}

// LogoutHandler 撤銷目前的 session 並清除 cookie
// @Summary     登出
// @Description 將目前 session 加入撤銷清單直到原本的到期時間
// @Tags        auth
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /auth/logout [post]
func LogoutHandler(gate Revoker, opts SessionOptions) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		if err := gate.Revoke(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, err)
		}
		c.SetCookie(service.ExpiredSessionCookie(opts.SecureCookie))
		return c.NoContent(http.StatusNoContent)
	}
}

// MeHandler 回傳目前登入的使用者
// @Summary     取得目前使用者
// @Description 回傳 session 所屬使用者的資料（不含密碼）
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /auth/me [get]
func MeHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		user, err := getUserByID(c.Request().Context(), db, id.UserID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}
