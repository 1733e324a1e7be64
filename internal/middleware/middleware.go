package middleware

import (
	"context"
	"net/http"

	"project-admin/internal/handler"
	"project-admin/internal/metrics"
	"project-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// Resolver 把請求解析成身分，*service.Gate 實作此介面
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) service.Identity
}

// Guard 解析身分、檢查 action 的集合層級權限，再把身分交給 h。
// 個別資源的權限（例如單一專案）由 h 自己以 service.Can 檢查。
func Guard(gate Resolver, action service.Action, h handler.IdentityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := gate.Resolve(c.Request().Context(), c.Request())
		if err := service.Authorize(id, action, service.Resource{}); err != nil {
			reason := "forbidden"
			if !id.Authenticated() {
				reason = "unauthenticated"
			}
			metrics.AuthorizationDeniedTotal.WithLabelValues(string(action), reason).Inc()
			return handler.RespondError(c, err)
		}
		return h(c, id)
	}
}

// RequireIdentity 只要求已登入，不檢查 action
func RequireIdentity(gate Resolver, h handler.IdentityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := gate.Resolve(c.Request().Context(), c.Request())
		if !id.Authenticated() {
			metrics.AuthorizationDeniedTotal.WithLabelValues("session", "unauthenticated").Inc()
			return handler.RespondError(c, service.ErrUnauthenticated)
		}
		return h(c, id)
	}
}
