package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"project-admin/internal/api"
	"project-admin/internal/service"
	"project-admin/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrInvalidID 代表路徑參數不是正整數 (400)
var ErrInvalidID = errors.New("invalid id")

// IdentityHandlerFunc 是需要身分的 handler，身分由 middleware.Guard 明確傳入
type IdentityHandlerFunc func(c echo.Context, id service.Identity) error

// Status 把錯誤對應到 HTTP 狀態與可以回給 client 的訊息。
// 第三個回傳值為 false 代表是未預期的錯誤。
func Status(err error) (int, string, bool) {
	var ve *api.ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, ve.Error(), true
	case errors.Is(err, api.ErrMalformedBody):
		return http.StatusBadRequest, api.ErrMalformedBody.Error(), true
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest, ErrInvalidID.Error(), true
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, service.ErrInvalidCredentials.Error(), true
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, service.ErrUnauthenticated.Error(), true
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, service.ErrForbidden.Error(), true
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not found", true
	case errors.Is(err, store.ErrConflict):
		return http.StatusBadRequest, "already exists", true
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusUnprocessableEntity, "referenced record does not exist", true
	case errors.As(err, &he):
		if he.Code >= http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code), false
		}
		return he.Code, fmt.Sprint(he.Message), true
	}
	return http.StatusInternalServerError, "internal server error", false
}

// RespondError 寫出 {"error": "..."}；未預期的錯誤只記 log，不把原因回給 client
func RespondError(c echo.Context, err error) error {
	code, msg, known := Status(err)
	if !known {
		zerolog.Ctx(c.Request().Context()).Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
	}
	return Fail(c, code, msg)
}

// Fail 以指定的狀態碼與訊息回應
func Fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, api.ErrorResponse{Error: msg})
}

// HTTPErrorHandler 讓 echo 自身的錯誤（404 路由、405 等）也使用相同格式
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		code, _, _ := Status(err)
		_ = c.NoContent(code)
		return
	}
	_ = RespondError(c, err)
}

// Bind 解析並驗證請求內容
func Bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return api.ErrMalformedBody
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// ParamID 讀取正整數路徑參數；範圍與資料表的 INTEGER 欄位相同
func ParamID(c echo.Context, name string) (int, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return int(id), nil
}
