package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"project-admin/internal/api"
	"project-admin/internal/database"
	"project-admin/internal/handler"
	"project-admin/internal/model"
	"project-admin/internal/service"
	"project-admin/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	hashPassword   = service.HashPassword
	listUsers      = store.ListUsers
	usernameExists = store.UsernameExists
	createUser     = store.CreateUser
	deleteUser     = store.DeleteUser
)

const msgDuplicateUsername = "username already exists"

// SessionRevoker 讓使用者現有的 session 全部失效，*service.Gate 實作此介面
type SessionRevoker interface {
	RevokeUser(ctx context.Context, userID int) error
}

// @Summary     List users
// @Description 列出所有使用者（不含密碼欄位），僅限管理員
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, _ service.Identity) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// @Summary     Create a new user
// @Description 建立一般使用者帳號；username 重複回傳 400。管理員帳號只能由 seed-admin 建立
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		var req api.CreateUserRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		ctx := c.Request().Context()
		exists, err := usernameExists(ctx, db, req.Username)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if exists {
			return handler.Fail(c, http.StatusBadRequest, msgDuplicateUsername)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}

		user, err := createUser(ctx, db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			// 檢查與寫入之間被搶先建立
			if errors.Is(err, store.ErrConflict) {
				return handler.Fail(c, http.StatusBadRequest, msgDuplicateUsername)
			}
			return handler.RespondError(c, err)
		}

		zerolog.Ctx(ctx).Info().Int("user_id", user.ID).Int("by", id.UserID).Msg("user created")
		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}

// @Summary     Delete a user by ID
// @Description 刪除使用者並使其所有 session 失效，相關的專案指派會一併移除
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Security    SessionCookie
// @Security    BearerAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, sessions SessionRevoker) handler.IdentityHandlerFunc {
	return func(c echo.Context, id service.Identity) error {
		userID, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		// 先撤銷再刪除：撤銷失敗時帳號保持原狀
		if err := sessions.RevokeUser(ctx, userID); err != nil {
			return handler.RespondError(c, err)
		}
		user, err := deleteUser(ctx, db, userID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		zerolog.Ctx(ctx).Info().Int("user_id", user.ID).Int("by", id.UserID).Msg("user deleted")
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}
