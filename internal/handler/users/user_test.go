package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"project-admin/internal/api"
	"project-admin/internal/database"
	"project-admin/internal/model"
	"project-admin/internal/service"
	"project-admin/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var adminID = service.Identity{UserID: 1, Role: model.RoleAdmin}

func restore() {
	hashPassword = service.HashPassword
	listUsers = store.ListUsers
	usernameExists = store.UsernameExists
	createUser = store.CreateUser
	deleteUser = store.DeleteUser
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, val string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+val, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(val)
	return c, rec
}

func TestListUsersHandler(t *testing.T) {
	e := newEcho()

	t.Run("error", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return nil, errors.New(`ListUsers: relation "users" does not exist`)
		}
		ctx, rec := newJSONCtx(e, "")
		require.NoError(t, ListUsersHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})

	t.Run("strips credentials", func(t *testing.T) {
		t.Cleanup(restore)
		created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return []model.User{
				{ID: 1, Username: "admin", PasswordHash: "$2a$10$adminhash", Role: model.RoleAdmin, CreatedAt: created},
				{ID: 2, Username: "alice", PasswordHash: "$2a$10$alicehash", Role: model.RoleUser, CreatedAt: created},
			}, nil
		}
		ctx, rec := newJSONCtx(e, "")
		require.NoError(t, ListUsersHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, `"username":"alice"`)
		require.Contains(t, body, `"role":"admin"`)
		require.NotContains(t, body, "hash")
		require.NotContains(t, body, "password")
	})

	t.Run("empty list", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) { return []model.User{}, nil }
		ctx, rec := newJSONCtx(e, "")
		require.NoError(t, ListUsersHandler(nil)(ctx, adminID))
		require.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestCreateUserHandler(t *testing.T) {
	e := newEcho()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "malformed request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, `{"username":"  ","password":""}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), "username is required")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, `{"username":"bob","password":"pw","email":"bad"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), "email must be a valid email")
	})

	t.Run("duplicate username does not insert", func(t *testing.T) {
		t.Cleanup(restore)
		usernameExists = func(_ context.Context, _ database.DB, name string) (bool, error) {
			require.Equal(t, "alice", name)
			return true, nil
		}
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			t.Fatal("createUser must not be called for a duplicate username")
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, `{"username":" alice ","password":"pw"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"username already exists"}`, rec.Body.String())
	})

	t.Run("duplicate race maps to conflict", func(t *testing.T) {
		t.Cleanup(restore)
		usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, fmt.Errorf("CreateUser: %w", store.ErrConflict)
		}
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"pw"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"username already exists"}`, rec.Body.String())
	})

	t.Run("exists check error", func(t *testing.T) {
		t.Cleanup(restore)
		usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, errors.New("db") }
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"pw"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"pw"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ok always creates role user", func(t *testing.T) {
		t.Cleanup(restore)
		usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(p string) (string, error) { return "hashed:" + p, nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "admin", u.Username)
			require.Equal(t, "admin@example.com", u.Email)
			require.Equal(t, "hashed:pw", u.PasswordHash)
			require.Equal(t, model.RoleUser, u.Role)
			out := *u
			out.ID = 9
			return &out, nil
		}
		ctx, rec := newJSONCtx(e, `{"username":"admin","password":"pw","email":"Admin@Example.com"}`)
		require.NoError(t, CreateUserHandler(nil)(ctx, adminID))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":9`)
		require.Contains(t, rec.Body.String(), `"role":"user"`)
		require.NotContains(t, rec.Body.String(), "hashed:")
	})
}

// revokerFn 以函式實作 SessionRevoker
type revokerFn func(ctx context.Context, userID int) error

func (f revokerFn) RevokeUser(ctx context.Context, userID int) error { return f(ctx, userID) }

func TestDeleteUserHandler(t *testing.T) {
	e := newEcho()
	noRevoke := revokerFn(func(context.Context, int) error { return nil })

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		for _, val := range []string{"x", "0", "3000000000"} {
			ctx, rec := newParamCtx(e, val)
			require.NoError(t, DeleteUserHandler(nil, noRevoke)(ctx, adminID))
			require.Equal(t, http.StatusBadRequest, rec.Code, val)
			require.JSONEq(t, `{"error":"invalid id"}`, rec.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, fmt.Errorf("DeleteUser: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, "99")
		require.NoError(t, DeleteUserHandler(nil, noRevoke)(ctx, adminID))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok revokes sessions before deleting", func(t *testing.T) {
		t.Cleanup(restore)
		steps := []string{}
		revoke := revokerFn(func(_ context.Context, userID int) error {
			require.Equal(t, 4, userID)
			steps = append(steps, "revoke")
			return nil
		})
		deleteUser = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 4, id)
			steps = append(steps, "delete")
			return &model.User{ID: 4, Username: "dave", PasswordHash: "$2a$10$x", Role: model.RoleUser}, nil
		}
		ctx, rec := newParamCtx(e, "4")
		require.NoError(t, DeleteUserHandler(nil, revoke)(ctx, adminID))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{"revoke", "delete"}, steps)
		require.Contains(t, rec.Body.String(), `"username":"dave"`)
		require.NotContains(t, rec.Body.String(), "$2a$10$x")
	})

	t.Run("revocation failure keeps the user", func(t *testing.T) {
		t.Cleanup(restore)
		revoke := revokerFn(func(context.Context, int) error { return errors.New("revoke user sessions: redis down") })
		deleteUser = func(context.Context, database.DB, int) (*model.User, error) {
			t.Fatal("user must not be deleted when its sessions cannot be revoked")
			return nil, nil
		}
		ctx, rec := newParamCtx(e, "4")
		require.NoError(t, DeleteUserHandler(nil, revoke)(ctx, adminID))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "redis")
	})
}
