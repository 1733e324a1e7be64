package service

import (
	"context"
	"errors"
	"testing"

	"project-admin/internal/database"
	"project-admin/internal/model"
	"project-admin/internal/store"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	getUserByUsername = store.GetUserByUsername
	ensureAdmin = store.EnsureAdmin
	restoreSessionGlobals()
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "other"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(u, "pw"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(model.User{}, "pw"), ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{}
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &model.User{ID: 7, Username: "alice", PasswordHash: string(hash), Role: model.RoleUser}

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByUsername = func(_ context.Context, _ database.DB, name string) (*model.User, error) {
			require.Equal(t, "alice", name)
			return alice, nil
		}
		u, err := Authenticate(ctx, db, "alice", "pw")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		compared := 0
		bcryptCompareHashAndPassword = func(h, p []byte) error {
			compared++
			return bcrypt.CompareHashAndPassword(h, p)
		}

		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		_, errUnknown := Authenticate(ctx, db, "ghost", "pw")

		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return alice, nil
		}
		_, errWrong := Authenticate(ctx, db, "alice", "nope")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
		require.Equal(t, 2, compared)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		boom := errors.New("db down")
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, boom
		}
		_, err := Authenticate(ctx, db, "alice", "pw")
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestBootstrapAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		_, _, err := BootstrapAdmin(ctx, nil, "", "", "pw")
		require.Error(t, err)
		_, _, err = BootstrapAdmin(ctx, nil, "root", "", "")
		require.Error(t, err)
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
		_, _, err := BootstrapAdmin(ctx, nil, "root", "", "pw")
		require.Error(t, err)
	})

	t.Run("ensures admin", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
			return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
		}
		ensureAdmin = func(_ context.Context, _ database.DB, u *model.User) (*model.User, bool, error) {
			require.Equal(t, "root", u.Username)
			require.Equal(t, "root@example.com", u.Email)
			require.NoError(t, ComparePassword(u.PasswordHash, "pw"))
			out := *u
			out.ID = 1
			out.Role = model.RoleAdmin
			return &out, true, nil
		}
		u, created, err := BootstrapAdmin(ctx, nil, "root", "root@example.com", "pw")
		require.NoError(t, err)
		require.True(t, created)
		require.True(t, u.IsAdmin())
	})
}
