// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"project-admin/internal/database"
	"project-admin/internal/model"
	"project-admin/internal/store"
)

var (
	getUserByUsername = store.GetUserByUsername
	ensureAdmin       = store.EnsureAdmin
)

// AuthenticateUser 比對使用者的密碼哈希
func AuthenticateUser(user model.User, password string) error {
	if user.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Authenticate 以 username / password 登入。
// 查無使用者與密碼錯誤都回傳 ErrInvalidCredentials；只有儲存層故障會回傳其他錯誤。
func Authenticate(ctx context.Context, db database.DB, username, password string) (*model.User, error) {
	user, err := getUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = ComparePassword(decoyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := AuthenticateUser(*user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// BootstrapAdmin 建立（或提升）管理員帳號，重複執行結果相同
func BootstrapAdmin(ctx context.Context, db database.DB, username, email, password string) (*model.User, bool, error) {
	if username == "" || password == "" {
		return nil, false, errors.New("bootstrap admin requires username and password")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	return ensureAdmin(ctx, db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}
