package store

import (
	"context"
	"fmt"
	"time"

	"project-admin/internal/database"
	"project-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, role, created_at, updated_at, last_login_at`

func scanUser(row pgx.Row, u *model.User) error {
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	); err != nil {
		return err
	}
	u.Role = model.Role(role)
	return nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", translate(err))
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", translate(err))
	}
	return u, nil
}

func UsernameExists(ctx context.Context, db database.DB, username string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("UsernameExists: %w", err)
	}
	return exists, nil
}

// CreateUser 新增使用者；username 重複時回傳 ErrConflict
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Username,
		u.Email,
		u.PasswordHash,
		string(u.Role),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", translate(err))
	}
	return u, nil
}

// EnsureAdmin 建立或提升 bootstrap 管理員。同名帳號會被提升為 admin 並換成新的密碼哈希；
// email 為空時保留原值。created 表示這次是否真的新增了一列。
func EnsureAdmin(ctx context.Context, db database.DB, u *model.User) (user *model.User, created bool, err error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, 'admin')
		 ON CONFLICT (username) DO UPDATE
		     SET role = 'admin',
		         password_hash = EXCLUDED.password_hash,
		         email = COALESCE(NULLIF(EXCLUDED.email, ''), users.email),
		         updated_at = now()
		 RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`,
		u.Username,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &created); err != nil {
		return nil, false, fmt.Errorf("EnsureAdmin: %w", translate(err))
	}
	u.Role = model.RoleAdmin
	return u, created, nil
}

// DeleteUser 刪除並回傳被刪除的使用者，相關的 project_assignments 由 FK cascade 清除
func DeleteUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("DeleteUser: %w", translate(err))
	}
	return u, nil
}

func TouchLastLogin(ctx context.Context, db database.DB, userID int, at time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2`,
		at,
		userID,
	)
	if err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}
