package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates the addressed row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrConflict indicates a unique constraint was violated.
	ErrConflict = errors.New("store: conflict")
	// ErrInvalidReference indicates a foreign key pointed at a missing row.
	ErrInvalidReference = errors.New("store: invalid reference")
)

// translate 把 pgx / Postgres 錯誤轉成 store 的 sentinel error，其餘原樣回傳
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrConflict
		case "23503":
			return ErrInvalidReference
		}
	}
	return err
}
