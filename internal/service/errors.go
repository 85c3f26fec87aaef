// Package service holds the store and domain logic behind the HTTP handlers.
// Every method takes the request context and opens its own store scope.
package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrValidation         = errors.New("invalid value")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const pgUniqueViolation = "23505"

// Error pairs one of the sentinel kinds with a message safe to show to clients
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

func notFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func invalid(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

// isUniqueViolation reports whether err comes from a unique or primary key
// constraint. gorm translates most of these itself, the driver checks catch
// anything it passes through untouched.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
