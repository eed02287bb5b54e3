package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation       = "23505"
	PgErrInsufficientPrivilege = "42501"
	PgErrInvalidAuthorization  = "28000"
	PgErrInvalidPassword       = "28P01"
	PgErrAdminShutdown         = "57P01"
	PgErrCannotConnectNow      = "57P03"
	PgErrSerializationFailure  = "40001"

	pgClassConnectionException = "08"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// PgConstraint имя нарушенного ограничения, пусто если это не PgError.
func PgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func IsPermissionError(err error) bool {
	return IsPgErrorWithCode(err, PgErrInsufficientPrivilege) ||
		IsPgErrorWithCode(err, PgErrInvalidAuthorization) ||
		IsPgErrorWithCode(err, PgErrInvalidPassword)
}

func IsConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgClassConnectionException) ||
			pgErr.Code == PgErrAdminShutdown ||
			pgErr.Code == PgErrCannotConnectNow
	}
	return false
}

// ClassifyStoreError переводит ошибки доступности и прав в сентинелы сервиса.
// Для прочих ошибок возвращает nil.
func ClassifyStoreError(err error, unavailable, permission error) error {
	switch {
	case IsPermissionError(err):
		return fmt.Errorf("%w: %v", permission, err)
	case IsConnectivityError(err):
		return fmt.Errorf("%w: %v", unavailable, err)
	default:
		return nil
	}
}
