package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return PgErrorCode(err) == "23505"
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	return PgErrorCode(err) == "23503"
}

// PgErrorCode returns the SQLSTATE of a postgres error, or an empty string
// if err does not wrap one.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// DescribeStoreError gives a short classification of a store error, used in
// server side logs only. Clients always get a generic message.
func DescribeStoreError(err error) string {
	switch {
	case err == nil:
		return ""
	case IsUniqueViolationError(err):
		return "unique violation"
	case IsForeignKeyViolationError(err):
		return "foreign key violation"
	case PgErrorCode(err) != "":
		return "postgres error " + PgErrorCode(err)
	default:
		return "store failure"
	}
}
