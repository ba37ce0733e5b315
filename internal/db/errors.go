package db

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation       = "23505"
	codeForeignKeyViolation   = "23503"
	codeCheckViolation        = "23514"
	codeInvalidDatetimeFormat = "22007"
	codeDatetimeOverflow      = "22008"
)

func pqCode(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

func IsUniqueViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == codeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == codeForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == codeCheckViolation
}

// IsInvalidInput reports whether postgres rejected a date/time literal.
func IsInvalidInput(err error) bool {
	code, ok := pqCode(err)
	return ok && (code == codeInvalidDatetimeFormat || code == codeDatetimeOverflow)
}

// ConstraintName returns the violated constraint, if the error carries one.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
