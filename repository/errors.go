package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a lookup names a username with no record.
// Callers must handle it explicitly; there is no default permission value.
var ErrNotFound = errors.New("user not found")

// isUniqueViolation reports whether err is the driver's unique (or primary
// key) constraint error.
func isUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
