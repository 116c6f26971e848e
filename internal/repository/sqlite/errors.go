package sqlite

import (
	"database/sql"
	"errors"

	sqlite3 "modernc.org/sqlite"
)

// IsDuplicateError checks if error is a unique constraint violation
func IsDuplicateError(err error) bool {
	var sqlErr *sqlite3.Error
	if errors.As(err, &sqlErr) {
		// 1555 = SQLITE_CONSTRAINT_PRIMARYKEY, 2067 = SQLITE_CONSTRAINT_UNIQUE
		return sqlErr.Code() == 1555 || sqlErr.Code() == 2067
	}
	return false
}

// IsNoRowsError checks if error is a "no rows" error
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsForeignKeyError checks if error is a foreign key violation
func IsForeignKeyError(err error) bool {
	var sqlErr *sqlite3.Error
	if errors.As(err, &sqlErr) {
		// 787 = SQLITE_CONSTRAINT_FOREIGNKEY, 1811 = SQLITE_CONSTRAINT_TRIGGER
		return sqlErr.Code() == 787 || sqlErr.Code() == 1811
	}
	return false
}
