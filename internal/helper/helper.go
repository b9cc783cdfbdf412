package helper

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicateKey reports whether err is a postgres unique violation. The
// email unique index makes a racing signup surface here instead of inserting
// a second account.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// IsValidID reports whether id is a well-formed record identifier. Malformed
// ids are rejected before any store access.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
