package sqlite

import (
	"strings"

	"open-hire/internal/db"
)

// Store is the sqlite-backed implementation of the repository contracts.
// Jobs and bids share one database so bid insertion and the job counter
// increment commit in a single transaction.
type Store struct {
	conn *db.DB
}

// NewStore creates a Store over an open database connection
func NewStore(conn *db.DB) *Store {
	return &Store{conn: conn}
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
// modernc.org/sqlite surfaces constraint errors as plain errors with the
// engine's message, there is no typed error to unwrap.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
