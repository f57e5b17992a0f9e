package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the query layer translates storage failures into. The
// services decide which domain error each one becomes.
var (
	// ErrNotFound replaces sql.ErrNoRows on single-row lookups.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey replaces a unique constraint violation (SQLSTATE 23505).
	// Concurrent inserts racing on the same (student, class, occurrence) key
	// land here instead of surfacing a raw pq error.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCapacityFull is returned by conditional inserts whose capacity guard
	// rejected the row at commit time.
	ErrCapacityFull = errors.New("capacity full")
)

// Store wraps the connection pool with the query set the booking and
// attendance core needs.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// isUniqueViolation checks if the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return false
}

// translateInsertErr maps driver errors from conditional inserts to sentinels.
func translateInsertErr(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	if errors.Is(err, sql.ErrNoRows) {
		// RETURNING produced no row: the capacity guard filtered the insert.
		return ErrCapacityFull
	}
	return err
}
