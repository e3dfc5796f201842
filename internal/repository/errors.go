// Package repository defines error types that are reused across multiple
// repositories. These values allow handlers to distinguish between the
// failure kinds of the booking directory: a referenced record that does not
// exist, input that cannot be stored, a store failure, and a delete that is
// blocked by dependent rows.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is wrapped by every "record does not exist" error. Handlers
// should translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)

// ErrConflict is returned when a delete cannot be performed because of
// dependent records. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// ErrArtistHasShows blocks deleting an artist that still has shows.
var ErrArtistHasShows = fmt.Errorf("artist has scheduled shows: %w", ErrConflict)

// mysqlNoReferencedRow is the server error raised when a foreign key points
// at a missing row.
const mysqlNoReferencedRow = 1452

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// PersistenceError wraps a store failure with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// classify converts a raw store error into one of the package's error kinds.
// Errors that already carry a kind pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || IsValidation(err) || errors.As(err, &pe) {
		return err
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlNoReferencedRow {
		return &ValidationError{Field: "foreign key", Reason: "referenced record does not exist"}
	}
	return &PersistenceError{Op: op, Err: err}
}
