package repository

import (
	"context"
	"database/sql"
	"time"
)

// Clock returns the current time. Repositories compare show start times
// against it, tests substitute a fixed or advancing clock.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

func orSystem(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

// withTx runs fn inside a transaction. The transaction is rolled back when
// fn fails and committed otherwise; the returned error is classified.
func withTx(ctx context.Context, db *sql.DB, op string, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return classify(op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			err = classify(op, err)
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = classify(op, cerr)
		}
	}()
	return fn(tx)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
