// Package repository contains data access logic for Show domain operations.
// A Show links one artist to one venue at a start time. Shows are created
// once and never edited.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"
	"fmt"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the show
// struct. The venue and artist must exist; a dangling reference is reported
// as a *ValidationError naming the field. The reference checks and the
// insert share one transaction.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	if err := validateShow(s); err != nil {
		return err
	}
	return withTx(ctx, r.db, "create show", func(tx *sql.Tx) error {
		if err := exists(ctx, tx, `SELECT id FROM venues WHERE id = ?`, s.VenueID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &ValidationError{Field: "venue_id", Reason: fmt.Sprintf("no venue with id %d", s.VenueID)}
			}
			return err
		}
		if err := exists(ctx, tx, `SELECT id FROM artists WHERE id = ?`, s.ArtistID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &ValidationError{Field: "artist_id", Reason: fmt.Sprintf("no artist with id %d", s.ArtistID)}
			}
			return err
		}
		const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		s.ID = uint64(id)
		return nil
	})
}

// List returns every show joined with its venue and artist names, ordered
// by start time ascending.
func (r *ShowRepo) List(ctx context.Context) ([]model.ShowListing, error) {
	const q = `SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC, s.id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, classify("list shows", err)
	}
	defer rows.Close()
	out := make([]model.ShowListing, 0)
	for rows.Next() {
		var l model.ShowListing
		if err := rows.Scan(&l.ID, &l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, classify("list shows", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list shows", err)
	}
	return out, nil
}

func exists(ctx context.Context, tx *sql.Tx, q string, id uint64) error {
	var got uint64
	return tx.QueryRowContext(ctx, q, id).Scan(&got)
}
