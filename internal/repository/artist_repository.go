// Package repository contains data access logic for Artist operations.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-booking/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link,
	website, facebook_link, seeking_venue, seeking_description`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db  *sql.DB
	now Clock
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB, clock Clock) *ArtistRepo {
	return &ArtistRepo{db: db, now: orSystem(clock)}
}

func scanArtist(row rowScanner, a *model.Artist) error {
	return row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink,
		&a.Website, &a.FacebookLink, &a.SeekingVenue, &a.SeekingDescription)
}

// Create validates and inserts a new artist and assigns the generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}
	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link,
		website, facebook_link, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.Website, a.FacebookLink, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return classify("create artist", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return classify("create artist", err)
	}
	a.ID = uint64(id)
	return nil
}

// GetByID retrieves an artist by its ID. It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	q := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a model.Artist
	if err := scanArtist(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, classify("get artist", err)
	}
	return &a, nil
}

// Detail returns the artist with its shows split into past and upcoming.
func (r *ArtistRepo) Detail(ctx context.Context, id uint64) (*model.ArtistDetail, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, classify("artist shows", err)
	}
	defer rows.Close()

	var shows []model.VenueShow
	for rows.Next() {
		var s model.VenueShow
		if err := rows.Scan(&s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartTime); err != nil {
			return nil, classify("artist shows", err)
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("artist shows", err)
	}
	return model.NewArtistDetail(*a, shows, r.now()), nil
}

// List returns all artists' ids and names ordered by name.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Summary, error) {
	const q = `SELECT id, name FROM artists ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, classify("list artists", err)
	}
	defer rows.Close()
	out := make([]model.Summary, 0)
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, classify("list artists", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list artists", err)
	}
	return out, nil
}

// Search matches term case-insensitively against artist names.
func (r *ArtistRepo) Search(ctx context.Context, term string) (model.SearchResult, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id)
	           FROM artists a
	           LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time >= ?
	           WHERE LOWER(a.name) LIKE ?
	           GROUP BY a.id, a.name
	           ORDER BY a.name, a.id`
	rows, err := r.db.QueryContext(ctx, q, r.now(), likePattern(term))
	if err != nil {
		return model.SearchResult{}, classify("search artists", err)
	}
	defer rows.Close()
	return scanSearch(rows, term, "search artists")
}

// Update replaces the editable fields of an existing artist.
func (r *ArtistRepo) Update(ctx context.Context, id uint64, a *model.Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}
	return withTx(ctx, r.db, "update artist", func(tx *sql.Tx) error {
		if _, err := lockArtist(ctx, tx, id); err != nil {
			return err
		}
		const q = `UPDATE artists
		           SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
		               website = ?, facebook_link = ?, seeking_venue = ?, seeking_description = ?
		           WHERE id = ?`
		if _, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
			a.Website, a.FacebookLink, a.SeekingVenue, a.SeekingDescription, id); err != nil {
			return err
		}
		a.ID = id
		return nil
	})
}

// Delete removes an artist that has no shows. If any show still references
// the artist the deletion is aborted with ErrArtistHasShows and nothing is
// written.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (*model.Artist, error) {
	var name string
	err := withTx(ctx, r.db, "delete artist", func(tx *sql.Tx) error {
		var err error
		if name, err = lockArtist(ctx, tx, id); err != nil {
			return err
		}
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = ?`, id).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrArtistHasShows
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &model.Artist{ID: id, Name: name}, nil
}

func lockArtist(ctx context.Context, tx *sql.Tx, id uint64) (string, error) {
	var name string
	err := tx.QueryRowContext(ctx, `SELECT name FROM artists WHERE id = ? FOR UPDATE`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrArtistNotFound
	}
	return name, err
}
