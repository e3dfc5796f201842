// Package repository contains data access logic separated from HTTP handlers.
// This file defines the venue repository: CRUD, search, and the grouped
// listing used by the venues page.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"

	"github.com/iliyamo/venue-booking/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, image_link, genres,
	website, facebook_link, seeking_talent, seeking_description`

// VenueRepo encapsulates all database queries related to venues. It
// depends on a sql.DB connection which is opened at process start and a
// Clock used to classify shows as past or upcoming.
type VenueRepo struct {
	db  *sql.DB
	now Clock
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. A nil
// clock falls back to the system time in UTC.
func NewVenueRepo(db *sql.DB, clock Clock) *VenueRepo {
	return &VenueRepo{db: db, now: orSystem(clock)}
}

func scanVenue(row rowScanner, v *model.Venue) error {
	return row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.Genres,
		&v.Website, &v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription)
}

// Create validates and inserts a new venue. On success the venue's ID field
// is populated with the auto-generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}
	const q = `INSERT INTO venues (name, city, state, address, phone, image_link, genres,
		website, facebook_link, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.Genres,
		v.Website, v.FacebookLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return classify("create venue", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return classify("create venue", err)
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	q := `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, classify("get venue", err)
	}
	return &v, nil
}

// Detail returns the venue with its shows split into past and upcoming
// relative to the repository clock. Each show entry carries the performing
// artist's id, name and image.
func (r *VenueRepo) Detail(ctx context.Context, id uint64) (*model.VenueDetail, error) {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, classify("venue shows", err)
	}
	defer rows.Close()

	var shows []model.ArtistShow
	for rows.Next() {
		var s model.ArtistShow
		if err := rows.Scan(&s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartTime); err != nil {
			return nil, classify("venue shows", err)
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("venue shows", err)
	}
	return model.NewVenueDetail(*v, shows, r.now()), nil
}

// List returns every venue's id and name ordered by name. It feeds the
// venue picker of the show form.
func (r *VenueRepo) List(ctx context.Context) ([]model.Summary, error) {
	const q = `SELECT id, name FROM venues ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, classify("list venues", err)
	}
	defer rows.Close()
	out := make([]model.Summary, 0)
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, classify("list venues", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list venues", err)
	}
	return out, nil
}

// ListGroupedByLocation returns venues grouped by exact (city, state) with
// the number of upcoming shows for each venue. Areas are ordered by state
// and city, venues within an area by id.
func (r *VenueRepo) ListGroupedByLocation(ctx context.Context) ([]model.VenueArea, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time >= ?
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.state, v.city, v.id`
	rows, err := r.db.QueryContext(ctx, q, r.now())
	if err != nil {
		return nil, classify("group venues", err)
	}
	defer rows.Close()

	var located []model.LocatedVenue
	for rows.Next() {
		var lv model.LocatedVenue
		if err := rows.Scan(&lv.ID, &lv.Name, &lv.City, &lv.State, &lv.NumUpcomingShows); err != nil {
			return nil, classify("group venues", err)
		}
		located = append(located, lv)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("group venues", err)
	}
	return model.GroupByLocation(located), nil
}

// Search matches term case-insensitively against venue name, city and
// state. A venue matching on several fields is reported once.
func (r *VenueRepo) Search(ctx context.Context, term string) (model.SearchResult, error) {
	const q = `SELECT v.id, v.name, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time >= ?
	           WHERE LOWER(v.name) LIKE ? OR LOWER(v.city) LIKE ? OR LOWER(v.state) LIKE ?
	           GROUP BY v.id, v.name
	           ORDER BY v.name, v.id`
	p := likePattern(term)
	rows, err := r.db.QueryContext(ctx, q, r.now(), p, p, p)
	if err != nil {
		return model.SearchResult{}, classify("search venues", err)
	}
	defer rows.Close()
	return scanSearch(rows, term, "search venues")
}

// Update replaces the editable fields of an existing venue. The existence
// check and the write run in one transaction.
func (r *VenueRepo) Update(ctx context.Context, id uint64, v *model.Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}
	return withTx(ctx, r.db, "update venue", func(tx *sql.Tx) error {
		if _, err := lockVenue(ctx, tx, id); err != nil {
			return err
		}
		const q = `UPDATE venues
		           SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?, genres = ?,
		               website = ?, facebook_link = ?, seeking_talent = ?, seeking_description = ?
		           WHERE id = ?`
		if _, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.Genres,
			v.Website, v.FacebookLink, v.SeekingTalent, v.SeekingDescription, id); err != nil {
			return err
		}
		v.ID = id
		return nil
	})
}

// Delete removes a venue and all of its shows. The cascade is performed
// here rather than by the schema, which declares the foreign key RESTRICT.
// The returned venue carries the deleted id and name.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (*model.Venue, error) {
	var name string
	err := withTx(ctx, r.db, "delete venue", func(tx *sql.Tx) error {
		var err error
		if name, err = lockVenue(ctx, tx, id); err != nil {
			return err
		}
		// Cascade delete: shows first so the foreign key is never violated
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &model.Venue{ID: id, Name: name}, nil
}

// lockVenue verifies the venue exists and locks its row for the rest of the
// transaction.
func lockVenue(ctx context.Context, tx *sql.Tx, id uint64) (string, error) {
	var name string
	err := tx.QueryRowContext(ctx, `SELECT name FROM venues WHERE id = ? FOR UPDATE`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrVenueNotFound
	}
	return name, err
}

// scanSearch collects id, name, upcoming count rows into a SearchResult.
func scanSearch(rows *sql.Rows, term, op string) (model.SearchResult, error) {
	res := model.SearchResult{Term: term, Items: make([]model.Summary, 0)}
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return model.SearchResult{}, classify(op, err)
		}
		res.Items = append(res.Items, s)
	}
	if err := rows.Err(); err != nil {
		return model.SearchResult{}, classify(op, err)
	}
	res.Count = len(res.Items)
	return res, nil
}
