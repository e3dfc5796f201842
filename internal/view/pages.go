package view

import (
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// VenueForm backs venue_form. Venue.ID is zero on the create form.
type VenueForm struct {
	Action string
	Venue  model.Venue
}

// ArtistForm backs artist_form.
type ArtistForm struct {
	Action string
	Artist model.Artist
}

// ShowForm backs show_form.
type ShowForm struct {
	Venues  []model.Summary
	Artists []model.Summary
	Default time.Time
}

// SearchPage backs search. Kind is "venues" or "artists" and picks the
// detail link prefix.
type SearchPage struct {
	Kind   string
	Result model.SearchResult
}

// ErrorPage backs error.
type ErrorPage struct {
	Status  int
	Message string
}
