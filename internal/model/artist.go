package model

import "time"

// Artist represents a performer who can be booked into shows. This struct
// corresponds to a row in the `artists` table.
type Artist struct {
	ID                 uint64 `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone"`
	Genres             Genres `json:"genres"`
	ImageLink          string `json:"image_link"`
	Website            string `json:"website"`
	FacebookLink       string `json:"facebook_link"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
}

// VenueShow is a show as seen from an artist page.
type VenueShow struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

func (s VenueShow) Start() time.Time { return s.StartTime }

// ArtistDetail is an artist together with its shows split into past and
// upcoming.
type ArtistDetail struct {
	Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// NewArtistDetail partitions shows around now.
func NewArtistDetail(a Artist, shows []VenueShow, now time.Time) *ArtistDetail {
	past, upcoming := PartitionShows(shows, now)
	return &ArtistDetail{
		Artist:             a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
