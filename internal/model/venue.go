package model

import "time"

// Venue represents a physical location hosting shows. This struct
// corresponds to a row in the `venues` table.
type Venue struct {
	ID                 uint64 `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	ImageLink          string `json:"image_link"`
	Genres             Genres `json:"genres"`
	Website            string `json:"website"`
	FacebookLink       string `json:"facebook_link"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
}

// ArtistShow is a show as seen from a venue page: the performing artist and
// the start time.
type ArtistShow struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func (s ArtistShow) Start() time.Time { return s.StartTime }

// VenueDetail is a venue together with its shows split into past and
// upcoming.
type VenueDetail struct {
	Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// NewVenueDetail partitions shows around now.
func NewVenueDetail(v Venue, shows []ArtistShow, now time.Time) *VenueDetail {
	past, upcoming := PartitionShows(shows, now)
	return &VenueDetail{
		Venue:              v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
