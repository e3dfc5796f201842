package model

import (
	"errors"
	"strings"
	"time"
)

// Show represents an artist booked into a venue at a start time. A show is
// upcoming while its start time is at or after the current time and past
// afterwards.
//
// Fields:
//
//	ID        – primary key identifier.
//	VenueID   – venue hosting the show.
//	ArtistID  – artist performing.
//	StartTime – when the show begins, always handled in UTC.
type Show struct {
	ID        uint64    `json:"id"`         // shows.id
	VenueID   uint64    `json:"venue_id"`   // shows.venue_id
	ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
	StartTime time.Time `json:"start_time"` // shows.start_time
}

// ShowListing is one row of the shows page: a show joined with the names of
// its venue and artist.
type ShowListing struct {
	ID              uint64
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ErrInvalidStartTime is returned by ParseStartTime for unparseable input.
var ErrInvalidStartTime = errors.New("invalid start time")

// startTimeLayouts lists the accepted form encodings. Browsers submit
// datetime-local inputs as 2006-01-02T15:04.
var startTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseStartTime parses a submitted start time. Inputs without a zone are
// taken as UTC. The result is always in UTC.
func ParseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidStartTime
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidStartTime
}

// IsUpcoming reports whether a show starting at start is upcoming at now.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// Timed is implemented by show entries that can be partitioned by start time.
type Timed interface {
	Start() time.Time
}

// PartitionShows splits items into past and upcoming relative to now,
// keeping the input order within each bucket. Every item lands in exactly
// one bucket. Both results are non-nil.
func PartitionShows[T Timed](items []T, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(items))
	upcoming = make([]T, 0, len(items))
	for _, it := range items {
		if IsUpcoming(it.Start(), now) {
			upcoming = append(upcoming, it)
		} else {
			past = append(past, it)
		}
	}
	return past, upcoming
}
