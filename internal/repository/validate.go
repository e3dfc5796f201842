package repository

import (
	"strings"

	"github.com/iliyamo/venue-booking/internal/model"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

// validateVenue checks required fields and normalizes the venue in place.
func validateVenue(v *model.Venue) error {
	v.Name = strings.TrimSpace(v.Name)
	v.City = strings.TrimSpace(v.City)
	v.State = strings.TrimSpace(v.State)
	v.Address = strings.TrimSpace(v.Address)
	for _, f := range []struct{ name, value string }{
		{"name", v.Name}, {"city", v.City}, {"state", v.State}, {"address", v.Address},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	v.Genres = model.NewGenres(v.Genres)
	return nil
}

// validateArtist checks required fields and normalizes the artist in place.
func validateArtist(a *model.Artist) error {
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	for _, f := range []struct{ name, value string }{
		{"name", a.Name}, {"city", a.City}, {"state", a.State},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	a.Genres = model.NewGenres(a.Genres)
	return nil
}

func validateShow(s *model.Show) error {
	if s.VenueID == 0 {
		return &ValidationError{Field: "venue_id", Reason: "is required"}
	}
	if s.ArtistID == 0 {
		return &ValidationError{Field: "artist_id", Reason: "is required"}
	}
	if s.StartTime.IsZero() {
		return &ValidationError{Field: "start_time", Reason: "is required"}
	}
	s.StartTime = s.StartTime.UTC()
	return nil
}

// likePattern builds a case-insensitive substring pattern for LIKE with the
// wildcard characters of term escaped.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}
