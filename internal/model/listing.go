package model

// Summary is the short form of a venue or artist used by listing and search
// pages.
type Summary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the outcome of a venue or artist search. Items holds each
// matching record once.
type SearchResult struct {
	Term  string    `json:"search_term"`
	Count int       `json:"count"`
	Items []Summary `json:"data"`
}

// LocatedVenue is a venue summary tagged with the location it is grouped by.
type LocatedVenue struct {
	Summary
	City  string
	State string
}

// VenueArea is one (city, state) group of the venues page.
type VenueArea struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type areaKey struct{ city, state string }

// GroupByLocation groups venues by exact (city, state) match. Areas appear in
// the order their first venue appears in the input, venues keep input order
// within an area.
func GroupByLocation(venues []LocatedVenue) []VenueArea {
	areas := make([]VenueArea, 0)
	index := make(map[areaKey]int)
	for _, v := range venues {
		k := areaKey{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, VenueArea{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, v.Summary)
	}
	return areas
}
