package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenresNormalizes(t *testing.T) {
	g := NewGenres([]string{" Jazz", "", "Reggae", "Jazz", "   ", "Folk "})
	assert.Equal(t, Genres{"Jazz", "Reggae", "Folk"}, g)
	assert.True(t, g.Contains("Folk"))
	assert.False(t, g.Contains("Swing"))
	assert.Equal(t, "Jazz, Reggae, Folk", g.String())
}

func TestGenresValueAndScan(t *testing.T) {
	v, err := Genres{"Jazz", "Blues"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Jazz","Blues"]`, v)

	v, err = Genres(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var g Genres
	require.NoError(t, g.Scan([]byte(`["Rock n Roll", "", "Rock n Roll"]`)))
	assert.Equal(t, Genres{"Rock n Roll"}, g)

	require.NoError(t, g.Scan(nil))
	assert.Empty(t, g)

	assert.Error(t, g.Scan(42))
	assert.Error(t, g.Scan("not json"))
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2035-04-01T20:00",
		"2035-04-01T20:00:00",
		"2035-04-01 20:00:00",
		"2035-04-01 20:00",
		"2035-04-01T20:00:00.00Z",
		"2035-04-01T22:00:00+02:00",
	} {
		got, err := ParseStartTime(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
		assert.Equal(t, time.UTC, got.Location(), raw)
	}

	for _, raw := range []string{"", "   ", "tomorrow", "2035-13-01T20:00"} {
		_, err := ParseStartTime(raw)
		assert.ErrorIs(t, err, ErrInvalidStartTime, raw)
	}
}

func TestPartitionShowsIsExhaustiveAndDisjoint(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	shows := []ArtistShow{
		{ArtistID: 1, StartTime: now.Add(-time.Hour)},
		{ArtistID: 2, StartTime: now},
		{ArtistID: 3, StartTime: now.Add(time.Nanosecond)},
		{ArtistID: 4, StartTime: now.Add(-time.Nanosecond)},
		{ArtistID: 5, StartTime: now.AddDate(1, 0, 0)},
	}

	past, upcoming := PartitionShows(shows, now)
	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 3)
	assert.Equal(t, len(shows), len(past)+len(upcoming))

	for _, s := range past {
		assert.True(t, s.StartTime.Before(now))
	}
	for _, s := range upcoming {
		assert.False(t, s.StartTime.Before(now))
	}
	assert.Equal(t, uint64(2), upcoming[0].ArtistID, "start == now counts as upcoming")
}

func TestPartitionShowsEmpty(t *testing.T) {
	past, upcoming := PartitionShows([]VenueShow(nil), time.Now())
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestNewVenueDetailCounts(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewVenueDetail(Venue{ID: 7, Name: "The Musical Hop"}, []ArtistShow{
		{ArtistID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ArtistID: 2, StartTime: now.Add(48 * time.Hour)},
		{ArtistID: 3, StartTime: now.Add(72 * time.Hour)},
	}, now)
	assert.Equal(t, uint64(7), d.ID)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 2, d.UpcomingShowsCount)
}

func TestGroupByLocation(t *testing.T) {
	in := []LocatedVenue{
		{Summary: Summary{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0}, City: "San Francisco", State: "CA"},
		{Summary: Summary{ID: 2, Name: "The Dueling Pianos Bar"}, City: "New York", State: "NY"},
		{Summary: Summary{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1}, City: "San Francisco", State: "CA"},
		{Summary: Summary{ID: 4, Name: "Case Sensitive"}, City: "san francisco", State: "CA"},
	}

	areas := GroupByLocation(in)
	require.Len(t, areas, 3)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, []uint64{1, 3}, ids(areas[0].Venues))
	assert.Equal(t, "New York", areas[1].City)
	assert.Equal(t, "san francisco", areas[2].City)

	seen := map[uint64]int{}
	for _, a := range areas {
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	for _, v := range in {
		assert.Equal(t, 1, seen[v.ID], "venue %d must appear exactly once", v.ID)
	}
}

func TestGroupByLocationEmpty(t *testing.T) {
	assert.Empty(t, GroupByLocation(nil))
}

func ids(items []Summary) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
