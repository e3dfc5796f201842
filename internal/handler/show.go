package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/view"
)

const showFailed = "Uh oh! There was an error adding your show. Refresh and try again."

// ShowHandler serves the /shows pages. The create form needs the venue and
// artist pickers, so it holds all three stores.
type ShowHandler struct {
	Base
	Shows   ShowStore
	Venues  VenueStore
	Artists ArtistStore
}

// NewShowHandler panics if any store is nil.
func NewShowHandler(base Base, shows ShowStore, venues VenueStore, artists ArtistStore) *ShowHandler {
	if shows == nil || venues == nil || artists == nil {
		panic("nil store passed to NewShowHandler")
	}
	return &ShowHandler{Base: base, Shows: shows, Venues: venues, Artists: artists}
}

// List handles GET /shows.
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.Shows.List(c.Request().Context())
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Shows could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "shows", "Shows", shows)
}

// CreateForm handles GET /shows/create.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.List(ctx)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Venues could not be loaded.", err)
	}
	artists, err := h.Artists.List(ctx)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Artists could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "show_form", "New show", view.ShowForm{
		Venues:  venues,
		Artists: artists,
		Default: time.Now().UTC().Truncate(time.Hour).Add(time.Hour),
	})
}

// Create handles POST /shows/create.
func (h *ShowHandler) Create(c echo.Context) error {
	start, err := model.ParseStartTime(c.FormValue("start_time"))
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, showFailed, err)
	}
	s := model.Show{
		VenueID:   formUint(c, "venue_id"),
		ArtistID:  formUint(c, "artist_id"),
		StartTime: start,
	}
	if err := h.Shows.Create(c.Request().Context(), &s); err != nil {
		return h.fail(c, http.StatusInternalServerError, showFailed, err)
	}
	h.publish(c, queue.NewActivityEvent(queue.ShowCreated, s.ID, "", map[string]string{
		"venue_id":   strconv.FormatUint(s.VenueID, 10),
		"artist_id":  strconv.FormatUint(s.ArtistID, 10),
		"start_time": s.StartTime.Format(time.RFC3339),
	}))
	return h.redirect(c, "/shows", "Show was successfully listed!")
}

// formUint returns 0 for a missing or malformed value; the store rejects it.
func formUint(c echo.Context, key string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(c.FormValue(key)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
