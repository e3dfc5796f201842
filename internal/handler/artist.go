package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/session"
	"github.com/iliyamo/venue-booking/internal/view"
)

// ArtistHandler serves the /artists pages.
type ArtistHandler struct {
	Base
	Artists ArtistStore
}

// NewArtistHandler panics if artists is nil.
func NewArtistHandler(base Base, artists ArtistStore) *ArtistHandler {
	if artists == nil {
		panic("nil artist store passed to NewArtistHandler")
	}
	return &ArtistHandler{Base: base, Artists: artists}
}

func artistFromForm(c echo.Context) model.Artist {
	return model.Artist{
		Name:               c.FormValue("name"),
		City:               c.FormValue("city"),
		State:              c.FormValue("state"),
		Phone:              c.FormValue("phone"),
		Genres:             model.NewGenres(formList(c, "genres")),
		ImageLink:          c.FormValue("image_link"),
		Website:            c.FormValue("website"),
		FacebookLink:       c.FormValue("facebook_link"),
		SeekingVenue:       formBool(c.FormValue("seeking_venue")),
		SeekingDescription: c.FormValue("seeking_description"),
	}
}

// List handles GET /artists.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.List(c.Request().Context())
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Artists could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "artists", "Artists", artists)
}

// Search handles POST /artists/search.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := strings.TrimSpace(c.FormValue("search_term"))
	res, err := h.Artists.Search(c.Request().Context(), term)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Search failed. Please try again.", err)
	}
	if res.Count == 0 {
		h.flash(c, session.LevelInfo, fmt.Sprintf("No results found for %s.", term))
		return c.Redirect(http.StatusSeeOther, "/artists")
	}
	return h.render(c, http.StatusOK, "search", "Search artists", view.SearchPage{Kind: "artists", Result: res})
}

// Show handles GET /artists/:id.
func (h *ArtistHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	d, err := h.Artists.Detail(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError, "Artist could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "artist", d.Name, d)
}

// CreateForm handles GET /artists/create.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "artist_form", "New artist", view.ArtistForm{Action: "/artists/create"})
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	a := artistFromForm(c)
	if err := h.Artists.Create(c.Request().Context(), &a); err != nil {
		return h.fail(c, http.StatusInternalServerError,
			fmt.Sprintf("There was an error adding %s artist.", a.Name), err)
	}
	h.publish(c, queue.NewActivityEvent(queue.ArtistCreated, a.ID, a.Name,
		map[string]string{"city": a.City, "state": a.State}))
	return h.redirect(c, fmt.Sprintf("/artists/%d", a.ID), fmt.Sprintf("Artist %s was successfully listed!", a.Name))
}

// EditForm handles GET /artists/:id/edit.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError, "Artist could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "artist_form", "Edit "+a.Name,
		view.ArtistForm{Action: fmt.Sprintf("/artists/%d/edit", id), Artist: *a})
}

// Edit handles POST /artists/:id/edit.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	a := artistFromForm(c)
	err := h.Artists.Update(c.Request().Context(), id, &a)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError,
			fmt.Sprintf("Artist %s could not be updated. Please Refresh and try again.", a.Name), err)
	}
	h.publish(c, queue.NewActivityEvent(queue.ArtistUpdated, id, a.Name, nil))
	return h.redirect(c, fmt.Sprintf("/artists/%d", id), fmt.Sprintf("Artist %s was successfully updated!", a.Name))
}

// Delete handles POST /artists/delete/:id. Artists with shows are kept.
func (h *ArtistHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	a, err := h.Artists.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case errors.Is(err, repository.ErrConflict):
		return h.fail(c, http.StatusConflict,
			fmt.Sprintf("Artist with ID=%d still has shows and cannot be removed.", id), err)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError,
			fmt.Sprintf("There was an error deleting artist with ID=%d.", id), err)
	}
	h.publish(c, queue.NewActivityEvent(queue.ArtistDeleted, id, a.Name, nil))
	return h.redirect(c, "/", fmt.Sprintf("Artist %s was successfully removed.", a.Name))
}
