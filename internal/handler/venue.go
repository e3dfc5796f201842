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

// VenueHandler serves the /venues pages.
type VenueHandler struct {
	Base
	Venues VenueStore
}

// NewVenueHandler panics if venues is nil.
func NewVenueHandler(base Base, venues VenueStore) *VenueHandler {
	if venues == nil {
		panic("nil venue store passed to NewVenueHandler")
	}
	return &VenueHandler{Base: base, Venues: venues}
}

func venueFromForm(c echo.Context) model.Venue {
	return model.Venue{
		Name:               c.FormValue("name"),
		City:               c.FormValue("city"),
		State:              c.FormValue("state"),
		Address:            c.FormValue("address"),
		Phone:              c.FormValue("phone"),
		ImageLink:          c.FormValue("image_link"),
		Genres:             model.NewGenres(formList(c, "genres")),
		Website:            c.FormValue("website"),
		FacebookLink:       c.FormValue("facebook_link"),
		SeekingTalent:      formBool(c.FormValue("seeking_talent")),
		SeekingDescription: c.FormValue("seeking_description"),
	}
}

// List handles GET /venues: venues grouped by city and state.
func (h *VenueHandler) List(c echo.Context) error {
	areas, err := h.Venues.ListGroupedByLocation(c.Request().Context())
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Venues could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "venues", "Venues", areas)
}

// Search handles POST /venues/search.
func (h *VenueHandler) Search(c echo.Context) error {
	term := strings.TrimSpace(c.FormValue("search_term"))
	res, err := h.Venues.Search(c.Request().Context(), term)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Search failed. Please try again.", err)
	}
	if res.Count == 0 {
		h.flash(c, session.LevelInfo, fmt.Sprintf("No results found for %s.", term))
		return c.Redirect(http.StatusSeeOther, "/venues")
	}
	return h.render(c, http.StatusOK, "search", "Search venues", view.SearchPage{Kind: "venues", Result: res})
}

// Show handles GET /venues/:id.
func (h *VenueHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	d, err := h.Venues.Detail(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError, "Venue could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "venue", d.Name, d)
}

// CreateForm handles GET /venues/create.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "venue_form", "New venue", view.VenueForm{Action: "/venues/create"})
}

// Create handles POST /venues/create.
func (h *VenueHandler) Create(c echo.Context) error {
	v := venueFromForm(c)
	if err := h.Venues.Create(c.Request().Context(), &v); err != nil {
		return h.fail(c, http.StatusInternalServerError,
			fmt.Sprintf("Venue %s failed to be listed. Please Refresh and try again.", v.Name), err)
	}
	h.publish(c, queue.NewActivityEvent(queue.VenueCreated, v.ID, v.Name,
		map[string]string{"city": v.City, "state": v.State}))
	return h.redirect(c, fmt.Sprintf("/venues/%d", v.ID), fmt.Sprintf("Venue %s was successfully listed!", v.Name))
}

// EditForm handles GET /venues/:id/edit.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError, "Venue could not be loaded.", err)
	}
	return h.render(c, http.StatusOK, "venue_form", "Edit "+v.Name,
		view.VenueForm{Action: fmt.Sprintf("/venues/%d/edit", id), Venue: *v})
}

// Edit handles POST /venues/:id/edit.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	v := venueFromForm(c)
	err := h.Venues.Update(c.Request().Context(), id, &v)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError,
			fmt.Sprintf("Venue %s could not be updated. Please Refresh and try again.", v.Name), err)
	}
	h.publish(c, queue.NewActivityEvent(queue.VenueUpdated, id, v.Name, nil))
	return h.redirect(c, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("Venue %s was successfully updated!", v.Name))
}

// Delete handles POST /venues/delete/:id. The venue's shows go with it.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	v, err := h.Venues.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		return h.fail(c, http.StatusInternalServerError,
			fmt.Sprintf("There was an error deleting venue with ID=%d.", id), err)
	}
	h.publish(c, queue.NewActivityEvent(queue.VenueDeleted, id, v.Name, nil))
	return h.redirect(c, "/", fmt.Sprintf("Venue %s was successfully removed.", v.Name))
}
