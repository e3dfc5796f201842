package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterVenues registers the /venues pages. Static segments such as
// /venues/create take precedence over /venues/:id.
func RegisterVenues(e *echo.Echo, h *handler.VenueHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/venues")
	mw := submit(limit)

	g.GET("", h.List)
	g.POST("/search", h.Search, mw...)
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create, mw...)
	g.GET("/:id", h.Show)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Edit, mw...)
	// Deletes the venue together with its shows.
	g.POST("/delete/:id", h.Delete, mw...)
}
