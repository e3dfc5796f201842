package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterShows registers the /shows pages. Shows are never edited or
// deleted directly; they go away with their venue.
func RegisterShows(e *echo.Echo, h *handler.ShowHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/shows")
	g.GET("", h.List)
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create, submit(limit)...)
}
