package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterArtists registers the /artists pages.
func RegisterArtists(e *echo.Echo, h *handler.ArtistHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/artists")
	mw := submit(limit)

	g.GET("", h.List)
	g.POST("/search", h.Search, mw...)
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create, mw...)
	g.GET("/:id", h.Show)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Edit, mw...)
	g.POST("/delete/:id", h.Delete, mw...)
}
