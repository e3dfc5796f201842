package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterRoutes registers the landing page and the health check.
func RegisterRoutes(e *echo.Echo, base *handler.Base) {
	e.GET("/", base.Home)
	// Used by load balancers and monitoring systems.
	e.GET("/healthz", handler.Health)
}

// Register wires every page of the directory. limit guards form
// submissions; pass nil to leave them unlimited.
func Register(e *echo.Echo, base *handler.Base, v *handler.VenueHandler, a *handler.ArtistHandler,
	s *handler.ShowHandler, limit echo.MiddlewareFunc) {
	RegisterRoutes(e, base)
	RegisterVenues(e, v, limit)
	RegisterArtists(e, a, limit)
	RegisterShows(e, s, limit)
}

func submit(limit echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if limit == nil {
		return nil
	}
	return []echo.MiddlewareFunc{limit}
}
