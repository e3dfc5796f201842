// Package handler contains the HTTP handlers of the booking directory. Each
// handler parses the request, calls its store and either renders a page or
// redirects with a flash message.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/middleware"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/session"
	"github.com/iliyamo/venue-booking/internal/view"
)

const publishTimeout = 3 * time.Second

// Base carries what every handler needs besides its store: the flash queue,
// the event publisher and a logger.
type Base struct {
	Flash  session.FlashStore
	Events EventPublisher
	Log    hclog.Logger
}

// NewBase panics if the flash store is nil. A nil publisher drops events and
// a nil logger discards output.
func NewBase(flash session.FlashStore, events EventPublisher, log hclog.Logger) Base {
	if flash == nil {
		panic("nil flash store passed to NewBase")
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return Base{Flash: flash, Events: events, Log: log}
}

// render pops the session's pending flashes and renders name inside the
// layout.
func (b *Base) render(c echo.Context, status int, name, title string, data any) error {
	var flashes []session.Flash
	if sid := middleware.SessionID(c); sid != "" {
		var err error
		if flashes, err = b.Flash.Pop(c.Request().Context(), sid); err != nil {
			b.Log.Warn("pop flashes", "error", err)
		}
	}
	return c.Render(status, name, view.Page{Title: title, Flashes: flashes, Data: data})
}

func (b *Base) flash(c echo.Context, level, msg string) {
	sid := middleware.SessionID(c)
	if sid == "" {
		return
	}
	if err := b.Flash.Add(c.Request().Context(), sid, session.Flash{Level: level, Message: msg}); err != nil {
		b.Log.Warn("add flash", "error", err)
	}
}

// redirect queues a success flash and answers 303 See Other.
func (b *Base) redirect(c echo.Context, to, msg string) error {
	if msg != "" {
		b.flash(c, session.LevelSuccess, msg)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

func (b *Base) notFound(c echo.Context) error {
	return b.errorPage(c, http.StatusNotFound, "The page you are looking for does not exist.")
}

// fail logs err, flashes msg and renders the error page with status.
func (b *Base) fail(c echo.Context, status int, msg string, err error) error {
	b.Log.Error(msg, "error", err, "path", c.Request().URL.Path)
	b.flash(c, session.LevelError, msg)
	return b.errorPage(c, status, http.StatusText(status))
}

func (b *Base) errorPage(c echo.Context, status int, msg string) error {
	return b.render(c, status, "error", http.StatusText(status), view.ErrorPage{Status: status, Message: msg})
}

// publish sends ev. Failures are logged and never reach the client.
func (b *Base) publish(c echo.Context, ev queue.ActivityEvent) {
	if b.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), publishTimeout)
	defer cancel()
	if err := b.Events.Publish(ctx, ev); err != nil {
		b.Log.Warn("publish activity event", "kind", ev.Kind, "entity_id", ev.EntityID, "error", err)
	}
}

// Home renders the landing page.
func (b *Base) Home(c echo.Context) error {
	return b.render(c, http.StatusOK, "home", "", nil)
}

// HTTPErrorHandler renders errors that escape the handlers, including
// unknown routes and recovered panics, as HTML pages.
func (b *Base) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := "Something went wrong on our side."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		msg = http.StatusText(status)
		if m, ok := he.Message.(string); ok && m != "" {
			msg = m
		}
	}
	if status == http.StatusNotFound {
		msg = "The page you are looking for does not exist."
	}
	if status >= http.StatusInternalServerError {
		b.Log.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	if rerr := b.errorPage(c, status, msg); rerr != nil {
		b.Log.Error("render error page", "error", rerr)
		_ = c.String(status, http.StatusText(status))
	}
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

func formList(c echo.Context, key string) []string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	return params[key]
}
