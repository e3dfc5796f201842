package middleware

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/session"
)

// SessionConfig configures the session cookie middleware.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Secure bool
	Logger hclog.Logger
}

// Session returns a middleware that reads the signed session cookie and
// stores its session id in the context under session.ContextKey. A missing
// or invalid cookie is replaced by a freshly issued one.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	if cfg.Secret == "" {
		panic("middleware: session secret must not be empty")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	log := cfg.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(session.CookieName); err == nil {
				if sid, err := session.ParseToken(cfg.Secret, ck.Value); err == nil {
					c.Set(session.ContextKey, sid)
					return next(c)
				}
			}
			tok, err := session.NewToken(cfg.Secret, session.NewID(), cfg.TTL)
			if err != nil {
				log.Error("issue session token", "error", err)
				return next(c)
			}
			c.SetCookie(&http.Cookie{
				Name:     session.CookieName,
				Value:    tok.Value,
				Path:     "/",
				Expires:  tok.Exp,
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(session.ContextKey, tok.SID)
			return next(c)
		}
	}
}

// SessionID returns the session id stored by Session, or "" when the
// middleware did not run.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(session.ContextKey).(string)
	return sid
}
