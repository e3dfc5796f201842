package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/session"
)

func sidEcho(cfg SessionConfig) *echo.Echo {
	e := echo.New()
	e.Use(Session(cfg))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, SessionID(c)) })
	return e
}

func TestSessionIssuesAndReusesCookie(t *testing.T) {
	e := sidEcho(SessionConfig{Secret: "k", TTL: time.Hour})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	sid := rec.Body.String()
	require.NotEmpty(t, sid)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, sid, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionReplacesForgedCookie(t *testing.T) {
	e := sidEcho(SessionConfig{Secret: "k"})
	forged, err := session.NewToken("other", session.NewID(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: forged.Value})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.NotEqual(t, forged.SID, rec.Body.String())
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestSessionRequiresSecret(t *testing.T) {
	assert.Panics(t, func() { Session(SessionConfig{}) })
}

func limitedEcho(t *testing.T, cfg config.RateLimitConfig) (*echo.Echo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	e := echo.New()
	e.POST("/venues/create", func(c echo.Context) error { return c.NoContent(http.StatusSeeOther) },
		NewTokenBucket(cfg, rdb, nil))
	return e, mr
}

func TestTokenBucketBlocksAfterCapacity(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 2, RefillTokens: 1,
		RefillInterval: time.Hour, TTL: time.Hour, KeyStrategy: "ip_route", Prefix: "rl"}
	e, mr := limitedEcho(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/venues/create", nil))
		codes = append(codes, rec.Code)
		if i == 2 {
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{http.StatusSeeOther, http.StatusSeeOther, http.StatusTooManyRequests}, codes)
	assert.True(t, mr.Exists("rl:ip:192.0.2.1:route:POST /venues/create"))
}

func TestTokenBucketDisabledWithoutRedis(t *testing.T) {
	e := echo.New()
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil, nil)
	e.POST("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
