package commands

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/session"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "activity"} {
		assert.True(t, names[want], want)
	}
}

func TestNewServerWiresRoutes(t *testing.T) {
	t.Setenv("EVENTS_ENABLED", "false")
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	mock.ExpectQuery(`SELECT id, name FROM artists`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Guns N Petals"))

	e := newServer(config.Config{Env: "test", SessionSecret: "k"}, hclog.NewNullLogger(), db, rdb,
		session.NewRedisFlashStore(rdb, 0))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artists", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
	assert.NotEmpty(t, rec.Result().Cookies())
	assert.NoError(t, mock.ExpectationsWereMet())
}
