package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/model"
)

func TestArtistDeleteRejectedWhileShowsExist(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT name FROM artists WHERE id = \? FOR UPDATE`).WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Guns N Petals"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM shows WHERE artist_id = \?`).WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
	mock.ExpectRollback()

	_, err := artists().Delete(context.Background(), 4)
	assert.ErrorIs(t, err, ErrArtistHasShows)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestArtistDeleteWithoutShows(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT name FROM artists WHERE id = \? FOR UPDATE`).WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("The Wild Sax Band"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM shows WHERE artist_id = \?`).WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM artists WHERE id = \?`).WithArgs(6).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	a, err := artists().Delete(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "The Wild Sax Band", a.Name)
}

func TestArtistDeleteNotFound(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT name FROM artists WHERE id = \? FOR UPDATE`).WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectRollback()

	_, err := artists().Delete(context.Background(), 6)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistCreateNormalizesGenres(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectExec(`INSERT INTO artists`).
		WithArgs("Matt Quevedo", "New York", "NY", "300-400-5000", `["Jazz"]`, "", "", "", false, "").
		WillReturnResult(sqlmock.NewResult(5, 1))

	a := &model.Artist{Name: " Matt Quevedo ", City: "New York", State: "NY", Phone: "300-400-5000",
		Genres: model.Genres{"Jazz", "", "Jazz"}}
	require.NoError(t, artists().Create(context.Background(), a))
	assert.Equal(t, uint64(5), a.ID)
	assert.Equal(t, "Matt Quevedo", a.Name)
}

func TestArtistSearchByName(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectQuery(`WHERE LOWER\(a.name\) LIKE \?`).WithArgs(sqlmock.AnyArg(), "%band%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).AddRow(6, "The Wild Sax Band", 3))

	res, err := artists().Search(context.Background(), "BAND")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, 3, res.Items[0].NumUpcomingShows)
}

func TestArtistUpdateNotFound(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT name FROM artists WHERE id = \? FOR UPDATE`).WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectRollback()

	err := artists().Update(context.Background(), 3, &model.Artist{Name: "A", City: "B", State: "C"})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistList(t *testing.T) {
	mock, _, artists, _, _ := newMock(t)
	mock.ExpectQuery(`SELECT id, name FROM artists`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Guns N Petals").AddRow(5, "Matt Quevedo"))

	list, err := artists().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
