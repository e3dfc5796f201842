package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
)

type venueStore struct{ mock.Mock }

func (m *venueStore) Create(ctx context.Context, v *model.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *venueStore) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Venue)
	return v, args.Error(1)
}

func (m *venueStore) Detail(ctx context.Context, id uint64) (*model.VenueDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.VenueDetail)
	return d, args.Error(1)
}

func (m *venueStore) List(ctx context.Context) ([]model.Summary, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]model.Summary)
	return l, args.Error(1)
}

func (m *venueStore) ListGroupedByLocation(ctx context.Context) ([]model.VenueArea, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]model.VenueArea)
	return l, args.Error(1)
}

func (m *venueStore) Search(ctx context.Context, term string) (model.SearchResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(model.SearchResult), args.Error(1)
}

func (m *venueStore) Update(ctx context.Context, id uint64, v *model.Venue) error {
	return m.Called(ctx, id, v).Error(0)
}

func (m *venueStore) Delete(ctx context.Context, id uint64) (*model.Venue, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Venue)
	return v, args.Error(1)
}

type artistStore struct{ mock.Mock }

func (m *artistStore) Create(ctx context.Context, a *model.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *artistStore) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Artist)
	return a, args.Error(1)
}

func (m *artistStore) Detail(ctx context.Context, id uint64) (*model.ArtistDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.ArtistDetail)
	return d, args.Error(1)
}

func (m *artistStore) List(ctx context.Context) ([]model.Summary, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]model.Summary)
	return l, args.Error(1)
}

func (m *artistStore) Search(ctx context.Context, term string) (model.SearchResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(model.SearchResult), args.Error(1)
}

func (m *artistStore) Update(ctx context.Context, id uint64, a *model.Artist) error {
	return m.Called(ctx, id, a).Error(0)
}

func (m *artistStore) Delete(ctx context.Context, id uint64) (*model.Artist, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Artist)
	return a, args.Error(1)
}

type showStore struct{ mock.Mock }

func (m *showStore) Create(ctx context.Context, s *model.Show) error {
	return m.Called(ctx, s).Error(0)
}

func (m *showStore) List(ctx context.Context) ([]model.ShowListing, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]model.ShowListing)
	return l, args.Error(1)
}

type publisher struct{ mock.Mock }

func (m *publisher) Publish(ctx context.Context, ev queue.ActivityEvent) error {
	return m.Called(ctx, ev).Error(0)
}

func kind(k string) interface{} {
	return mock.MatchedBy(func(ev queue.ActivityEvent) bool { return ev.Kind == k })
}
