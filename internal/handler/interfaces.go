package handler

import (
	"context"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
)

// VenueStore is the venue persistence used by VenueHandler.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	Detail(ctx context.Context, id uint64) (*model.VenueDetail, error)
	List(ctx context.Context) ([]model.Summary, error)
	ListGroupedByLocation(ctx context.Context) ([]model.VenueArea, error)
	Search(ctx context.Context, term string) (model.SearchResult, error)
	Update(ctx context.Context, id uint64, v *model.Venue) error
	Delete(ctx context.Context, id uint64) (*model.Venue, error)
}

// ArtistStore is the artist persistence used by ArtistHandler.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	Detail(ctx context.Context, id uint64) (*model.ArtistDetail, error)
	List(ctx context.Context) ([]model.Summary, error)
	Search(ctx context.Context, term string) (model.SearchResult, error)
	Update(ctx context.Context, id uint64, a *model.Artist) error
	Delete(ctx context.Context, id uint64) (*model.Artist, error)
}

// ShowStore is the show persistence used by ShowHandler.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	List(ctx context.Context) ([]model.ShowListing, error)
}

// EventPublisher delivers activity events after successful mutations.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ActivityEvent) error
}
