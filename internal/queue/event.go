// Package queue defines the activity events exchanged over the message
// broker and the consumer that writes them to the activity log.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQueue is the durable queue activity events are published to.
const DefaultQueue = "booking.activity"

// Event kinds.
const (
	VenueCreated  = "venue.created"
	VenueUpdated  = "venue.updated"
	VenueDeleted  = "venue.deleted"
	ArtistCreated = "artist.created"
	ArtistUpdated = "artist.updated"
	ArtistDeleted = "artist.deleted"
	ShowCreated   = "show.created"
)

// ActivityEvent is published after a successful mutation. It carries enough
// to write a readable log line without querying the database.
type ActivityEvent struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	EntityID   uint64            `json:"entity_id"`
	Name       string            `json:"name,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewActivityEvent stamps an event with a fresh id and the current UTC time.
func NewActivityEvent(kind string, entityID uint64, name string, attrs map[string]string) ActivityEvent {
	return ActivityEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   entityID,
		Name:       name,
		Attrs:      attrs,
		OccurredAt: time.Now().UTC(),
	}
}
