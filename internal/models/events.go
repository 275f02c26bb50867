package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventsColName = "events"

// Event is the validated payload for creating or fully replacing an event.
// The date is free text and venue_id is an unchecked reference: events do not
// verify the venue exists.
type Event struct {
	Name         string `bson:"name" json:"name" validate:"required,min=1"`
	Description  string `bson:"description" json:"description" validate:"required,min=1"`
	Date         string `bson:"date" json:"date" validate:"required,min=1"`
	VenueID      string `bson:"venue_id" json:"venue_id" validate:"required,min=1"`
	MaxAttendees int    `bson:"max_attendees" json:"max_attendees" validate:"required,gte=1"`
}

// EventDocument is an event as stored, carrying its native identifier. It is
// never serialized to clients directly; use AsResponse.
type EventDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Event `bson:",inline"`
}

// EventResponse is the client-facing shape of a stored event: the identifier
// rendered as its hex string, every other field untouched.
type EventResponse struct {
	ID string `json:"_id"`
	Event
}

func (d EventDocument) AsResponse() EventResponse {
	return EventResponse{ID: d.ID.Hex(), Event: d.Event}
}

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (primitive.ObjectID, error)
	ListEvents(ctx context.Context) ([]EventDocument, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*EventDocument, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) error
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}
