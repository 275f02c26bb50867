package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AttendeesColName = "attendees"

// Attendee is the validated payload for creating or fully replacing an
// attendee. Phone is optional and stored as an explicit null when absent.
type Attendee struct {
	Name  string  `bson:"name" json:"name" validate:"required,min=1"`
	Email string  `bson:"email" json:"email" validate:"required,email"`
	Phone *string `bson:"phone" json:"phone"`
}

type AttendeeDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Attendee `bson:",inline"`
}

type AttendeeResponse struct {
	ID string `json:"_id"`
	Attendee
}

func (d AttendeeDocument) AsResponse() AttendeeResponse {
	return AttendeeResponse{ID: d.ID.Hex(), Attendee: d.Attendee}
}

type AttendeesRepo interface {
	CreateAttendee(ctx context.Context, attendee *Attendee) (primitive.ObjectID, error)
	ListAttendees(ctx context.Context) ([]AttendeeDocument, error)
	GetAttendeeByID(ctx context.Context, id primitive.ObjectID) (*AttendeeDocument, error)
	UpdateAttendee(ctx context.Context, id primitive.ObjectID, attendee *Attendee) error
	DeleteAttendee(ctx context.Context, id primitive.ObjectID) error
}
