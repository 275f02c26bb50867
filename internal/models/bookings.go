package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookingsColName = "bookings"

// Booking is the validated payload for creating or fully replacing a booking.
// event_id and attendee_id are unchecked references: no existence check, no
// quantity-vs-capacity check, no duplicate-booking prevention.
type Booking struct {
	EventID    string `bson:"event_id" json:"event_id" validate:"required,min=1"`
	AttendeeID string `bson:"attendee_id" json:"attendee_id" validate:"required,min=1"`
	TicketType string `bson:"ticket_type" json:"ticket_type" validate:"required,min=1"`
	Quantity   int    `bson:"quantity" json:"quantity" validate:"required,gte=1"`
}

type BookingDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Booking `bson:",inline"`
}

type BookingResponse struct {
	ID string `json:"_id"`
	Booking
}

func (d BookingDocument) AsResponse() BookingResponse {
	return BookingResponse{ID: d.ID.Hex(), Booking: d.Booking}
}

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (primitive.ObjectID, error)
	ListBookings(ctx context.Context) ([]BookingDocument, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*BookingDocument, error)
	UpdateBooking(ctx context.Context, id primitive.ObjectID, booking *Booking) error
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}
