package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const VenuesColName = "venues"

// Venue is the validated payload for creating or fully replacing a venue.
type Venue struct {
	Name     string `bson:"name" json:"name" validate:"required,min=1"`
	Address  string `bson:"address" json:"address" validate:"required,min=1"`
	Capacity int    `bson:"capacity" json:"capacity" validate:"required,gte=1"`
}

type VenueDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Venue `bson:",inline"`
}

type VenueResponse struct {
	ID string `json:"_id"`
	Venue
}

func (d VenueDocument) AsResponse() VenueResponse {
	return VenueResponse{ID: d.ID.Hex(), Venue: d.Venue}
}

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error)
	ListVenues(ctx context.Context) ([]VenueDocument, error)
	GetVenueByID(ctx context.Context, id primitive.ObjectID) (*VenueDocument, error)
	UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
}
