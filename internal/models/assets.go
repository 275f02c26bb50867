package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetKind binds one binary-asset collection to the document field naming
// its owning entity. Owner ids are opaque strings, never checked against the
// owning collection.
type AssetKind struct {
	Name       string
	Collection string
	OwnerField string
}

var (
	EventPosterKind = AssetKind{Name: "event_poster", Collection: "event_posters", OwnerField: "event_id"}
	PromoVideoKind  = AssetKind{Name: "promo_video", Collection: "promo_videos", OwnerField: "event_id"}
	VenuePhotoKind  = AssetKind{Name: "venue_photo", Collection: "venue_photos", OwnerField: "venue_id"}
)

// AssetDocument is one stored upload: the raw bytes plus the metadata needed
// to serve them back. Uploads are an append-only log per owner; old records
// are never pruned.
type AssetDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Filename    string             `bson:"filename"`
	ContentType string             `bson:"content_type"`
	Content     []byte             `bson:"content"`
	UploadedAt  time.Time          `bson:"uploaded_at"`
}

type AssetsRepo interface {
	// SaveAsset inserts a new asset record stamped with the current UTC time.
	// It always creates a new document, never overwrites or deduplicates.
	SaveAsset(ctx context.Context, kind AssetKind, ownerID, filename, contentType string, content []byte) (primitive.ObjectID, error)
	// LatestAsset returns the owner's most recently uploaded record, or
	// ErrNotFound when the owner has none.
	LatestAsset(ctx context.Context, kind AssetKind, ownerID string) (*AssetDocument, error)
}
