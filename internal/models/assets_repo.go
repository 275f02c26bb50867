package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) SaveAsset(ctx context.Context, kind AssetKind, ownerID, filename, contentType string, content []byte) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, kind.Collection)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %w", err)
	}

	doc := bson.M{
		kind.OwnerField: ownerID,
		"filename":      filename,
		"content_type":  contentType,
		"content":       content,
		"uploaded_at":   time.Now().UTC(),
	}
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting %s: %w", kind.Name, err)
	}
	return insertedID(res)
}

func (mdb *MongodbRepo) LatestAsset(ctx context.Context, kind AssetKind, ownerID string) (*AssetDocument, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, kind.Collection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	var asset AssetDocument
	err = col.FindOne(ctx, bson.M{kind.OwnerField: ownerID}, opts).Decode(&asset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding %s: %w", kind.Name, err)
	}
	return &asset, nil
}
