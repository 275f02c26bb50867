package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, VenuesColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.InsertOne(ctx, venue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting venue: %w", err)
	}
	return insertedID(res)
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context) ([]VenueDocument, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetLimit(ListLimit)
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []VenueDocument
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("error decoding venues: %w", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*VenueDocument, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var venue VenueDocument
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding venue: %w", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, VenuesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": venue})
	if err != nil {
		return fmt.Errorf("error updating venue: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, VenuesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting venue: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
