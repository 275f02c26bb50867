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

func (mdb *MongodbRepo) CreateAttendee(ctx context.Context, attendee *Attendee) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, AttendeesColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.InsertOne(ctx, attendee)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting attendee: %w", err)
	}
	return insertedID(res)
}

func (mdb *MongodbRepo) ListAttendees(ctx context.Context) ([]AttendeeDocument, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, AttendeesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetLimit(ListLimit)
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding attendees: %w", err)
	}
	defer cursor.Close(ctx)

	var attendees []AttendeeDocument
	if err := cursor.All(ctx, &attendees); err != nil {
		return nil, fmt.Errorf("error decoding attendees: %w", err)
	}
	return attendees, nil
}

func (mdb *MongodbRepo) GetAttendeeByID(ctx context.Context, id primitive.ObjectID) (*AttendeeDocument, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, AttendeesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var attendee AttendeeDocument
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&attendee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding attendee: %w", err)
	}
	return &attendee, nil
}

func (mdb *MongodbRepo) UpdateAttendee(ctx context.Context, id primitive.ObjectID, attendee *Attendee) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, AttendeesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": attendee})
	if err != nil {
		return fmt.Errorf("error updating attendee: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) DeleteAttendee(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, AttendeesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting attendee: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
