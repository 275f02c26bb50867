package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DatabaseName is the MongoDB database holding every collection of this
// service.
const DatabaseName = "event_management_db"

// ListLimit caps how many documents a list operation returns in one response.
// There is no pagination beyond this cap.
const ListLimit = 100

// ErrNotFound reports that no document matched an id-scoped operation.
// Handlers map it to a 404.
var ErrNotFound = errors.New("document not found")

// MongodbRepo implements every repository interface of this package on top of
// a shared *mongo.Client. Document-level atomicity is delegated entirely to
// the store; the repo itself holds no state besides the client.
type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	col := mdb.mongodbClient.Database(dbName).Collection(colName)
	return col, nil
}

// insertedID extracts the store-assigned ObjectID from an insert result.
func insertedID(res *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
