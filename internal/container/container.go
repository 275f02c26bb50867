package container

import (
	"log/slog"

	"eventdesk/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client

	Events    models.EventsRepo
	Attendees models.AttendeesRepo
	Venues    models.VenuesRepo
	Bookings  models.BookingsRepo
	Assets    models.AssetsRepo
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	return &Container{
		Logger:        logger,
		MongoDBClient: mongoDBClient,
		Events:        repo,
		Attendees:     repo,
		Venues:        repo,
		Bookings:      repo,
		Assets:        repo,
	}
}
