package db

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	UserCollection     *mongo.Collection
	TripsCollection    *mongo.Collection
	PostsCollection    *mongo.Collection
	PrefsCollection    *mongo.Collection
	BookingsCollection *mongo.Collection
)

// Init dials MongoDB and binds the collection handles. Called once
// from main; tests never touch it.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "travelhub"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	database := client.Database(dbName)
	UserCollection = database.Collection("users")
	TripsCollection = database.Collection("trips")
	PostsCollection = database.Collection("posts")
	PrefsCollection = database.Collection("prefs")
	BookingsCollection = database.Collection("bookings")
	return nil
}

// Close disconnects the client; safe on a nil client.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
