package trips

import (
	"context"
	"errors"

	"travelhub/apperrors"
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (m *MongoStore) Create(ctx context.Context, trip models.Trip) error {
	if _, err := m.coll.InsertOne(ctx, trip); err != nil {
		return apperrors.ErrUnavailable
	}
	return nil
}

func (m *MongoStore) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Trip, int64, error) {
	query := bson.M{"userid": ownerID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := m.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, apperrors.ErrUnavailable
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, apperrors.ErrUnavailable
	}
	defer cursor.Close(ctx)

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, 0, apperrors.ErrUnavailable
	}
	return trips, total, nil
}

func (m *MongoStore) Get(ctx context.Context, tripID string) (models.Trip, error) {
	var trip models.Trip
	err := m.coll.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Trip{}, apperrors.ErrNotFound
	}
	if err != nil {
		return models.Trip{}, apperrors.ErrUnavailable
	}
	return trip, nil
}

func (m *MongoStore) Replace(ctx context.Context, trip models.Trip) error {
	res, err := m.coll.ReplaceOne(ctx, bson.M{"tripid": trip.TripID}, trip)
	if err != nil {
		return apperrors.ErrUnavailable
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *MongoStore) Delete(ctx context.Context, tripID string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"tripid": tripID})
	if err != nil {
		return apperrors.ErrUnavailable
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
