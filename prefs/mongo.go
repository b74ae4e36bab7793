package prefs

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

func (m *MongoStore) Get(ctx context.Context, userID string) (models.Prefs, error) {
	var p models.Prefs
	err := m.coll.FindOne(ctx, bson.M{"userid": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return emptyPrefs(userID), nil
	}
	if err != nil {
		return models.Prefs{}, apperrors.ErrUnavailable
	}
	return p, nil
}

func (m *MongoStore) Save(ctx context.Context, p models.Prefs) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.coll.ReplaceOne(ctx, bson.M{"userid": p.UserID}, p, opts); err != nil {
		return apperrors.ErrUnavailable
	}
	return nil
}
