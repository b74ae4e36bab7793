package posts

import (
	"context"
	"errors"
	"time"

	"travelhub/apperrors"
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// rankWindow bounds how many recent posts are pulled as the candidate
// set for in-process ranking and viewer filtering.
const rankWindow = 500

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (m *MongoStore) Create(ctx context.Context, post models.Post) error {
	if _, err := m.coll.InsertOne(ctx, post); err != nil {
		return apperrors.ErrUnavailable
	}
	return nil
}

func (m *MongoStore) List(ctx context.Context, filter ListFilter) ([]models.Post, int64, error) {
	query := bson.M{"is_active": true}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.GroupID != "" {
		query["groupid"] = filter.GroupID
	}

	total, err := m.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, apperrors.ErrUnavailable
	}

	// a recent window is the candidate set; ranking happens in
	// process so the scoring function stays in one place for both
	// store flavours.
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(rankWindow)
	window, err := m.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	sortPosts(window, filter.Sort, time.Now().UTC())
	return window, total, nil
}

func (m *MongoStore) Get(ctx context.Context, postID string) (models.Post, error) {
	var post models.Post
	err := m.coll.FindOne(ctx, bson.M{"postid": postID}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, apperrors.ErrNotFound
	}
	if err != nil {
		return models.Post{}, apperrors.ErrUnavailable
	}
	return post, nil
}

func (m *MongoStore) Replace(ctx context.Context, post models.Post) error {
	res, err := m.coll.ReplaceOne(ctx, bson.M{"postid": post.PostID}, post)
	if err != nil {
		return apperrors.ErrUnavailable
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *MongoStore) ListByIDs(ctx context.Context, postIDs []string) ([]models.Post, error) {
	if len(postIDs) == 0 {
		return []models.Post{}, nil
	}
	query := bson.M{"postid": bson.M{"$in": postIDs}, "is_active": true}
	return m.find(ctx, query, options.Find())
}

func (m *MongoStore) ListByCommenter(ctx context.Context, userID string) ([]models.Post, error) {
	query := bson.M{
		"is_active": true,
		"$or": []bson.M{
			{"comments.userid": userID},
			{"comments.replies.userid": userID},
		},
	}
	return m.find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (m *MongoStore) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.ErrUnavailable
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, apperrors.ErrUnavailable
	}
	return posts, nil
}
