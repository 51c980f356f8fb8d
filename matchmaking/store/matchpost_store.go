// matchmaking/store/matchpost_store.go
package store

import (
	"context"
	"fmt"

	"github.com/findrivals/go-backend/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MatchPostStore represents the MongoDB data store for match posts.
type MatchPostStore struct {
	collection *mongo.Collection
}

// NewMatchPostStore creates a new MatchPostStore instance.
func NewMatchPostStore(collection *mongo.Collection) *MatchPostStore {
	return &MatchPostStore{
		collection: collection,
	}
}

// Insert stores a new match post and returns the generated ObjectID as a hex string.
func (ms *MatchPostStore) Insert(ctx context.Context, post *models.MatchPost) (string, error) {
	res, err := ms.collection.InsertOne(ctx, post)
	if err != nil {
		return "", fmt.Errorf("failed to insert match post for team %s: %w", post.TeamID, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T for match post", res.InsertedID)
	}
	post.ID = oid
	return oid.Hex(), nil
}

// List retrieves match posts newest-first, optionally restricted to one sport.
func (ms *MatchPostStore) List(ctx context.Context, sport models.Sport) ([]models.MatchPost, error) {
	filter := bson.M{}
	if sport != "" {
		filter["sport"] = sport
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ms.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find match posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.MatchPost
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode match posts: %w", err)
	}
	return posts, nil
}

// Count counts all match posts.
func (ms *MatchPostStore) Count(ctx context.Context) (int64, error) {
	count, err := ms.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count match posts: %w", err)
	}
	return count, nil
}
