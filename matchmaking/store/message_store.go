// matchmaking/store/message_store.go
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

// MessageStore represents the MongoDB data store for chat messages.
type MessageStore struct {
	collection *mongo.Collection
}

// NewMessageStore creates a new MessageStore instance.
func NewMessageStore(collection *mongo.Collection) *MessageStore {
	return &MessageStore{
		collection: collection,
	}
}

// Insert stores a new message and returns the generated ObjectID as a hex string.
func (ms *MessageStore) Insert(ctx context.Context, msg *models.Message) (string, error) {
	res, err := ms.collection.InsertOne(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("failed to insert message from %s to %s: %w", msg.FromTeamID, msg.ToTeamID, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T for message", res.InsertedID)
	}
	msg.ID = oid
	return oid.Hex(), nil
}

// Conversation retrieves all messages exchanged between two teams in either
// direction, oldest first.
func (ms *MessageStore) Conversation(ctx context.Context, teamA, teamB string) ([]models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from_team_id": teamA, "to_team_id": teamB},
		bson.M{"from_team_id": teamB, "to_team_id": teamA},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := ms.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation between %s and %s: %w", teamA, teamB, err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err = cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode conversation between %s and %s: %w", teamA, teamB, err)
	}
	return msgs, nil
}
