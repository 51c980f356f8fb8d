// matchmaking/store/team_store.go
package store

import (
	"context"
	"fmt"

	"github.com/findrivals/go-backend/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TeamStore represents the MongoDB data store for registered teams.
type TeamStore struct {
	collection *mongo.Collection
}

// NewTeamStore creates a new TeamStore instance.
func NewTeamStore(collection *mongo.Collection) *TeamStore {
	return &TeamStore{
		collection: collection,
	}
}

// Insert stores a new team document and returns the generated ObjectID as a hex string.
func (ts *TeamStore) Insert(ctx context.Context, team *models.Team) (string, error) {
	res, err := ts.collection.InsertOne(ctx, team)
	if err != nil {
		return "", fmt.Errorf("failed to insert team %s: %w", team.TeamID, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T for team %s", res.InsertedID, team.TeamID)
	}
	team.ID = oid
	return oid.Hex(), nil
}

// FindByTeamID retrieves a team by its human-readable identifier (e.g. "CRK-104").
// Returns mongo.ErrNoDocuments if no such team exists.
func (ts *TeamStore) FindByTeamID(ctx context.Context, teamID string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"team_id": teamID}
	if err := ts.collection.FindOne(ctx, filter).Decode(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams, optionally restricted to one sport.
func (ts *TeamStore) List(ctx context.Context, sport models.Sport) ([]models.Team, error) {
	filter := bson.M{}
	if sport != "" {
		filter["sport"] = sport
	}

	cursor, err := ts.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}
	return teams, nil
}

// CountBySport counts the teams currently registered for a sport. This is the
// count query feeding the identifier allocator.
func (ts *TeamStore) CountBySport(ctx context.Context, sport models.Sport) (int64, error) {
	count, err := ts.collection.CountDocuments(ctx, bson.M{"sport": sport})
	if err != nil {
		return 0, fmt.Errorf("failed to count teams for sport %s: %w", sport, err)
	}
	return count, nil
}

// Count counts all registered teams.
func (ts *TeamStore) Count(ctx context.Context) (int64, error) {
	count, err := ts.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

// FindByAnyPlayer returns the first team containing any of the given player
// names, or mongo.ErrNoDocuments if none does.
func (ts *TeamStore) FindByAnyPlayer(ctx context.Context, players []string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"players": bson.M{"$in": players}}
	if err := ts.collection.FindOne(ctx, filter).Decode(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteByTeamID removes a team by its identifier. Returns true if a document
// was actually deleted.
func (ts *TeamStore) DeleteByTeamID(ctx context.Context, teamID string) (bool, error) {
	res, err := ts.collection.DeleteOne(ctx, bson.M{"team_id": teamID})
	if err != nil {
		return false, fmt.Errorf("failed to delete team %s: %w", teamID, err)
	}
	return res.DeletedCount == 1, nil
}
