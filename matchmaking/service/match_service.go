// matchmaking/service/match_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/findrivals/go-backend/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateMatchPostInput carries the validated fields for a new match post.
type CreateMatchPostInput struct {
	TeamID     string
	Sport      models.Sport
	NumPlayers int
	TimePref   models.TimeSlot
	Note       *string
}

// MatchService encapsulates the business logic for the match-post feed.
type MatchService struct {
	postStore MatchPostStore
	teamStore TeamStore
}

// NewMatchService creates a new MatchService instance.
func NewMatchService(ps MatchPostStore, ts TeamStore) *MatchService {
	return &MatchService{
		postStore: ps,
		teamStore: ts,
	}
}

// CreatePost publishes a match post on behalf of an existing team. The team's
// location is copied onto the post so the feed entry stays self-contained.
func (s *MatchService) CreatePost(ctx context.Context, input CreateMatchPostInput) (*models.MatchPost, error) {
	team, err := s.teamStore.FindByTeamID(ctx, input.TeamID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("service failed to look up team %s for match post: %w", input.TeamID, err)
	}

	now := time.Now()
	post := &models.MatchPost{
		TeamID:       input.TeamID,
		Sport:        input.Sport,
		NumPlayers:   input.NumPlayers,
		TimePref:     input.TimePref,
		Note:         input.Note,
		LocationName: team.LocationName,
		Latitude:     team.Latitude,
		Longitude:    team.Longitude,
		CreatedAt:    &now,
	}

	if _, err := s.postStore.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("service failed to create match post: %w", err)
	}
	return post, nil
}

// Feed retrieves match posts newest-first, optionally restricted to one sport.
func (s *MatchService) Feed(ctx context.Context, sport models.Sport) ([]models.MatchPost, error) {
	posts, err := s.postStore.List(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("service failed to load match feed: %w", err)
	}
	return posts, nil
}
