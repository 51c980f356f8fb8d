// matchmaking/service/stores.go
package service

import (
	"context"

	"github.com/findrivals/go-backend/shared/models"
)

// Store interfaces the services depend on. The concrete implementations live
// in matchmaking/store; tests substitute mocks.

// TeamStore is the document-store surface for registered teams.
type TeamStore interface {
	Insert(ctx context.Context, team *models.Team) (string, error)
	FindByTeamID(ctx context.Context, teamID string) (*models.Team, error)
	List(ctx context.Context, sport models.Sport) ([]models.Team, error)
	CountBySport(ctx context.Context, sport models.Sport) (int64, error)
	Count(ctx context.Context) (int64, error)
	FindByAnyPlayer(ctx context.Context, players []string) (*models.Team, error)
	DeleteByTeamID(ctx context.Context, teamID string) (bool, error)
}

// MatchPostStore is the document-store surface for match posts.
type MatchPostStore interface {
	Insert(ctx context.Context, post *models.MatchPost) (string, error)
	List(ctx context.Context, sport models.Sport) ([]models.MatchPost, error)
	Count(ctx context.Context) (int64, error)
}

// MessageStore is the document-store surface for chat messages.
type MessageStore interface {
	Insert(ctx context.Context, msg *models.Message) (string, error)
	Conversation(ctx context.Context, teamA, teamB string) ([]models.Message, error)
}

// StatsCache is the cache surface for the admin stats snapshot.
type StatsCache interface {
	Get(ctx context.Context) (*models.AdminStats, error)
	Set(ctx context.Context, stats *models.AdminStats) error
}
