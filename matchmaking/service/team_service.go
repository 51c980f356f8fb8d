// matchmaking/service/team_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/findrivals/go-backend/matchmaking/geo"
	"github.com/findrivals/go-backend/matchmaking/teamid"
	"github.com/findrivals/go-backend/shared/models"
	"go.mongodb.org/mongo-driver/mongo" // For checking specific MongoDB errors
)

// Custom Errors for clear communication to API layer
var (
	ErrTeamNotFound           = fmt.Errorf("team not found")
	ErrPlayerConflict         = fmt.Errorf("one or more players already belong to another team")
	ErrRegistrationIncomplete = fmt.Errorf("teams must complete registration to chat")
)

// RegisterTeamInput carries the validated fields for a new team registration.
type RegisterTeamInput struct {
	TeamName          string
	Sport             models.Sport
	Players           []string
	LocationName      *string
	Latitude          *float64
	Longitude         *float64
	ContactPreference models.ContactPref
	ContactNumber     string
	Availability      []models.TimeSlot
}

// NearbyQuery is an ephemeral proximity query. A nil Center disables distance
// filtering entirely.
type NearbyQuery struct {
	Sport    models.Sport
	Center   *geo.Point
	RadiusKm float64
}

// TeamService encapsulates the business logic for team registration and discovery.
type TeamService struct {
	teamStore TeamStore
	allocator *teamid.Allocator
}

// NewTeamService creates a new TeamService instance. The team store doubles as
// the sport counter feeding the identifier allocator.
func NewTeamService(ts TeamStore) *TeamService {
	return &TeamService{
		teamStore: ts,
		allocator: teamid.NewAllocator(ts),
	}
}

// Register mints a team identifier and persists the new team. The allocator is
// invoked exactly once per creation; a count-query outage degrades to a
// best-effort identifier rather than failing the registration.
func (s *TeamService) Register(ctx context.Context, input RegisterTeamInput) (*models.Team, error) {
	// Soft uniqueness check: a player may only belong to one team.
	if len(input.Players) > 0 {
		_, err := s.teamStore.FindByAnyPlayer(ctx, input.Players)
		if err == nil {
			return nil, ErrPlayerConflict
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service failed to check player membership: %w", err)
		}
	}

	// A one-sided coordinate pair carries no usable location.
	lat, lon := input.Latitude, input.Longitude
	if (lat == nil) != (lon == nil) {
		lat, lon = nil, nil
	}

	now := time.Now()
	team := &models.Team{
		TeamName:          input.TeamName,
		Sport:             input.Sport,
		Players:           input.Players,
		LocationName:      input.LocationName,
		Latitude:          lat,
		Longitude:         lon,
		ContactPreference: input.ContactPreference,
		ContactNumber:     input.ContactNumber,
		Availability:      input.Availability,
		TeamID:            s.allocator.Allocate(ctx, input.Sport),
		CreatedAt:         &now,
	}
	if team.Players == nil {
		team.Players = []string{}
	}
	if team.Availability == nil {
		team.Availability = []models.TimeSlot{}
	}

	if _, err := s.teamStore.Insert(ctx, team); err != nil {
		return nil, fmt.Errorf("service failed to register team: %w", err)
	}
	return team, nil
}

// List retrieves all teams, optionally restricted to one sport.
func (s *TeamService) List(ctx context.Context, sport models.Sport) ([]models.Team, error) {
	teams, err := s.teamStore.List(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("service failed to list teams: %w", err)
	}
	return teams, nil
}

// Get retrieves a single team by its identifier.
func (s *TeamService) Get(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamStore.FindByTeamID(ctx, teamID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("service failed to get team %s: %w", teamID, err)
	}
	return team, nil
}

// Nearby loads the candidate teams and ranks them by proximity to the query
// center. A storage failure here is terminal for the request; per-team
// computation anomalies are isolated inside the engine.
func (s *TeamService) Nearby(ctx context.Context, query NearbyQuery) ([]geo.RankedTeam, error) {
	teams, err := s.teamStore.List(ctx, query.Sport)
	if err != nil {
		return nil, fmt.Errorf("service failed to load teams for proximity query: %w", err)
	}
	return geo.RankByProximity(teams, query.Center, query.RadiusKm), nil
}

// Delete removes a team by its identifier. Returns whether a team was deleted.
func (s *TeamService) Delete(ctx context.Context, teamID string) (bool, error) {
	deleted, err := s.teamStore.DeleteByTeamID(ctx, teamID)
	if err != nil {
		return false, fmt.Errorf("service failed to delete team %s: %w", teamID, err)
	}
	return deleted, nil
}
