// matchmaking/service/mocks_test.go
package service

import (
	"context"

	"github.com/findrivals/go-backend/shared/models"
	"github.com/stretchr/testify/mock"
)

type MockTeamStore struct {
	mock.Mock
}

func (m *MockTeamStore) Insert(ctx context.Context, team *models.Team) (string, error) {
	args := m.Called(ctx, team)
	return args.String(0), args.Error(1)
}

func (m *MockTeamStore) FindByTeamID(ctx context.Context, teamID string) (*models.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamStore) List(ctx context.Context, sport models.Sport) ([]models.Team, error) {
	args := m.Called(ctx, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockTeamStore) CountBySport(ctx context.Context, sport models.Sport) (int64, error) {
	args := m.Called(ctx, sport)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamStore) FindByAnyPlayer(ctx context.Context, players []string) (*models.Team, error) {
	args := m.Called(ctx, players)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamStore) DeleteByTeamID(ctx context.Context, teamID string) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

type MockMatchPostStore struct {
	mock.Mock
}

func (m *MockMatchPostStore) Insert(ctx context.Context, post *models.MatchPost) (string, error) {
	args := m.Called(ctx, post)
	return args.String(0), args.Error(1)
}

func (m *MockMatchPostStore) List(ctx context.Context, sport models.Sport) ([]models.MatchPost, error) {
	args := m.Called(ctx, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchPost), args.Error(1)
}

func (m *MockMatchPostStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Insert(ctx context.Context, msg *models.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockMessageStore) Conversation(ctx context.Context, teamA, teamB string) ([]models.Message, error) {
	args := m.Called(ctx, teamA, teamB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, stats *models.AdminStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}
