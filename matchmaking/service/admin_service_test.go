// matchmaking/service/admin_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/findrivals/go-backend/shared/models"
	redisu "github.com/findrivals/go-backend/shared/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Stats_CacheHit(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	mockCache := new(MockStatsCache)
	svc := NewAdminService(mockTeams, mockPosts, mockCache)

	cached := &models.AdminStats{TotalTeams: 12, TotalMatchPosts: 4}
	mockCache.On("Get", mock.Anything).Return(cached, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, stats)
	mockTeams.AssertNotCalled(t, "Count", mock.Anything)
	mockPosts.AssertNotCalled(t, "Count", mock.Anything)
}

func TestAdminService_Stats_CacheMissCountsAndBackfills(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	mockCache := new(MockStatsCache)
	svc := NewAdminService(mockTeams, mockPosts, mockCache)

	mockCache.On("Get", mock.Anything).Return(nil, redisu.ErrRedisKeyNotFound)
	mockTeams.On("Count", mock.Anything).Return(int64(7), nil)
	mockPosts.On("Count", mock.Anything).Return(int64(3), nil)
	mockCache.On("Set", mock.Anything, &models.AdminStats{TotalTeams: 7, TotalMatchPosts: 3}).
		Return(nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalTeams)
	assert.Equal(t, int64(3), stats.TotalMatchPosts)
	mockCache.AssertExpectations(t)
}

func TestAdminService_Stats_CacheErrorFallsOpen(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	mockCache := new(MockStatsCache)
	svc := NewAdminService(mockTeams, mockPosts, mockCache)

	mockCache.On("Get", mock.Anything).Return(nil, errors.New("redis down"))
	mockTeams.On("Count", mock.Anything).Return(int64(1), nil)
	mockPosts.On("Count", mock.Anything).Return(int64(0), nil)
	mockCache.On("Set", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalTeams)
}

func TestAdminService_Stats_NoCache(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	svc := NewAdminService(mockTeams, mockPosts, nil)

	mockTeams.On("Count", mock.Anything).Return(int64(2), nil)
	mockPosts.On("Count", mock.Anything).Return(int64(5), nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalMatchPosts)
}

func TestAdminService_Stats_StorageFailurePropagates(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	svc := NewAdminService(mockTeams, mockPosts, nil)

	mockTeams.On("Count", mock.Anything).Return(int64(0), errors.New("storage unavailable"))

	_, err := svc.Stats(context.Background())

	assert.Error(t, err)
}
