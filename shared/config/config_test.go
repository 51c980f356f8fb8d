// shared/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMatchmakingServiceConfig_Defaults(t *testing.T) {
	cfg, err := LoadMatchmakingServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, "findrivals", cfg.MongoDBDatabase)
	assert.Equal(t, "team", cfg.MongoDBTeamCollection)
	assert.Equal(t, "matchpost", cfg.MongoDBMatchPostCollection)
	assert.Equal(t, "message", cfg.MongoDBMessageCollection)
	assert.Equal(t, 10.0, cfg.DefaultRadiusKm)
	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, []string{"redis-cluster:6379"}, cfg.RedisAddrs)
}

func TestLoadMatchmakingServiceConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MATCHMAKING_SERVICE_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("MONGODB_DATABASE", "findrivals_test")
	t.Setenv("REDIS_ADDRS", "redis-a:6379, redis-b:6379")
	t.Setenv("NEARBY_DEFAULT_RADIUS_KM", "25")
	t.Setenv("ADMIN_STATS_CACHE_TTL", "1m")

	cfg, err := LoadMatchmakingServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "findrivals_test", cfg.MongoDBDatabase)
	assert.Equal(t, []string{"redis-a:6379", "redis-b:6379"}, cfg.RedisAddrs)
	assert.Equal(t, 25.0, cfg.DefaultRadiusKm)
	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
}

func TestLoadMatchmakingServiceConfig_InvalidDuration(t *testing.T) {
	t.Setenv("ADMIN_STATS_CACHE_TTL", "soon")

	_, err := LoadMatchmakingServiceConfig()
	assert.Error(t, err)
}
