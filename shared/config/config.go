// shared/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// CommonConfig holds configuration fields that are shared across service instances.
type CommonConfig struct {
	RedisAddrs              []string      // Redis server addresses (e.g., "redis-cluster:6379")
	RedisPassword           string        // Redis password for authentication
	HeartbeatInterval       time.Duration // How often to send a heartbeat to the registry (e.g., 5s)
	HeartbeatTTL            time.Duration // How long an instance is considered alive without a heartbeat (e.g., 15s)
	RegistryCleanupInterval time.Duration // How often the registry actively cleans stale entries (e.g., 30s)
	ServiceIP               string        // The IP address this service advertises for registration (Kubernetes Pod IP)
	ServicePort             int           // The port this service listens on, used for registration
}

// MatchmakingServiceConfig holds configuration specific to the matchmaking service.
type MatchmakingServiceConfig struct {
	CommonConfig                             // Embed CommonConfig
	ListenAddr                 string        // Address for the HTTP server to listen on (e.g., ":8080")
	MongoDBConnStr             string        // MongoDB connection string
	MongoDBDatabase            string        // MongoDB database name (e.g., "findrivals")
	MongoDBTeamCollection      string        // MongoDB collection for registered teams
	MongoDBMatchPostCollection string        // MongoDB collection for match posts
	MongoDBMessageCollection   string        // MongoDB collection for chat messages
	DefaultRadiusKm            float64       // Radius applied to nearby queries when the caller omits one
	StatsCacheTTL              time.Duration // How long the admin stats snapshot stays fresh in Redis
}

// LoadCommonConfig loads common configuration from environment variables.
func LoadCommonConfig() (CommonConfig, error) {
	cfg := CommonConfig{}
	var err error

	redisAddrsStr := os.Getenv("REDIS_ADDRS")
	if redisAddrsStr == "" {
		cfg.RedisAddrs = []string{"redis-cluster:6379"}
	} else {
		for _, addr := range strings.Split(redisAddrsStr, ",") {
			cfg.RedisAddrs = append(cfg.RedisAddrs, strings.TrimSpace(addr))
		}
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.HeartbeatInterval, err = getDuration("SERVICE_HEARTBEAT_INTERVAL", 5*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.HeartbeatTTL, err = getDuration("SERVICE_HEARTBEAT_TTL", 15*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.RegistryCleanupInterval, err = getDuration("SERVICE_REGISTRY_CLEANUP_INTERVAL", 30*time.Second)
	if err != nil {
		return cfg, err
	}

	// Service IP (for registration, from Kubernetes Pod IP)
	cfg.ServiceIP = os.Getenv("POD_IP")
	if cfg.ServiceIP == "" {
		// Fallback for local development outside K8s or if not injected
		cfg.ServiceIP = "0.0.0.0"
		fmt.Printf("WARNING: POD_IP not set, defaulting ServiceIP to %s\n", cfg.ServiceIP)
	}

	return cfg, nil
}

// LoadMatchmakingServiceConfig loads configuration for the matchmaking service.
func LoadMatchmakingServiceConfig() (*MatchmakingServiceConfig, error) {
	common, err := LoadCommonConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load common config for matchmaking-service: %w", err)
	}

	cfg := &MatchmakingServiceConfig{
		CommonConfig:               common,
		ListenAddr:                 os.Getenv("MATCHMAKING_SERVICE_LISTEN_ADDR"),
		MongoDBConnStr:             os.Getenv("MONGODB_CONN_STR"),
		MongoDBDatabase:            os.Getenv("MONGODB_DATABASE"),
		MongoDBTeamCollection:      os.Getenv("MONGODB_TEAM_COLLECTION"),
		MongoDBMatchPostCollection: os.Getenv("MONGODB_MATCHPOST_COLLECTION"),
		MongoDBMessageCollection:   os.Getenv("MONGODB_MESSAGE_COLLECTION"),
	}

	// Apply defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MongoDBConnStr == "" {
		cfg.MongoDBConnStr = "mongodb://mongodb-service:27017"
	}
	if cfg.MongoDBDatabase == "" {
		cfg.MongoDBDatabase = "findrivals"
	}
	if cfg.MongoDBTeamCollection == "" {
		cfg.MongoDBTeamCollection = "team"
	}
	if cfg.MongoDBMatchPostCollection == "" {
		cfg.MongoDBMatchPostCollection = "matchpost"
	}
	if cfg.MongoDBMessageCollection == "" {
		cfg.MongoDBMessageCollection = "message"
	}

	cfg.DefaultRadiusKm, err = getFloat("NEARBY_DEFAULT_RADIUS_KM", 10)
	if err != nil {
		return nil, err
	}
	cfg.StatsCacheTTL, err = getDuration("ADMIN_STATS_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	// Extract ServicePort from ListenAddr
	cfg.ServicePort, err = extractPort(cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to extract port from MATCHMAKING_SERVICE_LISTEN_ADDR '%s': %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// Helper function to parse float from environment variable
func getFloat(envKey string, defaultVal float64) (float64, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s: %w", envKey, err)
	}
	return f, nil
}

// extractPort extracts the numeric port from a listen address (e.g., ":8080" -> 8080, "0.0.0.0:8080" -> 8080)
func extractPort(listenAddr string) (int, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		// If SplitHostPort fails, check if ListenAddr is just a port (e.g., ":8080")
		if strings.HasPrefix(listenAddr, ":") {
			portStr = strings.TrimPrefix(listenAddr, ":")
		} else {
			return 0, fmt.Errorf("invalid ListenAddr format for port extraction: %w", err)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number '%s': %w", portStr, err)
	}
	return port, nil
}
