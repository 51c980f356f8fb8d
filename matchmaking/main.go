// matchmaking/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	matchmakingapi "github.com/findrivals/go-backend/matchmaking/api"
	"github.com/findrivals/go-backend/matchmaking/service"
	"github.com/findrivals/go-backend/matchmaking/store"
	"github.com/findrivals/go-backend/shared/api"
	"github.com/findrivals/go-backend/shared/config"
	mongodbu "github.com/findrivals/go-backend/shared/mongodb"
	redisu "github.com/findrivals/go-backend/shared/redis"
	"github.com/findrivals/go-backend/shared/registry"
)

func main() {
	// --- 1. Load Configuration ---
	cfg, err := config.LoadMatchmakingServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Fatalf("Failed to disconnect from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB.")
	}()

	// --- 3. Connect to Redis ---
	redisClient, err := redisu.NewRedisClusterClient(cfg.RedisAddrs, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis Cluster: %v", err)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Fatalf("Error closing Redis client: %v", err)
		}
		log.Println("Redis client closed.")
	}()

	// --- 4. Initialize Data Stores (passing MongoDB collections) ---
	teamStore := store.NewTeamStore(mongoClient.Collection(cfg.MongoDBTeamCollection))
	matchPostStore := store.NewMatchPostStore(mongoClient.Collection(cfg.MongoDBMatchPostCollection))
	messageStore := store.NewMessageStore(mongoClient.Collection(cfg.MongoDBMessageCollection))
	statsCache := store.NewStatsCache(redisClient, cfg.StatsCacheTTL)

	// --- 5. Initialize Business Logic Services (passing stores) ---
	teamService := service.NewTeamService(teamStore)
	matchService := service.NewMatchService(matchPostStore, teamStore)
	chatService := service.NewChatService(messageStore, teamStore)
	adminService := service.NewAdminService(teamStore, matchPostStore, statsCache)

	// --- 6. Initialize API Handlers (passing business logic services) ---
	handlers := matchmakingapi.NewMatchmakingAPIHandlers(teamService, matchService, chatService, adminService, mongoClient)
	handlers.DefaultRadiusKm = cfg.DefaultRadiusKm

	// --- 7. Initialize and Start Service Registrar ---
	registrar := registry.NewServiceRegistrar(redisClient, "matchmaking-service", &cfg.CommonConfig)
	go registrar.Start()
	defer registrar.Stop()

	// --- 8. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	handlers.RegisterRoutes(baseServer.Router)

	// --- 9. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 10. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Server gracefully stopped.")
}
