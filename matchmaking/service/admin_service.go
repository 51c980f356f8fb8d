// matchmaking/service/admin_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/findrivals/go-backend/shared/models"
	redisu "github.com/findrivals/go-backend/shared/redis"
)

// AdminService serves administrative aggregates.
type AdminService struct {
	teamStore TeamStore
	postStore MatchPostStore
	cache     StatsCache
}

// NewAdminService creates a new AdminService instance. The cache is optional;
// pass nil to always count against MongoDB.
func NewAdminService(ts TeamStore, ps MatchPostStore, cache StatsCache) *AdminService {
	return &AdminService{
		teamStore: ts,
		postStore: ps,
		cache:     cache,
	}
}

// Stats returns the current team and match-post totals. A fresh cached
// snapshot is served when available; cache failures fall open to the live
// counts, and a failed cache write never fails the request.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if err != redisu.ErrRedisKeyNotFound {
			log.Printf("WARN: Admin stats cache read failed, recomputing from storage: %v", err)
		}
	}

	teams, err := s.teamStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to count teams: %w", err)
	}
	posts, err := s.postStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to count match posts: %w", err)
	}

	stats := &models.AdminStats{
		TotalTeams:      teams,
		TotalMatchPosts: posts,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			log.Printf("WARN: Failed to cache admin stats: %v", err)
		}
	}
	return stats, nil
}
