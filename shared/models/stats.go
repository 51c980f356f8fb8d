// shared/models/stats.go
package models

// AdminStats is the aggregate counters snapshot served to administrators.
type AdminStats struct {
	TotalTeams      int64 `bson:"total_teams" json:"total_teams"`
	TotalMatchPosts int64 `bson:"total_match_posts" json:"total_match_posts"`
}
