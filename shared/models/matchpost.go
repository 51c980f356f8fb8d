// shared/models/matchpost.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchPost is an open challenge published by a team. The location fields are
// copied from the posting team's document at creation time so the feed stays
// meaningful even if the team is later deleted.
type MatchPost struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamID       string             `bson:"team_id" json:"team_id"`
	Sport        Sport              `bson:"sport" json:"sport"`
	NumPlayers   int                `bson:"num_players" json:"num_players"`
	TimePref     TimeSlot           `bson:"time_pref" json:"time_pref"`
	Note         *string            `bson:"note,omitempty" json:"note,omitempty"`
	LocationName *string            `bson:"location_name,omitempty" json:"location_name,omitempty"`
	Latitude     *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	CreatedAt    *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
