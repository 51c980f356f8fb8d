// shared/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxMessageLength bounds the text of a single chat message.
const MaxMessageLength = 2000

// Message is a single chat message between two registered teams.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FromTeamID string             `bson:"from_team_id" json:"from_team_id"`
	ToTeamID   string             `bson:"to_team_id" json:"to_team_id"`
	Text       string             `bson:"text" json:"text"`
	CreatedAt  *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
