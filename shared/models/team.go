// shared/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sport is the closed set of sports a team can register for.
type Sport string

const (
	SportCricket  Sport = "cricket"
	SportFootball Sport = "football"
	SportKabaddi  Sport = "kabaddi"
	SportShuttle  Sport = "shuttle"
	SportTennis   Sport = "tennis"
)

// IsValid reports whether s is one of the known sports.
func (s Sport) IsValid() bool {
	switch s {
	case SportCricket, SportFootball, SportKabaddi, SportShuttle, SportTennis:
		return true
	}
	return false
}

// TimeSlot is a coarse availability window for a team.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

func (t TimeSlot) IsValid() bool {
	switch t {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// ContactPref is how a team wants to be reached.
type ContactPref string

const (
	ContactCall ContactPref = "call"
	ContactText ContactPref = "text"
)

func (c ContactPref) IsValid() bool {
	switch c {
	case ContactCall, ContactText:
		return true
	}
	return false
}

// Team represents a registered roster stored persistently in MongoDB.
// TeamID is the human-readable identifier (e.g. "CRK-104") and is immutable
// once assigned; ID is the storage-internal ObjectID.
type Team struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamName          string             `bson:"team_name" json:"team_name"`
	Sport             Sport              `bson:"sport" json:"sport"`
	Players           []string           `bson:"players" json:"players"`
	LocationName      *string            `bson:"location_name,omitempty" json:"location_name,omitempty"`
	Latitude          *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude         *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	ContactPreference ContactPref        `bson:"contact_preference" json:"contact_preference"`
	ContactNumber     string             `bson:"contact_number" json:"contact_number"`
	Availability      []TimeSlot         `bson:"availability" json:"availability"`
	TeamID            string             `bson:"team_id" json:"team_id"`
	CreatedAt         *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// HasLocation reports whether the team carries a complete coordinate pair.
// A team with only one of latitude/longitude set is treated as having no
// location and is never geo-matched.
func (t *Team) HasLocation() bool {
	return t.Latitude != nil && t.Longitude != nil
}
