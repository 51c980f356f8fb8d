// matchmaking/service/chat_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/findrivals/go-backend/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChatService encapsulates the business logic for team-to-team messaging.
type ChatService struct {
	messageStore MessageStore
	teamStore    TeamStore
}

// NewChatService creates a new ChatService instance.
func NewChatService(ms MessageStore, ts TeamStore) *ChatService {
	return &ChatService{
		messageStore: ms,
		teamStore:    ts,
	}
}

// Send persists a message between two teams. Both teams must exist and both
// must have completed registration (a contact number on file).
func (s *ChatService) Send(ctx context.Context, fromTeamID, toTeamID, text string) (*models.Message, error) {
	from, err := s.lookupTeam(ctx, fromTeamID)
	if err != nil {
		return nil, err
	}
	to, err := s.lookupTeam(ctx, toTeamID)
	if err != nil {
		return nil, err
	}

	if from.ContactNumber == "" || to.ContactNumber == "" {
		return nil, ErrRegistrationIncomplete
	}

	now := time.Now()
	msg := &models.Message{
		FromTeamID: fromTeamID,
		ToTeamID:   toTeamID,
		Text:       text,
		CreatedAt:  &now,
	}
	if _, err := s.messageStore.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("service failed to send message: %w", err)
	}
	return msg, nil
}

// Conversation retrieves the full exchange between two teams, oldest first.
func (s *ChatService) Conversation(ctx context.Context, teamA, teamB string) ([]models.Message, error) {
	msgs, err := s.messageStore.Conversation(ctx, teamA, teamB)
	if err != nil {
		return nil, fmt.Errorf("service failed to load conversation: %w", err)
	}
	return msgs, nil
}

func (s *ChatService) lookupTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamStore.FindByTeamID(ctx, teamID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("service failed to look up team %s: %w", teamID, err)
	}
	return team, nil
}
