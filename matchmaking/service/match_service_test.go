// matchmaking/service/match_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/findrivals/go-backend/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMatchService_CreatePost_CopiesTeamLocation(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	svc := NewMatchService(mockPosts, mockTeams)

	locName := "HSR Layout"
	mockTeams.On("FindByTeamID", mock.Anything, "FTB-100").
		Return(&models.Team{
			TeamID:       "FTB-100",
			LocationName: &locName,
			Latitude:     floatPtr(12.91),
			Longitude:    floatPtr(77.64),
		}, nil)
	mockPosts.On("Insert", mock.Anything, mock.Anything).
		Return("507f191e810c19729de860eb", nil)

	post, err := svc.CreatePost(context.Background(), CreateMatchPostInput{
		TeamID:     "FTB-100",
		Sport:      models.SportFootball,
		NumPlayers: 7,
		TimePref:   models.SlotEvening,
	})

	require.NoError(t, err)
	require.NotNil(t, post.Latitude)
	assert.Equal(t, 12.91, *post.Latitude)
	assert.Equal(t, "HSR Layout", *post.LocationName)
	assert.NotNil(t, post.CreatedAt)
}

func TestMatchService_CreatePost_UnknownTeam(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	svc := NewMatchService(mockPosts, mockTeams)

	mockTeams.On("FindByTeamID", mock.Anything, "FTB-404").
		Return(nil, mongo.ErrNoDocuments)

	_, err := svc.CreatePost(context.Background(), CreateMatchPostInput{TeamID: "FTB-404"})

	assert.ErrorIs(t, err, ErrTeamNotFound)
	mockPosts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestMatchService_Feed(t *testing.T) {
	mockTeams := new(MockTeamStore)
	mockPosts := new(MockMatchPostStore)
	svc := NewMatchService(mockPosts, mockTeams)

	expected := []models.MatchPost{{TeamID: "FTB-100"}, {TeamID: "FTB-101"}}
	mockPosts.On("List", mock.Anything, models.SportFootball).Return(expected, nil)

	posts, err := svc.Feed(context.Background(), models.SportFootball)

	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}
