// matchmaking/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/findrivals/go-backend/matchmaking/geo"
	"github.com/findrivals/go-backend/matchmaking/service"
	"github.com/findrivals/go-backend/shared/api"
	"github.com/findrivals/go-backend/shared/models"
	"github.com/gorilla/mux"
)

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// MatchmakingAPIHandlers holds references to the services that handle business logic.
type MatchmakingAPIHandlers struct {
	TeamService  *service.TeamService
	MatchService *service.MatchService
	ChatService  *service.ChatService
	AdminService *service.AdminService
	DB           HealthChecker // optional; health endpoint reports "unavailable" when nil

	// DefaultRadiusKm is applied to nearby queries that omit radiusKm.
	// Zero means the stock 10 km default.
	DefaultRadiusKm float64
}

// NewMatchmakingAPIHandlers is the constructor for the API handlers.
func NewMatchmakingAPIHandlers(ts *service.TeamService, ms *service.MatchService, cs *service.ChatService, as *service.AdminService, db HealthChecker) *MatchmakingAPIHandlers {
	return &MatchmakingAPIHandlers{
		TeamService:  ts,
		MatchService: ms,
		ChatService:  cs,
		AdminService: as,
		DB:           db,
	}
}

// --- Request/Response DTOs (Data Transfer Objects) ---

type RegisterTeamRequest struct {
	TeamName          string             `json:"team_name"`
	Sport             models.Sport       `json:"sport"`
	Players           []string           `json:"players"`
	LocationName      *string            `json:"location_name"`
	Latitude          *float64           `json:"latitude"`
	Longitude         *float64           `json:"longitude"`
	ContactPreference models.ContactPref `json:"contact_preference"`
	ContactNumber     string             `json:"contact_number"`
	Availability      []models.TimeSlot  `json:"availability"`
}

type RegisterTeamResponse struct {
	OK     bool   `json:"ok"`
	TeamID string `json:"team_id"`
	ID     string `json:"id"`
}

type CreateMatchPostRequest struct {
	TeamID     string          `json:"team_id"`
	Sport      models.Sport    `json:"sport"`
	NumPlayers int             `json:"num_players"`
	TimePref   models.TimeSlot `json:"time_pref"`
	Note       *string         `json:"note"`
}

type CreateMatchPostResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type SendMessageRequest struct {
	FromTeamID string `json:"from_team_id"`
	ToTeamID   string `json:"to_team_id"`
	Text       string `json:"text"`
}

type SendMessageResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type DeleteTeamResponse struct {
	Deleted bool `json:"deleted"`
}

type HealthResponse struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
}

// --- Handler Methods ---

// RootHandler reports service liveness.
// GET /
func (mah *MatchmakingAPIHandlers) RootHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "FindRivals API running"})
}

// HealthHandler reports backend and database connectivity.
// GET /healthz
func (mah *MatchmakingAPIHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Backend: "running", Database: "unavailable"}

	if mah.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := mah.DB.Ping(ctx); err != nil {
			log.Printf("WARN: Health check database ping failed: %v", err)
		} else {
			resp.Database = "connected"
		}
	}

	api.WriteJSON(w, http.StatusOK, resp)
}

// RegisterTeamHandler handles new team registrations.
// POST /teams
func (mah *MatchmakingAPIHandlers) RegisterTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if msg := validateRegisterTeam(&req); msg != "" {
		api.WriteBadRequest(w, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	team, err := mah.TeamService.Register(ctx, service.RegisterTeamInput{
		TeamName:          req.TeamName,
		Sport:             req.Sport,
		Players:           req.Players,
		LocationName:      req.LocationName,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		ContactPreference: req.ContactPreference,
		ContactNumber:     req.ContactNumber,
		Availability:      req.Availability,
	})
	if err != nil {
		switch err {
		case service.ErrPlayerConflict:
			api.WriteBadRequest(w, "One or more players already belong to another team")
		default:
			log.Printf("ERROR: Failed to register team %q: %v", req.TeamName, err)
			api.WriteInternalServerError(w, "Failed to register team")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, RegisterTeamResponse{
		OK:     true,
		TeamID: team.TeamID,
		ID:     team.ID.Hex(),
	})
	log.Printf("INFO: Team %s (%s) registered successfully.", team.TeamID, team.TeamName)
}

// ListTeamsHandler lists teams, optionally filtered by sport.
// GET /teams?sport=
func (mah *MatchmakingAPIHandlers) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFilterParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	teams, err := mah.TeamService.List(ctx, sport)
	if err != nil {
		log.Printf("ERROR: Failed to list teams: %v", err)
		api.WriteInternalServerError(w, "Failed to list teams")
		return
	}
	if teams == nil {
		teams = []models.Team{}
	}

	api.WriteJSON(w, http.StatusOK, teams)
}

// GetTeamHandler retrieves one team by its identifier.
// GET /teams/{teamId}
func (mah *MatchmakingAPIHandlers) GetTeamHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	if teamID == "" {
		api.WriteBadRequest(w, "Team ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	team, err := mah.TeamService.Get(ctx, teamID)
	if err != nil {
		switch err {
		case service.ErrTeamNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Team %s not found", teamID))
		default:
			log.Printf("ERROR: Failed to get team %s: %v", teamID, err)
			api.WriteInternalServerError(w, "Failed to retrieve team")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, team)
}

// NearbyTeamsHandler runs the proximity query.
// GET /nearby?sport=&centerLat=&centerLon=&radiusKm=
func (mah *MatchmakingAPIHandlers) NearbyTeamsHandler(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFilterParam(w, r)
	if !ok {
		return
	}

	centerLat, ok := floatParam(w, r, "centerLat")
	if !ok {
		return
	}
	centerLon, ok := floatParam(w, r, "centerLon")
	if !ok {
		return
	}
	radius, ok := floatParam(w, r, "radiusKm")
	if !ok {
		return
	}

	// Discovery stays permissive: a missing coordinate means no distance
	// filtering rather than a rejected request.
	var center *geo.Point
	if centerLat != nil && centerLon != nil {
		center = &geo.Point{Latitude: *centerLat, Longitude: *centerLon}
	}

	radiusKm := mah.DefaultRadiusKm
	if radiusKm == 0 {
		radiusKm = 10
	}
	if radius != nil {
		radiusKm = *radius
	}
	radiusKm = geo.ClampRadius(radiusKm)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	results, err := mah.TeamService.Nearby(ctx, service.NearbyQuery{
		Sport:    sport,
		Center:   center,
		RadiusKm: radiusKm,
	})
	if err != nil {
		log.Printf("ERROR: Proximity query failed: %v", err)
		api.WriteInternalServerError(w, "Failed to find nearby teams")
		return
	}

	api.WriteJSON(w, http.StatusOK, results)
}

// CreateMatchPostHandler publishes a match post for an existing team.
// POST /matchposts
func (mah *MatchmakingAPIHandlers) CreateMatchPostHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.TeamID == "" {
		api.WriteBadRequest(w, "Team ID is required")
		return
	}
	if !req.Sport.IsValid() {
		api.WriteBadRequest(w, fmt.Sprintf("Unknown sport %q", req.Sport))
		return
	}
	if req.NumPlayers < 1 {
		api.WriteBadRequest(w, "Number of players must be at least 1")
		return
	}
	if !req.TimePref.IsValid() {
		api.WriteBadRequest(w, fmt.Sprintf("Unknown time slot %q", req.TimePref))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, err := mah.MatchService.CreatePost(ctx, service.CreateMatchPostInput{
		TeamID:     req.TeamID,
		Sport:      req.Sport,
		NumPlayers: req.NumPlayers,
		TimePref:   req.TimePref,
		Note:       req.Note,
	})
	if err != nil {
		switch err {
		case service.ErrTeamNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Team %s not found", req.TeamID))
		default:
			log.Printf("ERROR: Failed to create match post for team %s: %v", req.TeamID, err)
			api.WriteInternalServerError(w, "Failed to create match post")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, CreateMatchPostResponse{OK: true, ID: post.ID.Hex()})
}

// MatchFeedHandler lists match posts newest-first.
// GET /feed?sport=
func (mah *MatchmakingAPIHandlers) MatchFeedHandler(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportFilterParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	posts, err := mah.MatchService.Feed(ctx, sport)
	if err != nil {
		log.Printf("ERROR: Failed to load match feed: %v", err)
		api.WriteInternalServerError(w, "Failed to load match feed")
		return
	}
	if posts == nil {
		posts = []models.MatchPost{}
	}

	api.WriteJSON(w, http.StatusOK, posts)
}

// SendMessageHandler sends a chat message between two teams.
// POST /chat
func (mah *MatchmakingAPIHandlers) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.FromTeamID == "" || req.ToTeamID == "" {
		api.WriteBadRequest(w, "Both team IDs are required")
		return
	}
	if len(req.Text) == 0 || len(req.Text) > models.MaxMessageLength {
		api.WriteBadRequest(w, fmt.Sprintf("Message text must be between 1 and %d characters", models.MaxMessageLength))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := mah.ChatService.Send(ctx, req.FromTeamID, req.ToTeamID, req.Text)
	if err != nil {
		switch err {
		case service.ErrTeamNotFound:
			api.WriteNotFound(w, "Team not found")
		case service.ErrRegistrationIncomplete:
			api.WriteBadRequest(w, "Teams must complete registration to chat")
		default:
			log.Printf("ERROR: Failed to send message from %s to %s: %v", req.FromTeamID, req.ToTeamID, err)
			api.WriteInternalServerError(w, "Failed to send message")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, SendMessageResponse{OK: true, ID: msg.ID.Hex()})
}

// GetConversationHandler retrieves the exchange between two teams, oldest first.
// GET /chat/{teamA}/{teamB}
func (mah *MatchmakingAPIHandlers) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamA, teamB := vars["teamA"], vars["teamB"]
	if teamA == "" || teamB == "" {
		api.WriteBadRequest(w, "Both team IDs are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msgs, err := mah.ChatService.Conversation(ctx, teamA, teamB)
	if err != nil {
		log.Printf("ERROR: Failed to load conversation between %s and %s: %v", teamA, teamB, err)
		api.WriteInternalServerError(w, "Failed to load conversation")
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}

	api.WriteJSON(w, http.StatusOK, msgs)
}

// AdminStatsHandler reports aggregate counters.
// GET /admin/stats
func (mah *MatchmakingAPIHandlers) AdminStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, err := mah.AdminService.Stats(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to compute admin stats: %v", err)
		api.WriteInternalServerError(w, "Failed to compute stats")
		return
	}

	api.WriteJSON(w, http.StatusOK, stats)
}

// AdminDeleteTeamHandler removes a team by its identifier.
// DELETE /admin/teams/{teamId}
func (mah *MatchmakingAPIHandlers) AdminDeleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	if teamID == "" {
		api.WriteBadRequest(w, "Team ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := mah.TeamService.Delete(ctx, teamID)
	if err != nil {
		log.Printf("ERROR: Failed to delete team %s: %v", teamID, err)
		api.WriteInternalServerError(w, "Failed to delete team")
		return
	}

	api.WriteJSON(w, http.StatusOK, DeleteTeamResponse{Deleted: deleted})
	if deleted {
		log.Printf("INFO: Team %s deleted by admin.", teamID)
	}
}

// --- Helpers ---

func validateRegisterTeam(req *RegisterTeamRequest) string {
	if req.TeamName == "" {
		return "Team name is required"
	}
	if !req.Sport.IsValid() {
		return fmt.Sprintf("Unknown sport %q", req.Sport)
	}
	if !req.ContactPreference.IsValid() {
		return fmt.Sprintf("Unknown contact preference %q", req.ContactPreference)
	}
	if req.ContactNumber == "" {
		return "Contact number is required"
	}
	for _, slot := range req.Availability {
		if !slot.IsValid() {
			return fmt.Sprintf("Unknown time slot %q", slot)
		}
	}
	return ""
}

// sportFilterParam reads an optional ?sport= query parameter and validates it
// against the closed enumeration. Writes a 400 and returns ok=false on an
// unknown sport.
func sportFilterParam(w http.ResponseWriter, r *http.Request) (models.Sport, bool) {
	raw := r.URL.Query().Get("sport")
	if raw == "" {
		return "", true
	}
	sport := models.Sport(raw)
	if !sport.IsValid() {
		api.WriteBadRequest(w, fmt.Sprintf("Unknown sport %q", raw))
		return "", false
	}
	return sport, true
}

// floatParam reads an optional float query parameter. Writes a 400 and
// returns ok=false when the value is present but not numeric.
func floatParam(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		api.WriteBadRequest(w, fmt.Sprintf("Invalid value for %s: %q", name, raw))
		return nil, false
	}
	return &f, true
}

// RegisterRoutes registers all API endpoints for the Matchmaking Service.
// This method is called from main.go to set up the HTTP routes.
func (mah *MatchmakingAPIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", mah.RootHandler).Methods("GET")
	router.HandleFunc("/healthz", mah.HealthHandler).Methods("GET")

	router.HandleFunc("/teams", mah.RegisterTeamHandler).Methods("POST")
	router.HandleFunc("/teams", mah.ListTeamsHandler).Methods("GET")
	router.HandleFunc("/teams/{teamId}", mah.GetTeamHandler).Methods("GET")
	router.HandleFunc("/nearby", mah.NearbyTeamsHandler).Methods("GET")

	router.HandleFunc("/matchposts", mah.CreateMatchPostHandler).Methods("POST")
	router.HandleFunc("/feed", mah.MatchFeedHandler).Methods("GET")

	router.HandleFunc("/chat", mah.SendMessageHandler).Methods("POST")
	router.HandleFunc("/chat/{teamA}/{teamB}", mah.GetConversationHandler).Methods("GET")

	router.HandleFunc("/admin/stats", mah.AdminStatsHandler).Methods("GET")
	router.HandleFunc("/admin/teams/{teamId}", mah.AdminDeleteTeamHandler).Methods("DELETE")
}
