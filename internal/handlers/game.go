package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/game"
)

// GameHandler exposes the narrative state machine over HTTP.
// Routes:
// POST /v1/game                    - Create a new session
// GET  /v1/game/{id}               - Current scene view
// POST /v1/game/{id}/choose        - Take a scene choice
// GET  /v1/game/{id}/map           - Available travel destinations
// POST /v1/game/{id}/travel        - Travel to a destination
// POST /v1/game/{id}/talk          - Start a conversation
// POST /v1/game/{id}/talk/option   - Select a dialogue option
// POST /v1/game/{id}/skills        - Spend a skill point
// GET  /v1/game/{id}/sheet         - Character sheet
type GameHandler struct {
	manager *game.Manager
	logger  *slog.Logger
}

func NewGameHandler(manager *game.Manager, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		manager: manager,
		logger:  logger,
	}
}

type createSessionRequest struct {
	Name    string `json:"name"`
	ClassID string `json:"class_id,omitempty"`
}

type chooseRequest struct {
	ChoiceIndex int `json:"choice_index"`
}

type travelRequest struct {
	LocationID string `json:"location_id"`
}

type talkRequest struct {
	NPCID string `json:"npc_id"`
}

type talkOptionRequest struct {
	NPCID       string `json:"npc_id"`
	SectionID   string `json:"section_id,omitempty"`
	OptionIndex int    `json:"option_index"`
}

type spendSkillRequest struct {
	SkillID string `json:"skill_id"`
}

func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/game"), "/")
	if path == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.handleView(w, r, id)
	case action == "choose" && r.Method == http.MethodPost:
		h.handleChoose(w, r, id)
	case action == "map" && r.Method == http.MethodGet:
		h.handleMap(w, r, id)
	case action == "travel" && r.Method == http.MethodPost:
		h.handleTravel(w, r, id)
	case action == "talk" && r.Method == http.MethodPost:
		h.handleTalk(w, r, id)
	case action == "talk/option" && r.Method == http.MethodPost:
		h.handleTalkOption(w, r, id)
	case action == "skills" && r.Method == http.MethodPost:
		h.handleSpendSkill(w, r, id)
	case action == "sheet" && r.Method == http.MethodGet:
		h.handleSheet(w, r, id)
	default:
		h.writeError(w, http.StatusNotFound, "Unknown route")
	}
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'name' field.")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "Character name is required")
		return
	}
	if req.ClassID != "" {
		if _, ok := h.manager.Engine().Content().Class(req.ClassID); !ok {
			h.writeError(w, http.StatusBadRequest, "Unknown class")
			return
		}
	}

	st, err := h.manager.NewSession(r.Context(), req.Name, req.ClassID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	view, err := buildSceneView(h.manager.Engine(), st, nil)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *GameHandler) handleView(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	st, err := h.manager.Load(r.Context(), id)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	view, err := buildSceneView(h.manager.Engine(), st, nil)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *GameHandler) handleChoose(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req chooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'choice_index' field.")
		return
	}

	result, err := h.manager.Choose(r.Context(), id, req.ChoiceIndex)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	if result.NavigationRequested {
		destinations := h.manager.Engine().AvailableDestinations(result.State.CurrentLocationID, result.State)
		h.writeJSON(w, http.StatusOK, buildMapView(destinations, result.State))
		return
	}

	view, err := buildSceneView(h.manager.Engine(), result.State, result.Check)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *GameHandler) handleMap(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	destinations, st, err := h.manager.Destinations(r.Context(), id)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, buildMapView(destinations, st))
}

func (h *GameHandler) handleTravel(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req travelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LocationID == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'location_id' field.")
		return
	}

	st, err := h.manager.Travel(r.Context(), id, req.LocationID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	view, err := buildSceneView(h.manager.Engine(), st, nil)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *GameHandler) handleTalk(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req talkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NPCID == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'npc_id' field.")
		return
	}

	n, ok := h.manager.Engine().Content().NPC(req.NPCID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Unknown NPC")
		return
	}

	result, err := h.manager.Talk(r.Context(), id, req.NPCID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, buildDialogueView(h.manager.Engine(), n, result))
}

func (h *GameHandler) handleTalkOption(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req talkOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NPCID == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'npc_id' and 'option_index' fields.")
		return
	}

	n, ok := h.manager.Engine().Content().NPC(req.NPCID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Unknown NPC")
		return
	}

	result, err := h.manager.TalkOption(r.Context(), id, req.NPCID, req.SectionID, req.OptionIndex)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, buildDialogueView(h.manager.Engine(), n, result))
}

func (h *GameHandler) handleSpendSkill(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req spendSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SkillID == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'skill_id' field.")
		return
	}

	st, err := h.manager.SpendSkillPoint(r.Context(), id, req.SkillID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

func (h *GameHandler) handleSheet(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	st, err := h.manager.Load(r.Context(), id)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	var class *character.Class
	if st.ClassID != "" {
		class, _ = h.manager.Engine().Content().Class(st.ClassID)
	}
	sheet, err := character.BuildSheet(st, class)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sheet)
}

// writeGameError maps engine errors onto HTTP statuses. Content
// defects (dangling references, missing scene bindings) are operator
// problems and get logged as errors; gating failures are routine.
func (h *GameHandler) writeGameError(w http.ResponseWriter, err error) {
	var reqErr *game.RequirementNotMetError
	var danglingErr *game.DanglingReferenceError
	var noSceneErr *game.NoSceneForLocationError

	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		h.writeError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, game.ErrInvalidChoice):
		h.writeError(w, http.StatusBadRequest, "Invalid choice")
	case errors.Is(err, game.ErrUnreachableLocation):
		h.writeError(w, http.StatusBadRequest, "Location is not reachable from here")
	case errors.As(err, &reqErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "Requirement not met",
			Reason: reqErr.Reason,
		})
	case errors.As(err, &danglingErr), errors.As(err, &noSceneErr):
		h.logger.Error("Content integrity defect", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Content error")
	default:
		h.logger.Error("Unexpected error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *GameHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (h *GameHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
