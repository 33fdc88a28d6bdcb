package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/forgotten-kingdom/internal/storage"
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/game"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

// setupGameHandler wires the handler over the shipped content and an
// in-memory store, the same graph main assembles.
func setupGameHandler(t *testing.T) (*GameHandler, *storage.MockStorage) {
	t.Helper()
	logger := testLogger()

	c, err := storage.LoadContent(filepath.Join("..", "..", "data"), logger)
	require.NoError(t, err, "shipped content must load")

	mockStorage := storage.NewMockStorage()
	manager := game.NewManager(game.NewEngine(c, logger), mockStorage, logger)
	return NewGameHandler(manager, logger), mockStorage
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func createSession(t *testing.T, h *GameHandler) *SceneView {
	t.Helper()
	rr := doRequest(h, http.MethodPost, "/v1/game", `{"name":"Tester","class_id":"mage"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var view SceneView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	require.NotNil(t, view.State)
	return &view
}

func TestGameHandler_Create(t *testing.T) {
	h, _ := setupGameHandler(t)

	view := createSession(t, h)
	assert.Equal(t, "village_square", view.SceneID)
	assert.NotEmpty(t, view.Description)
	assert.NotEmpty(t, view.Choices)
	assert.NotEqual(t, uuid.Nil, view.State.ID)
	assert.Equal(t, "mage", view.State.ClassID)
	assert.Equal(t, 1, view.State.Level)
}

func TestGameHandler_CreateValidation(t *testing.T) {
	h, _ := setupGameHandler(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"missing name", `{"class_id":"mage"}`, http.StatusBadRequest},
		{"blank name", `{"name":"   "}`, http.StatusBadRequest},
		{"unknown class", `{"name":"Tester","class_id":"necromancer"}`, http.StatusBadRequest},
		{"malformed json", `{"name":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(h, http.MethodPost, "/v1/game", tt.body)
			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestGameHandler_GetScene(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)

	rr := doRequest(h, http.MethodGet, "/v1/game/"+view.State.ID.String(), "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got SceneView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, view.SceneID, got.SceneID)
}

func TestGameHandler_SessionErrors(t *testing.T) {
	h, _ := setupGameHandler(t)

	rr := doRequest(h, http.MethodGet, "/v1/game/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(h, http.MethodGet, "/v1/game/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(h, http.MethodGet, "/v1/game/"+uuid.NewString()+"/bogus", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(h, http.MethodDelete, "/v1/game", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestGameHandler_Choose(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/choose", `{"choice_index":0}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got SceneView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "talking_to_thaddeus", got.SceneID)
	assert.Equal(t, "talking_to_thaddeus", got.State.CurrentSceneID)
}

func TestGameHandler_ChooseInvalidIndex(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)

	rr := doRequest(h, http.MethodPost, "/v1/game/"+view.State.ID.String()+"/choose", `{"choice_index":99}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGameHandler_ChooseShowMap(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)

	// The last village square choice opens the map.
	idx := len(view.Choices) - 1
	rr := doRequest(h, http.MethodPost, "/v1/game/"+view.State.ID.String()+"/choose",
		`{"choice_index":`+strconv.Itoa(idx)+`}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got MapView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "village_square", got.CurrentLocationID)

	byID := make(map[string]DestinationView)
	for _, d := range got.Destinations {
		byID[d.LocationID] = d
	}
	assert.Contains(t, byID, "tavern")
	assert.Contains(t, byID, "forest_path")
	require.Contains(t, byID, "castle")
	assert.True(t, byID["castle"].Locked, "castle should be locked before the quest is done")
	assert.NotEmpty(t, byID["castle"].Reason)
	assert.NotContains(t, byID, "dark_cave", "hidden connections start omitted")
}

func TestGameHandler_Map(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)

	rr := doRequest(h, http.MethodGet, "/v1/game/"+view.State.ID.String()+"/map", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got MapView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.NotEmpty(t, got.Destinations)
}

func TestGameHandler_Travel(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/travel", `{"location_id":"tavern"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got SceneView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "tavern_entrance", got.SceneID)
	assert.Equal(t, "tavern", got.State.CurrentLocationID)
	assert.Contains(t, got.State.Discovered, "tavern")
}

func TestGameHandler_TravelGated(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	// Visible but locked: requirement failure with the author's reason.
	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/travel", `{"location_id":"castle"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
	assert.Equal(t, "Requirement not met", errResp.Error)
	assert.NotEmpty(t, errResp.Reason)

	// Hidden connection: indistinguishable from no connection at all.
	rr = doRequest(h, http.MethodPost, "/v1/game/"+id+"/travel", `{"location_id":"dark_cave"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

	// No connection.
	rr = doRequest(h, http.MethodPost, "/v1/game/"+id+"/travel", `{"location_id":"mystic_grove"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}

func TestGameHandler_Talk(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/talk", `{"npc_id":"thaddeus"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got DialogueView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "thaddeus", got.NPCID)
	assert.Equal(t, "Old Man Thaddeus", got.NPCName)
	assert.NotEmpty(t, got.Line)
	assert.NotEmpty(t, got.Options)
	assert.False(t, got.Ended)

	rr = doRequest(h, http.MethodPost, "/v1/game/"+id+"/talk", `{"npc_id":"nobody"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameHandler_TalkOptionFlow(t *testing.T) {
	h, store := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	// Descend into the troubles section.
	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/talk/option",
		`{"npc_id":"thaddeus","option_index":0}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got DialogueView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "village_troubles", got.SectionID)
	assert.False(t, got.Ended)

	// Accepting the quest applies its effects and persists them.
	rr = doRequest(h, http.MethodPost, "/v1/game/"+id+"/talk/option",
		`{"npc_id":"thaddeus","section_id":"village_troubles","option_index":2}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, character.StatusActive, got.State.QuestStatus("missing_villagers"))

	stored, err := store.LoadCharacter(context.Background(), view.State.ID)
	require.NoError(t, err)
	assert.Equal(t, character.StatusActive, stored.QuestStatus("missing_villagers"))
}

func TestGameHandler_TalkOptionGated(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	// The persuasion-gated option in the troubles section; a fresh mage
	// has no persuasion.
	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/talk/option",
		`{"npc_id":"thaddeus","section_id":"village_troubles","option_index":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
	assert.NotEmpty(t, errResp.Reason)
}

func TestGameHandler_SpendSkill(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)
	id := view.State.ID.String()

	rr := doRequest(h, http.MethodPost, "/v1/game/"+id+"/skills", `{"skill_id":"persuasion"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var st character.State
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&st))
	assert.Equal(t, 1, st.SkillLevel("persuasion"))
	assert.Equal(t, character.StartingSkillPoints-1, st.SkillPoints)

	rr = doRequest(h, http.MethodPost, "/v1/game/"+id+"/skills", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGameHandler_Sheet(t *testing.T) {
	h, _ := setupGameHandler(t)
	view := createSession(t, h)

	rr := doRequest(h, http.MethodGet, "/v1/game/"+view.State.ID.String()+"/sheet", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var sheet character.Sheet
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sheet))
	assert.Equal(t, "Tester", sheet.Name)
	assert.Equal(t, "Mage", sheet.ClassName)
	assert.Equal(t, 80, sheet.HP)
	assert.Equal(t, character.BaseAC, sheet.AC)
	assert.Equal(t, 100, sheet.NextLevelAt)
}
