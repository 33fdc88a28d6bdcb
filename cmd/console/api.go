package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/forgotten-kingdom/internal/handlers"
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
)

// apiClient wraps the HTTP calls the console makes against the API.
type apiClient struct {
	baseURL string
	client  *http.Client
}

func (a *apiClient) do(method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp handlers.ErrorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			if errResp.Reason != "" {
				return &apiError{status: resp.StatusCode, message: errResp.Reason}
			}
			return &apiError{status: resp.StatusCode, message: errResp.Error}
		}
		return &apiError{status: resp.StatusCode, message: http.StatusText(resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// apiError distinguishes routine gate failures (422) from hard errors.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) requirementNotMet() bool {
	return e.status == http.StatusUnprocessableEntity
}

func (a *apiClient) health() error {
	return a.do(http.MethodGet, "/health", nil, nil)
}

func (a *apiClient) listClasses() ([]character.Class, error) {
	var classes []character.Class
	if err := a.do(http.MethodGet, "/v1/content/classes", nil, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (a *apiClient) listNPCs() ([]handlers.NPCSummary, error) {
	var npcs []handlers.NPCSummary
	if err := a.do(http.MethodGet, "/v1/content/npcs", nil, &npcs); err != nil {
		return nil, err
	}
	return npcs, nil
}

func (a *apiClient) createGame(name, classID string) (*handlers.SceneView, error) {
	var view handlers.SceneView
	body := map[string]string{"name": name, "class_id": classID}
	if err := a.do(http.MethodPost, "/v1/game", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (a *apiClient) choose(sessionID string, index int) (json.RawMessage, error) {
	var raw json.RawMessage
	body := map[string]int{"choice_index": index}
	if err := a.do(http.MethodPost, "/v1/game/"+sessionID+"/choose", body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (a *apiClient) getMap(sessionID string) (*handlers.MapView, error) {
	var view handlers.MapView
	if err := a.do(http.MethodGet, "/v1/game/"+sessionID+"/map", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (a *apiClient) travel(sessionID, locationID string) (*handlers.SceneView, error) {
	var view handlers.SceneView
	body := map[string]string{"location_id": locationID}
	if err := a.do(http.MethodPost, "/v1/game/"+sessionID+"/travel", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (a *apiClient) talk(sessionID, npcID string) (*handlers.DialogueView, error) {
	var view handlers.DialogueView
	body := map[string]string{"npc_id": npcID}
	if err := a.do(http.MethodPost, "/v1/game/"+sessionID+"/talk", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (a *apiClient) talkOption(sessionID, npcID, sectionID string, index int) (*handlers.DialogueView, error) {
	var view handlers.DialogueView
	body := map[string]any{"npc_id": npcID, "section_id": sectionID, "option_index": index}
	if err := a.do(http.MethodPost, "/v1/game/"+sessionID+"/talk/option", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (a *apiClient) sheet(sessionID string) (*character.Sheet, error) {
	var sheet character.Sheet
	if err := a.do(http.MethodGet, "/v1/game/"+sessionID+"/sheet", nil, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}
