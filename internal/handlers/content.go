package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jwebster45206/forgotten-kingdom/pkg/content"
)

// NPCSummary is an NPC without its dialogue tree, for location and
// conversation-target listings.
type NPCSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// ContentHandler serves the read-only content needed for character
// creation: the class list and the skills catalog.
// Routes:
// GET /v1/content/classes
// GET /v1/content/skills
// GET /v1/content/npcs    - NPC summaries (no dialogue trees)
type ContentHandler struct {
	content *content.Content
	logger  *slog.Logger
}

func NewContentHandler(c *content.Content, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		content: c,
		logger:  logger,
	}
}

func (h *ContentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Method not allowed"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	var v any
	switch strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/content"), "/") {
	case "classes":
		v = h.content.Classes
	case "skills":
		v = h.content.Skills
	case "npcs":
		summaries := make([]NPCSummary, 0, len(h.content.NPCs))
		for id, n := range h.content.NPCs {
			summaries = append(summaries, NPCSummary{
				ID:          id,
				Name:        n.Name,
				Description: n.Description,
				Location:    n.Location,
			})
		}
		sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
		v = summaries
	default:
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Unknown content resource"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode content response", "error", err)
	}
}
