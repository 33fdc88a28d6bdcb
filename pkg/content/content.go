// Package content aggregates all immutable story content: scenes,
// NPC dialogue trees, the world map, classes, and the skills catalog.
// Content is loaded once at process start and shared read-only across
// sessions.
package content

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/npc"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
	"github.com/jwebster45206/forgotten-kingdom/pkg/worldmap"
)

// Content is the full content repository for one story.
type Content struct {
	Story   story.Story                    `json:"story"`
	NPCs    map[string]npc.NPC             `json:"npcs,omitempty"`
	Map     worldmap.Map                   `json:"map"`
	Classes []character.Class              `json:"classes,omitempty"`
	Skills  map[string]character.SkillInfo `json:"skills,omitempty"`
}

// Scene returns the scene with the given ID.
func (c *Content) Scene(id string) (*story.Scene, bool) {
	scene, ok := c.Story.Scenes[id]
	if !ok {
		return nil, false
	}
	return &scene, true
}

// NPC returns the NPC with the given ID.
func (c *Content) NPC(id string) (*npc.NPC, bool) {
	n, ok := c.NPCs[id]
	if !ok {
		return nil, false
	}
	return &n, true
}

// Class returns the class with the given ID.
func (c *Content) Class(id string) (*character.Class, bool) {
	for i := range c.Classes {
		if c.Classes[i].ID == id {
			return &c.Classes[i], true
		}
	}
	return nil, false
}

// SceneForLocation resolves the scene bound to a location: the
// location's explicit binding first, then a scene whose ID matches the
// location ID, then a scene that back-references the location.
func (c *Content) SceneForLocation(locationID string) (string, bool) {
	if loc, ok := c.Map.LocationByID(locationID); ok && loc.Scene != "" {
		if _, ok := c.Story.Scenes[loc.Scene]; ok {
			return loc.Scene, true
		}
	}
	if _, ok := c.Story.Scenes[locationID]; ok {
		return locationID, true
	}
	for id, scene := range c.Story.Scenes {
		if scene.Location == locationID {
			return id, true
		}
	}
	return "", false
}
