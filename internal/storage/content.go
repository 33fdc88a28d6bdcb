package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/content"
	"github.com/jwebster45206/forgotten-kingdom/pkg/npc"
)

// Content file names under the data directory.
const (
	storyFile   = "story.json"
	npcsFile    = "npcs.json"
	mapFile     = "map.json"
	classesFile = "classes.json"
	skillsFile  = "skills.json"
)

// LoadContent reads and validates all content from a data directory.
// Decoding is strict (unknown fields are errors), so a misspelled
// content field fails the load instead of silently vanishing. npcs,
// classes, and skills files are optional; story and map are not.
func LoadContent(dataDir string, logger *slog.Logger) (*content.Content, error) {
	c := &content.Content{}

	if err := loadJSON(filepath.Join(dataDir, storyFile), &c.Story, true); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dataDir, mapFile), &c.Map, true); err != nil {
		return nil, err
	}

	var npcs map[string]npc.NPC
	if err := loadJSON(filepath.Join(dataDir, npcsFile), &npcs, false); err != nil {
		return nil, err
	}
	c.NPCs = npcs

	var classes []character.Class
	if err := loadJSON(filepath.Join(dataDir, classesFile), &classes, false); err != nil {
		return nil, err
	}
	c.Classes = classes

	var skills map[string]character.SkillInfo
	if err := loadJSON(filepath.Join(dataDir, skillsFile), &skills, false); err != nil {
		return nil, err
	}
	c.Skills = skills

	if err := content.NewValidator(logger).Validate(c); err != nil {
		return nil, err
	}

	logger.Info("content loaded",
		"story", c.Story.Title,
		"scenes", len(c.Story.Scenes),
		"npcs", len(c.NPCs),
		"locations", len(c.Map.Locations),
		"classes", len(c.Classes))
	return c, nil
}

func loadJSON(path string, v any, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("failed to decode content file %s: %w", path, err)
	}
	return nil
}
