package character

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Quest status values. Unknown quest IDs behave as StatusInactive.
const (
	StatusInactive  = "inactive"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ValidQuestStatus reports whether s is one of the four quest states.
func ValidQuestStatus(s string) bool {
	switch s {
	case StatusInactive, StatusActive, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Item is one inventory entry. The same ID never appears twice;
// quantity changes merge into the existing entry.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// State is the persistent state of one player character. It is treated
// as an immutable value by the engine: transforms clone it and return
// the clone, so a failed transition never leaves partial changes.
type State struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClassID     string    `json:"class_id,omitempty"`
	Level       int       `json:"level"`
	Experience  int       `json:"experience"`
	SkillPoints int       `json:"skill_points"`

	Skills        map[string]int    `json:"skills,omitempty"`    // skill ID -> level; missing key means 0
	Inventory     []Item            `json:"inventory,omitempty"` // ordered, IDs unique
	Quests        map[string]string `json:"quests,omitempty"`
	Relationships map[string]int    `json:"relationships,omitempty"` // NPC ID -> affinity, unbounded both ways
	Discovered    []string          `json:"discovered_locations,omitempty"`

	CurrentSceneID    string `json:"current_scene_id"`
	CurrentLocationID string `json:"current_location_id,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// StartingSkillPoints is the pool of unspent skill points a new
// character begins with, on top of its class starting skills.
const StartingSkillPoints = 3

// New creates a character from the fixed initial template: level 1,
// no experience, the class's starting skills, positioned at the given
// scene and location with the starting location already discovered.
func New(name string, class *Class, sceneID, locationID string) *State {
	st := &State{
		ID:                uuid.New(),
		Name:              name,
		Level:             1,
		SkillPoints:       StartingSkillPoints,
		Skills:            make(map[string]int),
		Quests:            make(map[string]string),
		Relationships:     make(map[string]int),
		CurrentSceneID:    sceneID,
		CurrentLocationID: locationID,
		CreatedAt:         time.Now(),
	}
	if class != nil {
		st.ClassID = class.ID
		maps.Copy(st.Skills, class.StartingSkills)
	}
	if locationID != "" {
		st.Discovered = []string{locationID}
	}
	return st
}

// Clone returns a deep copy. Engine transforms operate on clones so
// the input state is never mutated.
func (s *State) Clone() *State {
	c := *s
	c.Skills = maps.Clone(s.Skills)
	c.Inventory = slices.Clone(s.Inventory)
	c.Quests = maps.Clone(s.Quests)
	c.Relationships = maps.Clone(s.Relationships)
	c.Discovered = slices.Clone(s.Discovered)
	return &c
}

// SkillLevel returns the character's level in a skill; missing keys
// behave as level 0.
func (s *State) SkillLevel(skill string) int {
	return s.Skills[skill]
}

// HasItem reports whether the inventory holds at least one of itemID.
func (s *State) HasItem(itemID string) bool {
	for _, item := range s.Inventory {
		if item.ID == itemID && item.Quantity > 0 {
			return true
		}
	}
	return false
}

// QuestStatus returns the status of a quest, StatusInactive when the
// quest has never been touched.
func (s *State) QuestStatus(questID string) string {
	if status, ok := s.Quests[questID]; ok {
		return status
	}
	return StatusInactive
}

// HasDiscovered reports whether a location is in the discovered set.
func (s *State) HasDiscovered(locationID string) bool {
	return slices.Contains(s.Discovered, locationID)
}

// Discover adds a location to the discovered set. Idempotent; the set
// is append-only.
func (s *State) Discover(locationID string) {
	if locationID == "" || s.HasDiscovered(locationID) {
		return
	}
	s.Discovered = append(s.Discovered, locationID)
}

// GrantItem merges an item into the inventory. An existing entry with
// the same ID absorbs the quantity and keeps its first-seen name and
// description.
func (s *State) GrantItem(item Item) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range s.Inventory {
		if s.Inventory[i].ID == item.ID {
			s.Inventory[i].Quantity += item.Quantity
			return
		}
	}
	s.Inventory = append(s.Inventory, item)
}

// experienceForLevel is the cumulative experience required to reach a
// level: 100 for level 2, 300 for level 3, 600 for level 4, and so on.
func experienceForLevel(level int) int {
	return 100 * level * (level - 1) / 2
}

// AddExperience adds experience and applies any level-ups, granting
// one skill point per level gained. Negative deltas are ignored;
// experience is monotonically non-decreasing.
func (s *State) AddExperience(delta int) {
	if delta <= 0 {
		return
	}
	s.Experience += delta
	for s.Experience >= experienceForLevel(s.Level+1) {
		s.Level++
		s.SkillPoints++
	}
}

// SpendSkillPoint spends one unspent point to raise a skill by one
// level. The state is unchanged on error.
func (s *State) SpendSkillPoint(skill string) error {
	if skill == "" {
		return fmt.Errorf("skill id is required")
	}
	if s.SkillPoints <= 0 {
		return fmt.Errorf("no skill points available")
	}
	if s.Skills == nil {
		s.Skills = make(map[string]int)
	}
	s.Skills[skill]++
	s.SkillPoints--
	return nil
}
