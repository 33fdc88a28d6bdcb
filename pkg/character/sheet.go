package character

import (
	"fmt"
	"maps"

	"github.com/jwebster45206/d20"
)

// BaseAC is the armor class of an unarmored character.
const BaseAC = 10

// BuildActor builds a d20.Actor view of a character for presentation:
// HP from the class health pool, AC derived from the agility skill,
// attributes from class starting skills overlaid with the character's
// current skills.
func BuildActor(st *State, class *Class) (*d20.Actor, error) {
	if st == nil {
		return nil, fmt.Errorf("state cannot be nil")
	}

	attrs := make(map[string]int)
	hp := 10
	if class != nil {
		maps.Copy(attrs, class.StartingSkills)
		if class.StartingStats.Health > 0 {
			hp = class.StartingStats.Health
		}
	}
	maps.Copy(attrs, st.Skills)

	actor, err := d20.NewActor(st.ID.String()).
		WithHP(hp).
		WithAC(BaseAC + st.SkillLevel("agility")).
		WithAttributes(attrs).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}
	return actor, nil
}

// Sheet is the presentation view of a character derived from its
// state, class, and d20 actor.
type Sheet struct {
	Name        string         `json:"name"`
	ClassName   string         `json:"class_name,omitempty"`
	Level       int            `json:"level"`
	Experience  int            `json:"experience"`
	NextLevelAt int            `json:"next_level_at"`
	SkillPoints int            `json:"skill_points"`
	HP          int            `json:"hp"`
	AC          int            `json:"ac"`
	Skills      map[string]int `json:"skills,omitempty"`
	Abilities   []Ability      `json:"abilities,omitempty"`
	Inventory   []Item         `json:"inventory,omitempty"`
}

// BuildSheet assembles the character sheet for a state.
func BuildSheet(st *State, class *Class) (*Sheet, error) {
	actor, err := BuildActor(st, class)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Name:        st.Name,
		Level:       st.Level,
		Experience:  st.Experience,
		NextLevelAt: experienceForLevel(st.Level + 1),
		SkillPoints: st.SkillPoints,
		HP:          actor.MaxHP(),
		AC:          actor.AC(),
		Skills:      maps.Clone(st.Skills),
		Inventory:   st.Inventory,
	}
	if class != nil {
		sheet.ClassName = class.Name
		sheet.Abilities = class.AbilitiesAtLevel(st.Level)
	}
	return sheet, nil
}
