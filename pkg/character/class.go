package character

// StartingStats are the base pools a class begins with.
type StartingStats struct {
	Health  int `json:"health"`
	Stamina int `json:"stamina"`
	Mana    int `json:"mana"`
}

// Ability is a class ability unlocked at a character level.
type Ability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnlockLevel int    `json:"unlock_level"`
}

// Class is a playable character class template. Class content is
// immutable; a character copies its starting skills at creation.
type Class struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Portrait       string         `json:"portrait,omitempty"`
	StartingStats  StartingStats  `json:"starting_stats"`
	StartingSkills map[string]int `json:"starting_skills"`
	Abilities      []Ability      `json:"abilities,omitempty"`
}

// AbilitiesAtLevel returns the class abilities unlocked at or below
// the given character level, in declaration order.
func (c *Class) AbilitiesAtLevel(level int) []Ability {
	var unlocked []Ability
	for _, a := range c.Abilities {
		if a.UnlockLevel <= level {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// SkillInfo describes one entry in the skills catalog. The catalog is
// display metadata; skill levels live on the character.
type SkillInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"` // e.g. "combat", "social", "stealth"
	Icon        string `json:"icon,omitempty"`
}
