package story

// Story is the top-level narrative content for a playthrough.
// It is loaded once at process start and never mutated.
type Story struct {
	Title            string           `json:"title"`                       // Name of the story
	StartingScene    string           `json:"starting_scene"`              // Scene ID where new characters begin
	StartingLocation string           `json:"starting_location,omitempty"` // Map location where new characters begin
	Scenes           map[string]Scene `json:"scenes"`                      // Map of scene IDs to scenes
}

// SceneCharacter is a character shown in a scene. Display only;
// interactive conversation goes through the NPC dialogue trees.
type SceneCharacter struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Scene is a single narrative beat: description text plus the choices
// the player can take from it.
type Scene struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image,omitempty"`    // Path to scene artwork
	Location    string           `json:"location,omitempty"` // Map location this scene belongs to
	Characters  []SceneCharacter `json:"characters,omitempty"`
	Choices     []Choice         `json:"choices,omitempty"`
}

// ChoiceKind identifies what taking a choice does.
type ChoiceKind int

const (
	ChoiceKindInvalid ChoiceKind = iota
	ChoiceKindScene              // plain transition to NextScene
	ChoiceKindSkillCheck
	ChoiceKindShowMap
)

// Choice is a player-selectable action in a scene. Exactly one of
// NextScene, SkillCheck, or ShowMap must be set. Requirements and
// Consequences are independent of the kind.
type Choice struct {
	Text         string       `json:"text"`
	NextScene    string       `json:"next_scene,omitempty"`
	SkillCheck   *SkillCheck  `json:"skill_check,omitempty"`
	ShowMap      bool         `json:"show_map,omitempty"`
	Requirements *Requirement `json:"requirements,omitempty"`
	Consequences *Effect      `json:"consequences,omitempty"`
}

// Kind reports which of the three choice shapes this is.
// ChoiceKindInvalid means zero or more than one shape is set, which
// content validation rejects before the engine ever sees it.
func (c *Choice) Kind() ChoiceKind {
	set := 0
	kind := ChoiceKindInvalid
	if c.NextScene != "" {
		set++
		kind = ChoiceKindScene
	}
	if c.SkillCheck != nil {
		set++
		kind = ChoiceKindSkillCheck
	}
	if c.ShowMap {
		set++
		kind = ChoiceKindShowMap
	}
	if set != 1 {
		return ChoiceKindInvalid
	}
	return kind
}

// SkillCheck is a gated branch resolved by comparing the character's
// skill level against Difficulty. Resolution is deterministic: no dice.
type SkillCheck struct {
	Skill               string  `json:"skill"`
	Difficulty          int     `json:"difficulty"`
	SuccessScene        string  `json:"success_scene"`
	FailScene           string  `json:"fail_scene"`
	SuccessConsequences *Effect `json:"success_consequences,omitempty"`
	FailConsequences    *Effect `json:"fail_consequences,omitempty"`
}
