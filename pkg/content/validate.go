package content

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/npc"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validator collects content defects during the load-time validation
// pass. Errors are broken-graph defects that must stop the load;
// warnings are authoring smells logged through the diagnostic channel.
type Validator struct {
	logger *slog.Logger
	errors []string
}

// NewValidator creates a validator. The logger receives warnings for
// non-fatal authoring smells; nil disables warning output.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

func (v *Validator) errorf(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warn(msg string, args ...any) {
	v.logger.Warn(msg, args...)
}

// Validate runs the full content validation pass. It returns an error
// joining every defect found, so authors see all problems in one run.
func (v *Validator) Validate(c *Content) error {
	v.errors = nil

	v.validateStory(c)
	v.validateNPCs(c)
	v.validateMap(c)
	v.validateClasses(c)

	if len(v.errors) > 0 {
		return fmt.Errorf("content validation failed:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *Validator) validateStory(c *Content) {
	s := &c.Story

	if s.StartingScene == "" {
		v.errorf("story: starting_scene is required")
	} else if _, ok := s.Scenes[s.StartingScene]; !ok {
		v.errorf("story: starting_scene %q does not exist", s.StartingScene)
	}
	if s.StartingLocation != "" {
		if _, ok := c.Map.LocationByID(s.StartingLocation); !ok {
			v.errorf("story: starting_location %q does not exist", s.StartingLocation)
		}
	}

	for id, scene := range s.Scenes {
		if !idPattern.MatchString(id) {
			v.errorf("scene %q: id must be lowercase snake_case", id)
		}
		if scene.Location != "" {
			if _, ok := c.Map.LocationByID(scene.Location); !ok {
				v.errorf("scene %q: location %q does not exist", id, scene.Location)
			}
		}
		if len(scene.Choices) == 0 {
			// Dead ends are valid terminal leaves, but usually a mistake.
			v.warn("scene has no choices", "scene", id)
		}
		for i := range scene.Choices {
			v.validateChoice(c, id, i, &scene.Choices[i])
		}
	}
}

func (v *Validator) validateChoice(c *Content, sceneID string, idx int, choice *story.Choice) {
	switch choice.Kind() {
	case story.ChoiceKindScene:
		if _, ok := c.Story.Scenes[choice.NextScene]; !ok {
			v.errorf("scene %q choice %d: next_scene %q does not exist", sceneID, idx, choice.NextScene)
		}
	case story.ChoiceKindSkillCheck:
		check := choice.SkillCheck
		if check.Skill == "" {
			v.errorf("scene %q choice %d: skill_check requires a skill", sceneID, idx)
		} else if _, ok := c.Skills[check.Skill]; !ok && len(c.Skills) > 0 {
			v.warn("skill check uses a skill not in the catalog", "scene", sceneID, "choice", idx, "skill", check.Skill)
		}
		if check.Difficulty < 0 {
			v.errorf("scene %q choice %d: skill_check difficulty must not be negative", sceneID, idx)
		}
		if _, ok := c.Story.Scenes[check.SuccessScene]; !ok {
			v.errorf("scene %q choice %d: success_scene %q does not exist", sceneID, idx, check.SuccessScene)
		}
		if _, ok := c.Story.Scenes[check.FailScene]; !ok {
			v.errorf("scene %q choice %d: fail_scene %q does not exist", sceneID, idx, check.FailScene)
		}
	case story.ChoiceKindShowMap:
		// Nothing further to check; destinations are validated with the map.
	default:
		v.errorf("scene %q choice %d: exactly one of next_scene, skill_check, show_map must be set", sceneID, idx)
	}

	v.validateRequirement(c, fmt.Sprintf("scene %q choice %d", sceneID, idx), choice.Requirements)
	v.validateEffect(c, fmt.Sprintf("scene %q choice %d", sceneID, idx), choice.Consequences)
	if choice.SkillCheck != nil {
		v.validateEffect(c, fmt.Sprintf("scene %q choice %d (success)", sceneID, idx), choice.SkillCheck.SuccessConsequences)
		v.validateEffect(c, fmt.Sprintf("scene %q choice %d (fail)", sceneID, idx), choice.SkillCheck.FailConsequences)
	}
}

func (v *Validator) validateRequirement(c *Content, where string, req *story.Requirement) {
	if req == nil {
		return
	}
	for skill := range req.Skills {
		if _, ok := c.Skills[skill]; !ok && len(c.Skills) > 0 {
			v.warn("requirement uses a skill not in the catalog", "where", where, "skill", skill)
		}
	}
	for quest, status := range req.Quests {
		if !character.ValidQuestStatus(status) {
			v.errorf("%s: requirement quest %q has invalid status %q", where, quest, status)
		}
	}
	for _, loc := range req.Locations {
		if _, ok := c.Map.LocationByID(loc); !ok {
			v.errorf("%s: requirement location %q does not exist", where, loc)
		}
	}
}

func (v *Validator) validateEffect(c *Content, where string, eff *story.Effect) {
	if eff == nil {
		return
	}
	for _, item := range eff.Items {
		if item.ID == "" {
			v.errorf("%s: effect item grant missing id", where)
		}
	}
	for quest, status := range eff.Quests {
		if !character.ValidQuestStatus(status) {
			v.errorf("%s: effect quest %q has invalid status %q", where, quest, status)
		}
	}
	if eff.RevealLocation != "" {
		if _, ok := c.Map.LocationByID(eff.RevealLocation); !ok {
			v.errorf("%s: reveal_location %q does not exist", where, eff.RevealLocation)
		}
	}
}

func (v *Validator) validateNPCs(c *Content) {
	for id, n := range c.NPCs {
		if n.ID != "" && n.ID != id {
			v.errorf("npc %q: id field %q does not match key", id, n.ID)
		}
		if n.Location != "" {
			if _, ok := c.Map.LocationByID(n.Location); !ok {
				v.errorf("npc %q: location %q does not exist", id, n.Location)
			}
		}
		v.validateOptions(c, fmt.Sprintf("npc %q", id), &n, n.Dialogue.Options)
		for section, s := range n.Dialogue.Sections {
			v.validateOptions(c, fmt.Sprintf("npc %q section %q", id, section), &n, s.Options)
		}
	}
}

func (v *Validator) validateOptions(c *Content, where string, n *npc.NPC, options []npc.Option) {
	for i, opt := range options {
		if opt.Next != nil {
			if _, ok := n.Dialogue.Sections[*opt.Next]; !ok {
				v.errorf("%s option %d: next section %q does not exist", where, i, *opt.Next)
			}
		}
		v.validateRequirement(c, fmt.Sprintf("%s option %d", where, i), opt.Requirements)
		v.validateEffect(c, fmt.Sprintf("%s option %d", where, i), opt.Effects)
	}
}

func (v *Validator) validateMap(c *Content) {
	seen := make(map[string]bool)
	for _, loc := range c.Map.Locations {
		if !idPattern.MatchString(loc.ID) {
			v.errorf("location %q: id must be lowercase snake_case", loc.ID)
		}
		if seen[loc.ID] {
			v.errorf("location %q: duplicate id", loc.ID)
		}
		seen[loc.ID] = true
		if loc.Scene != "" {
			if _, ok := c.Story.Scenes[loc.Scene]; !ok {
				v.errorf("location %q: scene %q does not exist", loc.ID, loc.Scene)
			}
		}
		v.validateRequirement(c, fmt.Sprintf("location %q discovery", loc.ID), loc.Discovery)
	}

	for i, conn := range c.Map.Connections {
		if !seen[conn.From] {
			v.errorf("connection %d: from %q does not exist", i, conn.From)
		}
		if !seen[conn.To] {
			v.errorf("connection %d: to %q does not exist", i, conn.To)
		}
		v.validateRequirement(c, fmt.Sprintf("connection %d (%s -> %s)", i, conn.From, conn.To), conn.Requirement)
	}
}

func (v *Validator) validateClasses(c *Content) {
	seen := make(map[string]bool)
	for _, class := range c.Classes {
		if class.ID == "" {
			v.errorf("class %q: id is required", class.Name)
			continue
		}
		if seen[class.ID] {
			v.errorf("class %q: duplicate id", class.ID)
		}
		seen[class.ID] = true
		for skill := range class.StartingSkills {
			if _, ok := c.Skills[skill]; !ok && len(c.Skills) > 0 {
				v.warn("class starting skill not in the catalog", "class", class.ID, "skill", skill)
			}
		}
	}
}
