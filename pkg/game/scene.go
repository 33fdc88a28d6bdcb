package game

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

// ChooseResult is the outcome of resolving a scene choice. State is
// the committed character state (a new value; the input is untouched).
// NavigationRequested means the choice opened the map instead of
// changing scene. Check is set when a skill check decided the route.
type ChooseResult struct {
	State               *character.State
	NavigationRequested bool
	Check               *CheckResult
}

// Choose resolves choice choiceIndex of scene sceneID against the
// character state and commits the transition.
//
// Gating happens before any effect: an unmet requirement returns
// RequirementNotMetError and the original state, with no partial
// effects applied. Skill-check choices route to their success or fail
// scene and apply that branch's consequences after the choice's own.
func (e *Engine) Choose(sceneID string, choiceIndex int, st *character.State) (*ChooseResult, error) {
	scene, ok := e.content.Scene(sceneID)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "scene", ID: sceneID}
	}
	if choiceIndex < 0 || choiceIndex >= len(scene.Choices) {
		return nil, ErrInvalidChoice
	}
	choice := &scene.Choices[choiceIndex]

	if result := e.Evaluate(choice.Requirements, st); !result.Satisfied {
		return nil, &RequirementNotMetError{Reason: result.Reason}
	}

	var (
		nextScene string
		check     *CheckResult
		branch    *story.Effect
	)
	switch choice.Kind() {
	case story.ChoiceKindSkillCheck:
		resolved := ResolveSkillCheck(*choice.SkillCheck, st)
		check = &resolved
		if resolved.Outcome == OutcomeSuccess {
			nextScene = choice.SkillCheck.SuccessScene
			branch = choice.SkillCheck.SuccessConsequences
		} else {
			nextScene = choice.SkillCheck.FailScene
			branch = choice.SkillCheck.FailConsequences
		}
		if _, ok := e.content.Scene(nextScene); !ok {
			return nil, &DanglingReferenceError{Kind: "scene", ID: nextScene}
		}

	case story.ChoiceKindShowMap:
		next := ApplyEffect(choice.Consequences, st)
		return &ChooseResult{State: next, NavigationRequested: true}, nil

	case story.ChoiceKindScene:
		nextScene = choice.NextScene
		if _, ok := e.content.Scene(nextScene); !ok {
			return nil, &DanglingReferenceError{Kind: "scene", ID: nextScene}
		}

	default:
		// Load-time validation rejects malformed choices; reaching this
		// means content bypassed it.
		e.logger.Error("choice has no valid kind", "scene", sceneID, "choice", choiceIndex)
		return nil, ErrInvalidChoice
	}

	next := ApplyEffect(choice.Consequences, st)
	if branch != nil {
		next = ApplyEffect(branch, next)
	}
	next.CurrentSceneID = nextScene

	return &ChooseResult{State: next, Check: check}, nil
}
