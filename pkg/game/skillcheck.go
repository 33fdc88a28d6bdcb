package game

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

// Outcome tags a resolved skill check.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// CheckResult is the outcome of a skill check plus the determinant
// used: the level the character brought and the threshold it was
// measured against.
type CheckResult struct {
	Skill     string  `json:"skill"`
	Outcome   Outcome `json:"outcome"`
	Level     int     `json:"level"`
	Threshold int     `json:"threshold"`
}

// ResolveSkillCheck resolves a skill check deterministically: success
// iff the character's skill level meets the difficulty. A missing
// skill behaves as level 0. There are no dice; the same state always
// resolves the same way, which keeps playthroughs replayable.
//
// The resolver never applies effects; branch consequences belong to
// the caller after the route is chosen.
func ResolveSkillCheck(check story.SkillCheck, st *character.State) CheckResult {
	level := st.SkillLevel(check.Skill)
	result := CheckResult{
		Skill:     check.Skill,
		Level:     level,
		Threshold: check.Difficulty,
		Outcome:   OutcomeFailure,
	}
	if level >= check.Difficulty {
		result.Outcome = OutcomeSuccess
	}
	return result
}
