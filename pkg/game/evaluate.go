package game

import (
	"fmt"
	"sort"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

// EvalResult is the outcome of evaluating a requirement against
// character state. Reason is set only when Satisfied is false.
type EvalResult struct {
	Satisfied bool   `json:"satisfied"`
	Reason    string `json:"reason,omitempty"`
}

func satisfied() EvalResult {
	return EvalResult{Satisfied: true}
}

func notMet(req *story.Requirement, fallback string) EvalResult {
	reason := fallback
	if req.Hint != "" {
		reason = req.Hint
	}
	return EvalResult{Satisfied: false, Reason: reason}
}

// Evaluate checks a requirement against character state. All clauses
// must hold; the first failing clause supplies the reason, with the
// author's hint taking precedence over the generated label. A nil or
// empty requirement is trivially satisfied, so content that omits the
// gate entirely costs nothing.
//
// Clauses with malformed values (e.g. an unknown quest status) are
// logged and skipped rather than failing the evaluation, so a content
// typo degrades to an open gate instead of a dead playthrough.
func (e *Engine) Evaluate(req *story.Requirement, st *character.State) EvalResult {
	if req.IsEmpty() {
		return satisfied()
	}

	for _, skill := range sortedKeys(req.Skills) {
		minLevel := req.Skills[skill]
		if st.SkillLevel(skill) < minLevel {
			return notMet(req, fmt.Sprintf("Requires %s %d", story.DisplayName(skill), minLevel))
		}
	}

	for _, itemID := range req.Items {
		if !st.HasItem(itemID) {
			return notMet(req, fmt.Sprintf("Requires %s", story.DisplayName(itemID)))
		}
	}

	for _, questID := range sortedKeys(req.Quests) {
		want := req.Quests[questID]
		if !character.ValidQuestStatus(want) {
			e.logger.Warn("requirement has malformed quest status, skipping clause",
				"quest", questID, "status", want)
			continue
		}
		if st.QuestStatus(questID) != want {
			return notMet(req, fmt.Sprintf("Requires quest %s to be %s", story.DisplayName(questID), want))
		}
	}

	if req.MinExperience != nil && st.Experience < *req.MinExperience {
		return notMet(req, fmt.Sprintf("Requires %d experience", *req.MinExperience))
	}

	for _, locationID := range req.Locations {
		if !st.HasDiscovered(locationID) {
			return notMet(req, fmt.Sprintf("Requires knowledge of %s", story.DisplayName(locationID)))
		}
	}

	return satisfied()
}

// sortedKeys gives a stable clause order for map-backed clauses, so
// the failing reason is deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
