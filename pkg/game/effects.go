package game

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

// ApplyEffect folds an effect into character state and returns the new
// state. The input is never mutated; callers can keep the old state
// for rollback or comparison.
//
// Field order within one effect: experience (with level-ups), item
// grants merged by id, quest status overwrites, relationship deltas,
// location reveal. An empty effect returns an equal copy.
func ApplyEffect(eff *story.Effect, st *character.State) *character.State {
	next := st.Clone()
	if eff.IsEmpty() {
		return next
	}

	next.AddExperience(eff.Experience)

	for _, grant := range eff.Items {
		next.GrantItem(character.Item{
			ID:          grant.ID,
			Name:        grant.Name,
			Quantity:    grant.Quantity,
			Description: grant.Description,
		})
	}

	for questID, status := range eff.Quests {
		if next.Quests == nil {
			next.Quests = make(map[string]string)
		}
		next.Quests[questID] = status
	}

	for npcID, delta := range eff.Relationships {
		if next.Relationships == nil {
			next.Relationships = make(map[string]int)
		}
		next.Relationships[npcID] += delta
	}

	next.Discover(eff.RevealLocation)

	return next
}
