package story

// Requirement is a conjunction of gating clauses checked against
// character state before a transition is allowed. All present clauses
// must hold; an absent clause is simply not checked. A nil or empty
// Requirement is trivially satisfied.
type Requirement struct {
	Skills        map[string]int    `json:"skills,omitempty"`         // skill ID -> minimum level
	Items         []string          `json:"items,omitempty"`          // item IDs that must be present (not consumed)
	Quests        map[string]string `json:"quests,omitempty"`         // quest ID -> required status
	MinExperience *int              `json:"min_experience,omitempty"` // minimum total experience
	Locations     []string          `json:"locations,omitempty"`      // location IDs that must already be discovered
	Hint          string            `json:"hint,omitempty"`           // author-supplied text shown when the gate fails
}

// IsEmpty reports whether the requirement checks nothing at all.
func (r *Requirement) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Skills) == 0 &&
		len(r.Items) == 0 &&
		len(r.Quests) == 0 &&
		r.MinExperience == nil &&
		len(r.Locations) == 0
}
