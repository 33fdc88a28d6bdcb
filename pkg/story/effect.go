package story

// ItemGrant adds an item to the character's inventory. Grants with an
// ID already present in the inventory merge into the existing entry.
type ItemGrant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity,omitempty"` // defaults to 1 when omitted
	Description string `json:"description,omitempty"`
}

// Effect is the consequence of taking a choice or dialogue option.
// All fields are optional; the zero value is a no-op.
type Effect struct {
	Experience     int               `json:"experience,omitempty"`
	Items          []ItemGrant       `json:"items,omitempty"`
	Quests         map[string]string `json:"quests,omitempty"`          // quest ID -> new status
	Relationships  map[string]int    `json:"relationships,omitempty"`   // NPC ID -> affinity delta
	RevealLocation string            `json:"reveal_location,omitempty"` // location ID added to discovered set
}

// IsEmpty reports whether applying the effect would change nothing.
func (e *Effect) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.Experience == 0 &&
		len(e.Items) == 0 &&
		len(e.Quests) == 0 &&
		len(e.Relationships) == 0 &&
		e.RevealLocation == ""
}
