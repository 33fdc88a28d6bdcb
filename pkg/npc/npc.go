package npc

import "github.com/jwebster45206/forgotten-kingdom/pkg/story"

// NPC is a conversational non-player character with a branching
// dialogue tree. NPC content is immutable; per-character disposition
// lives in the character's relationship scores.
type NPC struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Portrait    string   `json:"portrait,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"` // map location where the NPC can be talked to
	Dialogue    Dialogue `json:"dialogue"`
}

// Dialogue is an NPC's conversation graph: a greeting, a top-level
// option list, and named sections reachable via option Next pointers.
type Dialogue struct {
	Greeting string             `json:"greeting"`
	Farewell string             `json:"farewell,omitempty"`
	Options  []Option           `json:"options"`
	Sections map[string]Section `json:"sections,omitempty"`
}

// Section is a named sub-tree of the conversation graph.
type Section struct {
	Options []Option `json:"options"`
}

// Option is one selectable line of dialogue. Next names the section to
// descend into; nil ends the conversation.
type Option struct {
	Text         string             `json:"text"`
	Response     string             `json:"response"`
	Next         *string            `json:"next"`
	Requirements *story.Requirement `json:"requirements,omitempty"`
	Effects      *story.Effect      `json:"effects,omitempty"`
}

// OptionsFor returns the option list for a section ID, or the
// top-level options when sectionID is empty.
func (n *NPC) OptionsFor(sectionID string) ([]Option, bool) {
	if sectionID == "" {
		return n.Dialogue.Options, true
	}
	section, ok := n.Dialogue.Sections[sectionID]
	if !ok {
		return nil, false
	}
	return section.Options, true
}
