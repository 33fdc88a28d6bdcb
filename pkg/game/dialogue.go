package game

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/npc"
)

// DialogueResult is one step of a conversation: the line the NPC just
// said, the options now open to the player, and the (possibly updated)
// character state. Ended means the conversation is over and control
// returns to the scene with no scene change.
type DialogueResult struct {
	NPCID     string
	Line      string // greeting, option response, or farewell
	SectionID string // section the cursor is in; empty means top level
	Options   []npc.Option
	State     *character.State
	Ended     bool
}

// Talk starts (or restarts) a conversation with an NPC. Conversation
// history is not retained across re-entry: every Talk begins at the
// greeting and the top-level options.
func (e *Engine) Talk(npcID string, st *character.State) (*DialogueResult, error) {
	n, ok := e.content.NPC(npcID)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "npc", ID: npcID}
	}
	return &DialogueResult{
		NPCID:   npcID,
		Line:    n.Dialogue.Greeting,
		Options: n.Dialogue.Options,
		State:   st.Clone(),
	}, nil
}

// TalkOption selects option optionIndex within a dialogue section
// (empty sectionID means the top-level options). Requirement gating
// and effect application mirror scene choices: an unmet requirement
// returns RequirementNotMetError with no effects applied. An option
// whose next pointer is nil ends the conversation.
func (e *Engine) TalkOption(npcID, sectionID string, optionIndex int, st *character.State) (*DialogueResult, error) {
	n, ok := e.content.NPC(npcID)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "npc", ID: npcID}
	}
	options, ok := n.OptionsFor(sectionID)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "section", ID: sectionID}
	}
	if optionIndex < 0 || optionIndex >= len(options) {
		return nil, ErrInvalidChoice
	}
	option := options[optionIndex]

	if result := e.Evaluate(option.Requirements, st); !result.Satisfied {
		return nil, &RequirementNotMetError{Reason: result.Reason}
	}

	next := ApplyEffect(option.Effects, st)

	if option.Next == nil {
		return &DialogueResult{
			NPCID: npcID,
			Line:  option.Response,
			State: next,
			Ended: true,
		}, nil
	}

	nextOptions, ok := n.OptionsFor(*option.Next)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "section", ID: *option.Next}
	}

	return &DialogueResult{
		NPCID:     npcID,
		Line:      option.Response,
		SectionID: *option.Next,
		Options:   nextOptions,
		State:     next,
	}, nil
}
