package handlers

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/game"
	"github.com/jwebster45206/forgotten-kingdom/pkg/npc"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// ChoiceView is one choice as presented to the player: gated choices
// are listed but flagged unavailable with the failure reason, so the
// UI can show what the character is missing.
type ChoiceView struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// SceneView is the structured result of any action that lands on a
// scene: the scene content, the player's options, and the state.
type SceneView struct {
	SceneID     string                 `json:"scene_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Image       string                 `json:"image,omitempty"`
	Characters  []story.SceneCharacter `json:"characters,omitempty"`
	Choices     []ChoiceView           `json:"choices"`
	Check       *game.CheckResult      `json:"check,omitempty"` // set when a skill check routed here
	State       *character.State       `json:"state"`
}

// DestinationView is one travel target on the map screen.
type DestinationView struct {
	LocationID  string `json:"location_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	X           int    `json:"x,omitempty"`
	Y           int    `json:"y,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Locked      bool   `json:"locked,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// MapView is the structured result of a navigation request.
type MapView struct {
	CurrentLocationID string            `json:"current_location_id"`
	Destinations      []DestinationView `json:"destinations"`
	State             *character.State  `json:"state"`
}

// OptionView is one dialogue option as presented to the player.
type OptionView struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// DialogueView is one step of a conversation.
type DialogueView struct {
	NPCID     string           `json:"npc_id"`
	NPCName   string           `json:"npc_name"`
	Portrait  string           `json:"portrait,omitempty"`
	Line      string           `json:"line"`
	SectionID string           `json:"section_id,omitempty"`
	Options   []OptionView     `json:"options,omitempty"`
	Ended     bool             `json:"ended,omitempty"`
	State     *character.State `json:"state"`
}

func buildSceneView(engine *game.Engine, st *character.State, check *game.CheckResult) (*SceneView, error) {
	scene, ok := engine.Content().Scene(st.CurrentSceneID)
	if !ok {
		return nil, &game.DanglingReferenceError{Kind: "scene", ID: st.CurrentSceneID}
	}

	view := &SceneView{
		SceneID:     st.CurrentSceneID,
		Title:       scene.Title,
		Description: scene.Description,
		Image:       scene.Image,
		Characters:  scene.Characters,
		Choices:     make([]ChoiceView, 0, len(scene.Choices)),
		Check:       check,
		State:       st,
	}
	for i := range scene.Choices {
		result := engine.Evaluate(scene.Choices[i].Requirements, st)
		view.Choices = append(view.Choices, ChoiceView{
			Index:     i,
			Text:      scene.Choices[i].Text,
			Available: result.Satisfied,
			Reason:    result.Reason,
		})
	}
	return view, nil
}

func buildMapView(destinations []game.Destination, st *character.State) *MapView {
	view := &MapView{
		CurrentLocationID: st.CurrentLocationID,
		Destinations:      make([]DestinationView, 0, len(destinations)),
		State:             st,
	}
	for _, d := range destinations {
		view.Destinations = append(view.Destinations, DestinationView{
			LocationID:  d.Location.ID,
			Name:        d.Location.Name,
			Description: d.Location.Description,
			X:           d.Location.X,
			Y:           d.Location.Y,
			Icon:        d.Location.Icon,
			Locked:      d.Locked,
			Reason:      d.Reason,
		})
	}
	return view
}

func buildDialogueView(engine *game.Engine, n *npc.NPC, result *game.DialogueResult) *DialogueView {
	view := &DialogueView{
		NPCID:     result.NPCID,
		NPCName:   n.Name,
		Portrait:  n.Portrait,
		Line:      result.Line,
		SectionID: result.SectionID,
		Ended:     result.Ended,
		State:     result.State,
	}
	for i, opt := range result.Options {
		eval := engine.Evaluate(opt.Requirements, result.State)
		view.Options = append(view.Options, OptionView{
			Index:     i,
			Text:      opt.Text,
			Available: eval.Satisfied,
			Reason:    eval.Reason,
		})
	}
	return view
}
