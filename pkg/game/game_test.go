package game

import (
	"log/slog"
	"os"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/content"
	"github.com/jwebster45206/forgotten-kingdom/pkg/npc"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
	"github.com/jwebster45206/forgotten-kingdom/pkg/worldmap"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func strPtr(s string) *string { return &s }

// testContent builds a small self-consistent world: a gatehouse hub
// with gated choices, a market, a keep behind a visible quest gate, a
// hidden catacombs connection, and a grove that must be revealed
// before it can be traveled to.
func testContent() *content.Content {
	return &content.Content{
		Story: story.Story{
			Title:            "Test Story",
			StartingScene:    "gatehouse",
			StartingLocation: "gatehouse",
			Scenes: map[string]story.Scene{
				"gatehouse": {
					Title:       "The Gatehouse",
					Description: "A squat stone gatehouse guards the road.",
					Location:    "gatehouse",
					Choices: []story.Choice{
						{
							Text:         "Slip through the postern",
							NextScene:    "courtyard",
							Consequences: &story.Effect{Experience: 10},
						},
						{
							Text:      "Open the iron door",
							NextScene: "vault",
							Requirements: &story.Requirement{
								Items: []string{"iron_key"},
								Hint:  "The iron door is locked.",
							},
							Consequences: &story.Effect{Experience: 50},
						},
						{
							Text: "Talk your way past the guard",
							SkillCheck: &story.SkillCheck{
								Skill:               "persuasion",
								Difficulty:          2,
								SuccessScene:        "courtyard",
								FailScene:           "turned_away",
								SuccessConsequences: &story.Effect{Experience: 5},
								FailConsequences:    &story.Effect{Relationships: map[string]int{"warden": -5}},
							},
						},
						{
							Text:         "Consult your map",
							ShowMap:      true,
							Consequences: &story.Effect{Experience: 1},
						},
					},
				},
				"courtyard": {
					Title:       "The Courtyard",
					Description: "Inside the walls at last.",
					Location:    "gatehouse",
					Choices: []story.Choice{
						{Text: "Return to the gate", NextScene: "gatehouse"},
					},
				},
				"vault": {
					Title:       "The Vault",
					Description: "Shelves of dusty strongboxes.",
					Location:    "gatehouse",
					Choices: []story.Choice{
						{Text: "Return to the gate", NextScene: "gatehouse"},
					},
				},
				"turned_away": {
					Title:       "Turned Away",
					Description: "The guard is unmoved.",
					Location:    "gatehouse",
					Choices: []story.Choice{
						{Text: "Return to the gate", NextScene: "gatehouse"},
					},
				},
				"market_row": {
					Title:       "Market Row",
					Description: "Stalls and shouting.",
					Location:    "market",
					Choices: []story.Choice{
						{Text: "Travel", ShowMap: true},
					},
				},
				"catacomb_gate": {
					Title:       "Catacomb Gate",
					Description: "Cold air rises from below.",
					Location:    "catacombs",
					Choices: []story.Choice{
						{Text: "Travel", ShowMap: true},
					},
				},
				"keep_gate": {
					Title:       "The Keep",
					Description: "Banners snap above the keep.",
					Location:    "keep",
					Choices: []story.Choice{
						{Text: "Travel", ShowMap: true},
					},
				},
				"grove_heart": {
					Title:       "Heart of the Grove",
					Description: "Old trees lean close together.",
					Location:    "grove",
					Choices: []story.Choice{
						{Text: "Travel", ShowMap: true},
					},
				},
			},
		},
		NPCs: map[string]npc.NPC{
			"warden": {
				ID:       "warden",
				Name:     "Warden Hale",
				Location: "gatehouse",
				Dialogue: npc.Dialogue{
					Greeting: "State your business.",
					Farewell: "Move along.",
					Options: []npc.Option{
						{
							Text:     "Any news on the road?",
							Response: "Plenty, if you know who to ask.",
							Next:     strPtr("rumors"),
						},
						{
							Text:     "Surely you can make an exception for me.",
							Response: "Hmph. Maybe I can, at that.",
							Next:     nil,
							Requirements: &story.Requirement{
								Skills: map[string]int{"persuasion": 2},
								Hint:   "The warden is not easily charmed.",
							},
							Effects: &story.Effect{Experience: 10},
						},
						{
							Text:     "Nothing. Good day.",
							Response: "Move along, then.",
							Next:     nil,
						},
					},
					Sections: map[string]npc.Section{
						"rumors": {
							Options: []npc.Option{
								{
									Text:     "I could run an errand for the crown.",
									Response: "Take this writ to the keep, then.",
									Next:     nil,
									Effects: &story.Effect{
										Quests:        map[string]string{"royal_errand": "active"},
										Relationships: map[string]int{"warden": 5},
									},
								},
								{
									Text:     "Tell me more.",
									Response: "Always more to tell.",
									Next:     strPtr("rumors"),
								},
							},
						},
					},
				},
			},
		},
		Map: worldmap.Map{
			Locations: []worldmap.Location{
				{ID: "gatehouse", Name: "Gatehouse", Scene: "gatehouse"},
				{ID: "market", Name: "Market", Scene: "market_row"},
				{ID: "catacombs", Name: "Catacombs", Scene: "catacomb_gate"},
				{ID: "keep", Name: "The Keep", Scene: "keep_gate"},
				{
					ID: "grove", Name: "The Grove", Scene: "grove_heart",
					Discovery: &story.Requirement{
						Locations: []string{"grove"},
						Hint:      "You have not heard of the grove.",
					},
				},
			},
			Connections: []worldmap.Connection{
				{From: "gatehouse", To: "market", Bidirectional: true},
				{
					From: "gatehouse", To: "keep", Bidirectional: true,
					Requirement: &story.Requirement{
						Quests: map[string]string{"royal_errand": "active"},
						Hint:   "The keep admits only those on royal business.",
					},
				},
				{
					From: "gatehouse", To: "catacombs", Hidden: true,
					Requirement: &story.Requirement{
						Items: []string{"bone_charm"},
						Hint:  "The catacomb door does not open for the living.",
					},
				},
				{From: "market", To: "grove", Bidirectional: true},
			},
		},
		Classes: []character.Class{
			{
				ID:   "scout",
				Name: "Scout",
				StartingStats: character.StartingStats{
					Health: 90, Stamina: 110, Mana: 30,
				},
				StartingSkills: map[string]int{"perception": 2, "stealth": 2},
			},
		},
		Skills: map[string]character.SkillInfo{
			"persuasion": {Name: "Persuasion"},
			"perception": {Name: "Perception"},
			"stealth":    {Name: "Stealth"},
		},
	}
}

func testEngine() *Engine {
	return NewEngine(testContent(), testLogger())
}

func testState() *character.State {
	return character.New("Tester", nil, "gatehouse", "gatehouse")
}
