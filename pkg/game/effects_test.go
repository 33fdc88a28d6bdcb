package game

import (
	"reflect"
	"testing"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/story"
)

func TestApplyEffect_InputNeverMutated(t *testing.T) {
	st := testState()
	st.GrantItem(character.Item{ID: "torch", Name: "Torch"})
	before := st.Clone()

	ApplyEffect(&story.Effect{
		Experience:     50,
		Items:          []story.ItemGrant{{ID: "torch", Quantity: 2}},
		Quests:         map[string]string{"royal_errand": character.StatusActive},
		Relationships:  map[string]int{"warden": 5},
		RevealLocation: "grove",
	}, st)

	if !reflect.DeepEqual(st, before) {
		t.Errorf("ApplyEffect mutated its input:\n got %+v\nwant %+v", st, before)
	}
}

func TestApplyEffect_SameInputSameOutput(t *testing.T) {
	eff := &story.Effect{
		Experience:     25,
		Items:          []story.ItemGrant{{ID: "torch", Name: "Torch", Quantity: 2}},
		Quests:         map[string]string{"royal_errand": character.StatusActive},
		Relationships:  map[string]int{"warden": 5},
		RevealLocation: "grove",
	}
	st := testState()

	first := ApplyEffect(eff, st)
	second := ApplyEffect(eff, st)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Applying the same effect twice diverged:\n%+v\n%+v", first, second)
	}
}

func TestApplyEffect_EmptyEffectIsEqualCopy(t *testing.T) {
	st := testState()
	st.AddExperience(42)

	next := ApplyEffect(nil, st)
	if next == st {
		t.Fatal("Expected a new state value")
	}
	if !reflect.DeepEqual(next, st) {
		t.Errorf("Empty effect changed the state:\n%+v\n%+v", next, st)
	}
}

func TestApplyEffect_Experience(t *testing.T) {
	st := testState()
	next := ApplyEffect(&story.Effect{Experience: 150}, st)

	if next.Experience != 150 {
		t.Errorf("Expected 150 experience, got %d", next.Experience)
	}
	if next.Level != 2 {
		t.Errorf("Expected level-up to 2, got %d", next.Level)
	}
	if st.Experience != 0 {
		t.Errorf("Input state gained experience: %d", st.Experience)
	}
}

func TestApplyEffect_ItemMerge(t *testing.T) {
	st := testState()

	next := ApplyEffect(&story.Effect{
		Items: []story.ItemGrant{{ID: "forest_herbs", Name: "Forest Herbs", Quantity: 2}},
	}, st)
	next = ApplyEffect(&story.Effect{
		Items: []story.ItemGrant{{ID: "forest_herbs", Quantity: 3}},
	}, next)

	if len(next.Inventory) != 1 {
		t.Fatalf("Expected one merged entry, got %d", len(next.Inventory))
	}
	if next.Inventory[0].Quantity != 5 {
		t.Errorf("Expected quantity 5 after 2+3, got %d", next.Inventory[0].Quantity)
	}
	if next.Inventory[0].Name != "Forest Herbs" {
		t.Errorf("Expected first-seen name kept, got %q", next.Inventory[0].Name)
	}
}

func TestApplyEffect_QuestOverwrite(t *testing.T) {
	st := testState()

	next := ApplyEffect(&story.Effect{
		Quests: map[string]string{"royal_errand": character.StatusActive},
	}, st)
	next = ApplyEffect(&story.Effect{
		Quests: map[string]string{"royal_errand": character.StatusCompleted},
	}, next)

	if got := next.QuestStatus("royal_errand"); got != character.StatusCompleted {
		t.Errorf("Expected completed, got %q", got)
	}
}

func TestApplyEffect_RelationshipsAccumulate(t *testing.T) {
	st := testState()

	next := ApplyEffect(&story.Effect{Relationships: map[string]int{"warden": 10}}, st)
	next = ApplyEffect(&story.Effect{Relationships: map[string]int{"warden": -3}}, next)

	if next.Relationships["warden"] != 7 {
		t.Errorf("Expected affinity 7, got %d", next.Relationships["warden"])
	}
}

func TestApplyEffect_RevealIdempotent(t *testing.T) {
	st := testState()
	eff := &story.Effect{RevealLocation: "grove"}

	next := ApplyEffect(eff, st)
	next = ApplyEffect(eff, next)

	count := 0
	for _, loc := range next.Discovered {
		if loc == "grove" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one grove entry, got %d (%v)", count, next.Discovered)
	}
}
