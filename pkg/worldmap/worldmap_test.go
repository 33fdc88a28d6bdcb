package worldmap

import "testing"

func TestLocationByID(t *testing.T) {
	m := &Map{
		Locations: []Location{
			{ID: "harbor", Name: "The Harbor"},
			{ID: "lighthouse", Name: "The Lighthouse"},
		},
	}

	loc, ok := m.LocationByID("lighthouse")
	if !ok || loc.Name != "The Lighthouse" {
		t.Errorf("Expected lighthouse, got %+v, %v", loc, ok)
	}
	if _, ok := m.LocationByID("atlantis"); ok {
		t.Error("Expected lookup to fail for unknown id")
	}
}

func TestSceneFor(t *testing.T) {
	bound := Location{ID: "harbor", Scene: "harbor_docks"}
	if got := bound.SceneFor(); got != "harbor_docks" {
		t.Errorf("Expected explicit binding, got %q", got)
	}

	unbound := Location{ID: "lighthouse"}
	if got := unbound.SceneFor(); got != "lighthouse" {
		t.Errorf("Expected fallback to the location id, got %q", got)
	}
}
