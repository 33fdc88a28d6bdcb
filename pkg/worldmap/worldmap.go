package worldmap

import "github.com/jwebster45206/forgotten-kingdom/pkg/story"

// Map is the world map: locations and the connections between them.
// Slices preserve content declaration order, which is the order
// destinations are offered to the player.
type Map struct {
	Image       string       `json:"image,omitempty"` // path to map background artwork
	Locations   []Location   `json:"locations"`
	Connections []Connection `json:"connections"`
}

// Location is a place on the world map. Coordinates are percentages
// across the map image.
type Location struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	X           int                `json:"x,omitempty"`
	Y           int                `json:"y,omitempty"`
	Icon        string             `json:"icon,omitempty"`
	Scene       string             `json:"scene,omitempty"`     // explicit scene binding; defaults to the location ID
	Discovery   *story.Requirement `json:"discovery,omitempty"` // must be satisfied before the location is offered
}

// Connection links two locations. Bidirectional connections can be
// traveled from either side. Hidden connections are not offered until
// their requirement is satisfied.
type Connection struct {
	From          string             `json:"from"`
	To            string             `json:"to"`
	Bidirectional bool               `json:"bidirectional,omitempty"`
	Hidden        bool               `json:"hidden,omitempty"`
	Requirement   *story.Requirement `json:"requirement,omitempty"`
}

// LocationByID returns the location with the given ID.
func (m *Map) LocationByID(id string) (*Location, bool) {
	for i := range m.Locations {
		if m.Locations[i].ID == id {
			return &m.Locations[i], true
		}
	}
	return nil, false
}

// SceneFor resolves the scene bound to a location, falling back to the
// location-ID-as-scene-ID convention when no explicit binding exists.
func (l *Location) SceneFor() string {
	if l.Scene != "" {
		return l.Scene
	}
	return l.ID
}
