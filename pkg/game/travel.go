package game

import (
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
	"github.com/jwebster45206/forgotten-kingdom/pkg/worldmap"
)

// Destination is one travel target offered to the player, with the
// gating state of the connection leading to it. Locked destinations
// are visible but not travelable until their requirement is met.
type Destination struct {
	Location *worldmap.Location
	Locked   bool
	Reason   string // requirement hint when Locked
}

// AvailableDestinations lists the locations reachable from a location,
// in map declaration order. A connection qualifies when it starts at
// the location (or ends there and is bidirectional), it is not hidden
// behind an unmet requirement, and the destination's own discovery
// condition is satisfied. Hidden connections with unmet requirements
// are omitted entirely, so the player never learns they exist.
func (e *Engine) AvailableDestinations(fromLocationID string, st *character.State) []Destination {
	var destinations []Destination
	seen := make(map[string]bool)

	for i := range e.content.Map.Connections {
		conn := &e.content.Map.Connections[i]

		var targetID string
		switch {
		case conn.From == fromLocationID:
			targetID = conn.To
		case conn.Bidirectional && conn.To == fromLocationID:
			targetID = conn.From
		default:
			continue
		}
		if seen[targetID] {
			continue
		}

		gate := e.Evaluate(conn.Requirement, st)
		if conn.Hidden && !gate.Satisfied {
			continue
		}

		loc, ok := e.content.Map.LocationByID(targetID)
		if !ok {
			e.logger.Error("connection references unknown location", "from", fromLocationID, "to", targetID)
			continue
		}
		if discovery := e.Evaluate(loc.Discovery, st); !discovery.Satisfied {
			continue
		}

		seen[targetID] = true
		destinations = append(destinations, Destination{
			Location: loc,
			Locked:   !gate.Satisfied,
			Reason:   gate.Reason,
		})
	}

	return destinations
}

// Travel moves the character to a destination and resolves the scene
// bound to it. It fails with ErrUnreachableLocation when the
// destination is not offered from the current location, and with
// RequirementNotMetError when the connection is visible but gated.
// Either failure leaves the state untouched. Arrival discovers the
// destination.
func (e *Engine) Travel(toLocationID string, st *character.State) (*character.State, error) {
	var dest *Destination
	for _, d := range e.AvailableDestinations(st.CurrentLocationID, st) {
		if d.Location.ID == toLocationID {
			dest = &d
			break
		}
	}
	if dest == nil {
		return nil, ErrUnreachableLocation
	}
	if dest.Locked {
		return nil, &RequirementNotMetError{Reason: dest.Reason}
	}

	sceneID, ok := e.content.SceneForLocation(toLocationID)
	if !ok {
		return nil, &NoSceneForLocationError{LocationID: toLocationID}
	}

	next := st.Clone()
	next.CurrentLocationID = toLocationID
	next.CurrentSceneID = sceneID
	next.Discover(toLocationID)
	return next, nil
}
