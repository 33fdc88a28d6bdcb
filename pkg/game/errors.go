package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no extra detail.
var (
	// ErrInvalidChoice means the choice index is out of range for the
	// scene or dialogue option list.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrUnreachableLocation means travel was requested to a location
	// that is not among the available destinations.
	ErrUnreachableLocation = errors.New("location is not reachable from here")

	// ErrSessionNotFound means no character state exists for the id.
	ErrSessionNotFound = errors.New("session not found")
)

// RequirementNotMetError is the routine gating failure: the player
// picked an option whose requirement their character does not satisfy.
// State is always left untouched when this is returned.
type RequirementNotMetError struct {
	Reason string
}

func (e *RequirementNotMetError) Error() string {
	return fmt.Sprintf("requirement not met: %s", e.Reason)
}

// DanglingReferenceError is a content integrity defect: a choice or
// option points at a scene, section, or location that does not exist.
type DanglingReferenceError struct {
	Kind string // "scene", "section", "location"
	ID   string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s %q not found", e.Kind, e.ID)
}

// NoSceneForLocationError means travel succeeded but no scene could be
// resolved for the destination, which is a content defect.
type NoSceneForLocationError struct {
	LocationID string
}

func (e *NoSceneForLocationError) Error() string {
	return fmt.Sprintf("no scene for location %q", e.LocationID)
}
