package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
)

// CharacterStore is the narrow persistence contract the manager needs.
// LoadCharacter returns (nil, nil) when no state exists for the id.
// The manager does not retry failed saves; retry policy belongs to the
// caller.
type CharacterStore interface {
	SaveCharacter(ctx context.Context, id uuid.UUID, st *character.State) error
	LoadCharacter(ctx context.Context, id uuid.UUID) (*character.State, error)
}

// Manager is the top-level orchestrator: it owns character state for
// the duration of each call, resolves player actions through the
// engine, and checkpoints the committed state after every successful
// mutation.
//
// The manager holds no locks. Callers must serialize mutations per
// character id; concurrent writes for the same character would race at
// the storage layer.
type Manager struct {
	engine *Engine
	store  CharacterStore
	logger *slog.Logger
}

// NewManager creates a manager over an engine and a character store.
func NewManager(engine *Engine, store CharacterStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		engine: engine,
		store:  store,
		logger: logger,
	}
}

// Engine returns the manager's engine.
func (m *Manager) Engine() *Engine {
	return m.engine
}

// NewSession creates a character from the starting template and
// persists it. The class id may be empty for a classless character.
func (m *Manager) NewSession(ctx context.Context, name, classID string) (*character.State, error) {
	var class *character.Class
	if classID != "" {
		c, ok := m.engine.Content().Class(classID)
		if !ok {
			return nil, fmt.Errorf("unknown class %q", classID)
		}
		class = c
	}

	s := m.engine.Content().Story
	st := character.New(name, class, s.StartingScene, s.StartingLocation)

	if err := m.store.SaveCharacter(ctx, st.ID, st); err != nil {
		return nil, fmt.Errorf("failed to save new character: %w", err)
	}
	m.logger.Info("session created", "id", st.ID, "name", name, "class", classID)
	return st, nil
}

// Load returns the current state for a session.
func (m *Manager) Load(ctx context.Context, id uuid.UUID) (*character.State, error) {
	st, err := m.store.LoadCharacter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}
	if st == nil {
		return nil, ErrSessionNotFound
	}
	return st, nil
}

// Choose resolves a choice in the character's current scene and
// commits the result. The stored state is only replaced when the
// transition succeeds.
func (m *Manager) Choose(ctx context.Context, id uuid.UUID, choiceIndex int) (*ChooseResult, error) {
	st, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := m.engine.Choose(st.CurrentSceneID, choiceIndex, st)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveCharacter(ctx, id, result.State); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}
	return result, nil
}

// Travel moves the character to a destination and commits the result.
func (m *Manager) Travel(ctx context.Context, id uuid.UUID, locationID string) (*character.State, error) {
	st, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := m.engine.Travel(locationID, st)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveCharacter(ctx, id, next); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}
	return next, nil
}

// Destinations lists the travel targets from the character's current
// location.
func (m *Manager) Destinations(ctx context.Context, id uuid.UUID) ([]Destination, *character.State, error) {
	st, err := m.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return m.engine.AvailableDestinations(st.CurrentLocationID, st), st, nil
}

// Talk starts a conversation with an NPC. Starting a conversation has
// no effects, so nothing is persisted.
func (m *Manager) Talk(ctx context.Context, id uuid.UUID, npcID string) (*DialogueResult, error) {
	st, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.engine.Talk(npcID, st)
}

// TalkOption advances a conversation and commits any effects.
func (m *Manager) TalkOption(ctx context.Context, id uuid.UUID, npcID, sectionID string, optionIndex int) (*DialogueResult, error) {
	st, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := m.engine.TalkOption(npcID, sectionID, optionIndex, st)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveCharacter(ctx, id, result.State); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}
	return result, nil
}

// SpendSkillPoint raises a skill by one level using an unspent point
// and commits the result.
func (m *Manager) SpendSkillPoint(ctx context.Context, id uuid.UUID, skill string) (*character.State, error) {
	st, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	next := st.Clone()
	if err := next.SpendSkillPoint(skill); err != nil {
		return nil, err
	}

	if err := m.store.SaveCharacter(ctx, id, next); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}
	return next, nil
}
