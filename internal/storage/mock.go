package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
)

// MockStorage is an in-memory Storage implementation for tests.
// Function fields override individual operations when set.
type MockStorage struct {
	mu         sync.Mutex
	characters map[uuid.UUID]*character.State

	SaveCharacterFunc   func(ctx context.Context, id uuid.UUID, st *character.State) error
	LoadCharacterFunc   func(ctx context.Context, id uuid.UUID) (*character.State, error)
	DeleteCharacterFunc func(ctx context.Context, id uuid.UUID) error
	PingFunc            func(ctx context.Context) error
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		characters: make(map[uuid.UUID]*character.State),
	}
}

func (m *MockStorage) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveCharacter(ctx context.Context, id uuid.UUID, st *character.State) error {
	if m.SaveCharacterFunc != nil {
		return m.SaveCharacterFunc(ctx, id, st)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.characters[id] = st.Clone()
	return nil
}

func (m *MockStorage) LoadCharacter(ctx context.Context, id uuid.UUID) (*character.State, error) {
	if m.LoadCharacterFunc != nil {
		return m.LoadCharacterFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.characters[id]
	if !ok {
		return nil, nil
	}
	return st.Clone(), nil
}

func (m *MockStorage) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCharacterFunc != nil {
		return m.DeleteCharacterFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.characters, id)
	return nil
}
