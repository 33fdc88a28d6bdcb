package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage defines the interface for character state persistence.
// The engine treats all operations as fallible and never retries
// internally; retry policy belongs to the caller.
type Storage interface {
	HealthChecker
	Closer

	// SaveCharacter saves a character state under the given id
	SaveCharacter(ctx context.Context, id uuid.UUID, st *character.State) error

	// LoadCharacter retrieves a character state by id.
	// Returns nil if the character doesn't exist.
	LoadCharacter(ctx context.Context, id uuid.UUID) (*character.State, error)

	// DeleteCharacter removes a character state by id
	DeleteCharacter(ctx context.Context, id uuid.UUID) error
}
