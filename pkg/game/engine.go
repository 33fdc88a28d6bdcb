// Package game implements the narrative state machine: requirement
// evaluation, deterministic skill checks, effect application, and the
// scene, dialogue, and map traversal that ties them together. All
// transforms are pure over in-memory content and character state; the
// character state argument is never mutated.
package game

import (
	"log/slog"

	"github.com/jwebster45206/forgotten-kingdom/pkg/content"
)

// Engine resolves player actions against loaded content. It holds no
// mutable state and is safe to share across sessions.
type Engine struct {
	content *content.Content
	logger  *slog.Logger
}

// NewEngine creates an engine over validated content. The logger is
// the diagnostic channel for malformed-content tolerance: content bugs
// that are survivable are logged, not fatal.
func NewEngine(c *content.Content, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		content: c,
		logger:  logger,
	}
}

// Content returns the engine's content repository.
func (e *Engine) Content() *content.Content {
	return e.content
}
