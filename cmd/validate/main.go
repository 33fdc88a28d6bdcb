package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jwebster45206/forgotten-kingdom/internal/storage"
)

// validate loads and validates a content directory, printing every
// defect found. Warnings (dead-end scenes, unknown skills) go to
// stderr; broken references fail the run.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <data-dir>\n", os.Args[0])
		os.Exit(1)
	}

	dataDir := os.Args[1]
	fmt.Printf("Validating %s...\n", dataDir)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	c, err := storage.LoadContent(dataDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Content is valid: %q, %d scenes, %d NPCs, %d locations, %d classes\n",
		c.Story.Title, len(c.Story.Scenes), len(c.NPCs), len(c.Map.Locations), len(c.Classes))
}
