package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    30 * time.Second,
	}

	api := &apiClient{
		baseURL: cfg.APIBaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}

	if err := api.health(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not connect to API at %s. Please ensure the API is running.\n", cfg.APIBaseURL)
		os.Exit(1)
	}

	classes, err := api.listClasses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list classes: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Character name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(os.Stderr, "A name is required")
		os.Exit(1)
	}

	classID := ""
	if len(classes) > 0 {
		fmt.Println("\nAvailable Classes:")
		for i, c := range classes {
			fmt.Printf("  %d - %s: %s\n", i+1, c.Name, c.Description)
		}
		fmt.Print("\nSelect a class by number: ")

		var choice int
		if _, err := fmt.Fscanf(reader, "%d\n", &choice); err != nil || choice < 1 || choice > len(classes) {
			fmt.Fprintln(os.Stderr, "Invalid selection")
			os.Exit(1)
		}
		classID = classes[choice-1].ID
	}

	view, err := api.createGame(name, classID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}

	npcs, err := api.listNPCs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list NPCs: %v\n", err)
		os.Exit(1)
	}

	ui := NewConsoleUI(api, view, npcs)
	p := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
