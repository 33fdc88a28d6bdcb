package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/forgotten-kingdom/internal/config"
	"github.com/jwebster45206/forgotten-kingdom/internal/handlers"
	"github.com/jwebster45206/forgotten-kingdom/internal/logger"
	"github.com/jwebster45206/forgotten-kingdom/internal/middleware"
	"github.com/jwebster45206/forgotten-kingdom/internal/storage"
	"github.com/jwebster45206/forgotten-kingdom/pkg/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Forgotten Kingdom API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir)

	c, err := storage.LoadContent(cfg.DataDir, log)
	if err != nil {
		log.Error("Failed to load content", "error", err)
		os.Exit(1)
	}

	store := storage.NewRedisStorage(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	engine := game.NewEngine(c, log)
	manager := game.NewManager(engine, store, log)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, c, log)
	mux.Handle("/health", healthHandler)

	gameHandler := handlers.NewGameHandler(manager, log)
	mux.Handle("/v1/game", gameHandler)
	mux.Handle("/v1/game/", gameHandler)

	contentHandler := handlers.NewContentHandler(c, log)
	mux.Handle("/v1/content/", contentHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
