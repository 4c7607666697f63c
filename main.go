package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jot/pkg/config"
	"jot/pkg/handlers"
	"jot/pkg/services"
	"jot/pkg/storage"
	"jot/pkg/summarize"
)

func main() {
	cfg := config.Load()

	log.Printf("Configuration loaded:")
	log.Printf("  Database file: %s", cfg.DBPath)
	log.Printf("  Summarization endpoint: %s", cfg.APIURL)
	log.Printf("  Environment: %s", cfg.Env)

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open note store: %v", err)
	}

	noteService := services.NewNoteService(store)
	summarizer := summarize.NewClient(cfg.APIURL, cfg.APIKey)
	apiHandlers := handlers.NewAPIHandlers(noteService, summarizer, cfg)

	r := handlers.NewRouter(apiHandlers, "./static")

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Shutting down gracefully...")
		if err := store.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
		os.Exit(0)
	}()

	log.Printf("Server starting on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}
