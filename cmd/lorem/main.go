package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jaswdr/faker"

	"jot/pkg/config"
	"jot/pkg/services"
	"jot/pkg/storage"
)

func main() {
	count := flag.Int("n", 5, "number of notes to generate")
	flag.Parse()

	cfg := config.Load()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open note store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	noteService := services.NewNoteService(store)
	f := faker.New()
	ctx := context.Background()

	for i := 0; i < *count; i++ {
		title := f.Lorem().Sentence(3)
		content := f.Lorem().Paragraph(3)

		note, err := noteService.CreateNote(ctx, title, content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create note: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Generated note with ID: %d\n", note.ID)
	}
}
