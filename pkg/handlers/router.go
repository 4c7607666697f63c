package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every endpoint onto a chi router. staticDir holds the
// browser client; pass "" to skip static serving (tests).
func NewRouter(api *APIHandlers, staticDir string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/notes", api.GetNotesHandler)
		r.Post("/notes", api.CreateNoteHandler)
		r.Get("/notes/{id}", api.GetNoteHandler)
		r.Put("/notes/{id}", api.UpdateNoteHandler)
		r.Delete("/notes/{id}", api.DeleteNoteHandler)
		r.Post("/summarize", api.SummarizeHandler)
		r.Post("/backup", api.BackupHandler)
	})

	if staticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
		})
	}

	return r
}
