package storage

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// startWatching watches the database file's directory and warns when the
// live database file is removed or renamed out from under the server.
// SQLite keeps serving from the open handle either way, so this is a
// diagnostic, not a recovery mechanism.
func (s *NoteStore) startWatching() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Warning: Could not create file watcher: %v", err)
		return
	}

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		log.Printf("Warning: Could not watch data directory: %v", err)
		watcher.Close()
		return
	}

	s.watcher = watcher
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}

				switch {
				case event.Op&fsnotify.Remove == fsnotify.Remove:
					log.Printf("Warning: database file %s was removed externally", s.path)
				case event.Op&fsnotify.Rename == fsnotify.Rename:
					log.Printf("Warning: database file %s was renamed externally", s.path)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()
}
