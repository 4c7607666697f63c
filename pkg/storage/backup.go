package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"jot/pkg/utils"
)

// How many backup copies survive a prune.
const maxBackups = 5

// Backup copies the database file into a backups/ directory next to it
// and prunes all but the newest copies. Returns the path of the new copy.
func (s *NoteStore) Backup() (string, error) {
	backupDir := filepath.Join(filepath.Dir(s.path), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(backupDir,
		fmt.Sprintf("notes-%s-%s.db", timestamp, utils.GenerateShortUUID()))

	src, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("open database file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", fmt.Errorf("copy database file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("flush backup file: %w", err)
	}

	if err := pruneBackups(backupDir); err != nil {
		return "", err
	}

	return backupPath, nil
}

// pruneBackups deletes the oldest backups beyond maxBackups. Timestamped
// names make lexical order chronological.
func pruneBackups(backupDir string) error {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return fmt.Errorf("list backup directory: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "notes-") && strings.HasSuffix(name, ".db") {
			backups = append(backups, name)
		}
	}
	sort.Strings(backups)

	for len(backups) > maxBackups {
		if err := os.Remove(filepath.Join(backupDir, backups[0])); err != nil {
			return fmt.Errorf("remove old backup: %w", err)
		}
		backups = backups[1:]
	}

	return nil
}
