// ABOUTME: File-backed persistence for prompt history, one entry per line.
// ABOUTME: Add dedupes repeats and enforces the entry cap; the engine never sees this layer.

package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the history file. The engine itself treats history
// as a caller-owned snapshot; this is the caller side of that contract.
type Store struct {
	path  string
	limit int
}

// NewStore creates a Store writing to path, keeping at most limit entries.
func NewStore(path string, limit int) *Store {
	return &Store{path: path, limit: limit}
}

// Load reads entries from the history file, oldest first. A missing file
// yields an empty history.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries, nil
}

// Save writes entries to the history file, one per line.
func (s *Store) Save(entries []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	content := strings.Join(entries, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(s.path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// Add appends entry to entries, dropping an earlier duplicate and trimming
// to the store's limit. Blank entries are ignored.
func (s *Store) Add(entries []string, entry string) []string {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return entries
	}
	for i, e := range entries {
		if e == entry {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	entries = append(entries, entry)
	if s.limit > 0 && len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	return entries
}
