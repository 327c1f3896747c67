// ABOUTME: Keybindings file parser mapping engine actions to key chord strings.
// ABOUTME: JSON format: {"historyPrev": ["up", "ctrl+p"], ...}; defaults mirror the canonical dispatch.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linekit/linekit/pkg/lineedit"
)

// Keybindings maps engine actions to the key chords that trigger them.
type Keybindings struct {
	Bindings map[lineedit.Action][]string
}

// NewKeybindings returns bindings matching the engine's canonical dispatch.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[lineedit.Action][]string)}
	kb.Bindings[lineedit.ActionCursorLeft] = []string{"left", "ctrl+b"}
	kb.Bindings[lineedit.ActionCursorRight] = []string{"right", "ctrl+f"}
	kb.Bindings[lineedit.ActionCursorHome] = []string{"home", "ctrl+a"}
	kb.Bindings[lineedit.ActionCursorEnd] = []string{"end", "ctrl+e"}
	kb.Bindings[lineedit.ActionDeleteBack] = []string{"backspace"}
	kb.Bindings[lineedit.ActionDeleteForward] = []string{"delete"}
	kb.Bindings[lineedit.ActionHistoryPrev] = []string{"up"}
	kb.Bindings[lineedit.ActionHistoryNext] = []string{"down"}
	kb.Bindings[lineedit.ActionSearchBack] = []string{"ctrl+r"}
	kb.Bindings[lineedit.ActionAccept] = []string{"enter"}
	kb.Bindings[lineedit.ActionSoftNewline] = []string{"alt+enter", "shift+enter"}
	kb.Bindings[lineedit.ActionAcceptSuggestion] = []string{"tab"}
	kb.Bindings[lineedit.ActionCancel] = []string{"ctrl+c"}
	kb.Bindings[lineedit.ActionClearLine] = []string{"ctrl+l"}
	return kb
}

// GetBindings returns the chords bound to an action.
func (kb *Keybindings) GetBindings(a lineedit.Action) []string {
	return kb.Bindings[a]
}

// Merge overlays other's bindings onto kb, action by action.
func (kb *Keybindings) Merge(other *Keybindings) {
	for action, keys := range other.Bindings {
		kb.Bindings[action] = keys
	}
}

// LoadKeybindings reads a keybindings JSON file. Only actions present in
// the file are returned; merge over NewKeybindings for a full set.
func LoadKeybindings(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Keybindings{Bindings: map[lineedit.Action][]string{}}, nil
		}
		return nil, fmt.Errorf("reading keybindings: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing keybindings: %w", err)
	}

	kb := &Keybindings{Bindings: make(map[lineedit.Action][]string, len(raw))}
	for action, keys := range raw {
		kb.Bindings[lineedit.Action(action)] = keys
	}
	return kb, nil
}

// SaveKeybindings writes the bindings as JSON.
func (kb *Keybindings) SaveKeybindings(path string) error {
	raw := make(map[string][]string, len(kb.Bindings))
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding keybindings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating keybindings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing keybindings: %w", err)
	}
	return nil
}
