// ABOUTME: Keybindings manager with O(1) key-to-action lookup for the prompt.
// ABOUTME: Merges the default bindings with a user file and detects conflicts.

package keybindings

import (
	"fmt"
	"strings"

	"github.com/linekit/linekit/internal/config"
	"github.com/linekit/linekit/pkg/lineedit"
	"github.com/linekit/linekit/pkg/lineedit/key"
)

// ConflictInfo describes a chord bound to more than one action.
type ConflictInfo struct {
	Key     string
	Actions []lineedit.Action
}

// Manager resolves pressed keys to engine actions.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]lineedit.Action // "ctrl+r" -> searchBack
}

// New creates a Manager from the default bindings overlaid with the user
// file at path. A missing or unreadable file leaves the defaults intact.
func New(path string) *Manager {
	kb := config.NewKeybindings()
	if path != "" {
		if user, err := config.LoadKeybindings(path); err == nil {
			kb.Merge(user)
		}
	}
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// NewFromBindings creates a Manager from an existing Keybindings set.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionForKey returns the action bound to k, or "" when unbound.
func (m *Manager) ActionForKey(k key.Key) lineedit.Action {
	return m.lookup[keyToString(k)]
}

// Conflicts reports chords bound to multiple actions.
func (m *Manager) Conflicts() []ConflictInfo {
	byKey := make(map[string][]lineedit.Action)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			byKey[k] = append(byKey[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range byKey {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]lineedit.Action, len(m.bindings.Bindings)*2)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			m.lookup[strings.ToLower(k)] = action
		}
	}
}

// keyToString renders a Key in the chord notation used by keybinding files:
// lowercase named keys with ctrl+/alt+/shift+ prefixes, e.g. "shift+enter".
func keyToString(k key.Key) string {
	var name string
	switch k.Type {
	case key.KeyRune:
		name = strings.ToLower(string(k.Rune))
	case key.KeyEnter:
		name = "enter"
	case key.KeyTab:
		name = "tab"
	case key.KeyBackspace:
		name = "backspace"
	case key.KeyDelete:
		name = "delete"
	case key.KeyUp:
		name = "up"
	case key.KeyDown:
		name = "down"
	case key.KeyLeft:
		name = "left"
	case key.KeyRight:
		name = "right"
	case key.KeyHome:
		name = "home"
	case key.KeyEnd:
		name = "end"
	case key.KeyEscape:
		name = "escape"
	case key.KeyCtrlC:
		return "ctrl+c"
	case key.KeyCtrlL:
		return "ctrl+l"
	case key.KeyCtrlR:
		return "ctrl+r"
	default:
		return ""
	}

	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Shift && k.Type != key.KeyRune {
		b.WriteString("shift+")
	}
	fmt.Fprint(&b, name)
	return b.String()
}
