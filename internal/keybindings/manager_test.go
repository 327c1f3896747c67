// ABOUTME: Tests for the keybindings manager: lookup, user overlay, and conflicts.

package keybindings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linekit/linekit/internal/config"
	"github.com/linekit/linekit/pkg/lineedit"
	"github.com/linekit/linekit/pkg/lineedit/key"
)

func TestManager_DefaultLookup(t *testing.T) {
	m := New("")

	tests := []struct {
		name string
		k    key.Key
		want lineedit.Action
	}{
		{"up", key.Key{Type: key.KeyUp}, lineedit.ActionHistoryPrev},
		{"enter", key.Key{Type: key.KeyEnter}, lineedit.ActionAccept},
		{"alt+enter", key.Key{Type: key.KeyEnter, Alt: true}, lineedit.ActionSoftNewline},
		{"shift+enter", key.Key{Type: key.KeyEnter, Shift: true}, lineedit.ActionSoftNewline},
		{"ctrl+r", key.Key{Type: key.KeyCtrlR, Ctrl: true}, lineedit.ActionSearchBack},
		{"ctrl+a", key.Key{Type: key.KeyRune, Rune: 'a', Ctrl: true}, lineedit.ActionCursorHome},
		{"tab", key.Key{Type: key.KeyTab}, lineedit.ActionAcceptSuggestion},
		{"plain rune unbound", key.Key{Type: key.KeyRune, Rune: 'x'}, ""},
		{"unknown", key.Key{Type: key.KeyUnknown}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ActionForKey(tt.k); got != tt.want {
				t.Errorf("ActionForKey(%v) = %q; want %q", tt.k, got, tt.want)
			}
		})
	}
}

func TestManager_UserFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.json")
	if err := os.WriteFile(path, []byte(`{"historyPrev": ["ctrl+p"]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	m := New(path)
	if got := m.ActionForKey(key.Key{Type: key.KeyRune, Rune: 'p', Ctrl: true}); got != lineedit.ActionHistoryPrev {
		t.Errorf("ctrl+p = %q; want historyPrev", got)
	}
	// The overlay replaces the action's chord list, so the default chord is gone.
	if got := m.ActionForKey(key.Key{Type: key.KeyUp}); got != "" {
		t.Errorf("up = %q; want unbound after remap", got)
	}
	// Other defaults survive.
	if got := m.ActionForKey(key.Key{Type: key.KeyEnter}); got != lineedit.ActionAccept {
		t.Errorf("enter = %q; want accept", got)
	}
}

func TestManager_MissingUserFileKeepsDefaults(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "nope.json"))
	if got := m.ActionForKey(key.Key{Type: key.KeyUp}); got != lineedit.ActionHistoryPrev {
		t.Errorf("up = %q; want historyPrev", got)
	}
}

func TestManager_Conflicts(t *testing.T) {
	kb := config.NewKeybindings()
	if got := NewFromBindings(kb).Conflicts(); len(got) != 0 {
		t.Errorf("default bindings have conflicts: %v", got)
	}

	kb.Bindings[lineedit.ActionClearLine] = []string{"ctrl+c"}
	conflicts := NewFromBindings(kb).Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("Conflicts() = %v; want exactly one", conflicts)
	}
	if conflicts[0].Key != "ctrl+c" || len(conflicts[0].Actions) != 2 {
		t.Errorf("conflict = %+v; want ctrl+c bound twice", conflicts[0])
	}
}

func TestKeyToString(t *testing.T) {
	tests := []struct {
		k    key.Key
		want string
	}{
		{key.Key{Type: key.KeyRune, Rune: 'a'}, "a"},
		{key.Key{Type: key.KeyRune, Rune: 'b', Ctrl: true}, "ctrl+b"},
		{key.Key{Type: key.KeyRune, Rune: 'x', Alt: true}, "alt+x"},
		{key.Key{Type: key.KeyEnter, Shift: true}, "shift+enter"},
		{key.Key{Type: key.KeyEnter, Alt: true}, "alt+enter"},
		{key.Key{Type: key.KeyHome}, "home"},
		{key.Key{Type: key.KeyCtrlR, Ctrl: true}, "ctrl+r"},
		{key.Key{Type: key.KeyUnknown}, ""},
	}
	for _, tt := range tests {
		if got := keyToString(tt.k); got != tt.want {
			t.Errorf("keyToString(%v) = %q; want %q", tt.k, got, tt.want)
		}
	}
}
