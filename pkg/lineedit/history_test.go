// ABOUTME: Tests for Navigator traversal, draft capture, and reverse substring search.

package lineedit

import "testing"

func TestNavigator_OlderWalksNewestFirst(t *testing.T) {
	n := NewNavigator([]string{"a", "b", "c"})

	got, ok := n.Older("draft")
	if !ok || got != "c" {
		t.Errorf("first Older = %q, %v; want %q, true", got, ok, "c")
	}
	got, _ = n.Older("ignored")
	if got != "b" {
		t.Errorf("second Older = %q; want %q", got, "b")
	}
	got, _ = n.Older("ignored")
	if got != "a" {
		t.Errorf("third Older = %q; want %q", got, "a")
	}
}

func TestNavigator_OlderClampsAtOldest(t *testing.T) {
	n := NewNavigator([]string{"a", "b"})
	n.Older("")
	n.Older("")
	if _, ok := n.Older(""); ok {
		t.Error("Older past the oldest entry reported a move")
	}
}

func TestNavigator_OlderOnEmptyHistory(t *testing.T) {
	n := NewNavigator(nil)
	if _, ok := n.Older("draft"); ok {
		t.Error("Older on empty history reported a move")
	}
	if n.Browsing() {
		t.Error("Browsing() = true; want false")
	}
}

func TestNavigator_RoundTripRestoresDraft(t *testing.T) {
	n := NewNavigator([]string{"a", "b", "c"})

	for range 3 {
		n.Older("my draft")
	}
	var got string
	var ok bool
	for range 3 {
		got, ok = n.Newer()
	}
	if !ok || got != "my draft" {
		t.Errorf("after 3×Older 3×Newer: got %q, %v; want %q, true", got, ok, "my draft")
	}
	if n.Browsing() {
		t.Error("Browsing() = true after returning to draft; want false")
	}
}

func TestNavigator_DraftCapturedOnlyOnFirstStep(t *testing.T) {
	n := NewNavigator([]string{"a", "b"})
	n.Older("original")
	n.Older("should not overwrite draft")
	n.Newer()
	got, _ := n.Newer()
	if got != "original" {
		t.Errorf("restored draft = %q; want %q", got, "original")
	}
}

func TestNavigator_NewerAtDraftIsNoop(t *testing.T) {
	n := NewNavigator([]string{"a"})
	if _, ok := n.Newer(); ok {
		t.Error("Newer at the draft position reported a move")
	}
}

func TestNavigator_SetEntriesResetsToDraft(t *testing.T) {
	n := NewNavigator([]string{"a", "b"})
	n.Older("d")
	n.SetEntries([]string{"x"})
	if n.Browsing() {
		t.Error("Browsing() = true after SetEntries; want false")
	}
	got, _ := n.Older("d2")
	if got != "x" {
		t.Errorf("Older after SetEntries = %q; want %q", got, "x")
	}
}

func TestNavigator_SearchFindsMostRecentMatch(t *testing.T) {
	n := NewNavigator([]string{"git status", "ls", "git push"})
	for _, r := range "git" {
		n.SearchAppend(r)
	}
	got, ok := n.Match()
	if !ok || got != "git push" {
		t.Errorf("Match() = %q, %v; want %q, true", got, ok, "git push")
	}
}

func TestNavigator_SearchIsCaseSensitive(t *testing.T) {
	n := NewNavigator([]string{"Git status"})
	n.SearchAppend('g')
	n.SearchAppend('i')
	n.SearchAppend('t')
	if _, ok := n.Match(); ok {
		t.Error("lowercase query matched differently-cased entry")
	}
}

func TestNavigator_SearchCycleMovesOlderAndWraps(t *testing.T) {
	n := NewNavigator([]string{"git status", "ls", "git push"})
	for _, r := range "git" {
		n.SearchAppend(r)
	}

	n.SearchCycle()
	if got, _ := n.Match(); got != "git status" {
		t.Errorf("after first cycle: Match() = %q; want %q", got, "git status")
	}
	n.SearchCycle()
	if got, _ := n.Match(); got != "git push" {
		t.Errorf("after wrap: Match() = %q; want %q", got, "git push")
	}
}

func TestNavigator_SearchCycleKeepsMatchWhenAlone(t *testing.T) {
	n := NewNavigator([]string{"ls", "git push"})
	for _, r := range "git" {
		n.SearchAppend(r)
	}
	n.SearchCycle()
	if got, _ := n.Match(); got != "git push" {
		t.Errorf("Match() = %q; want the sole match kept", got)
	}
}

func TestNavigator_SearchBackspaceRecomputes(t *testing.T) {
	n := NewNavigator([]string{"alpha", "beta"})
	n.SearchAppend('a')
	n.SearchAppend('l')
	if got, _ := n.Match(); got != "alpha" {
		t.Fatalf("Match() = %q; want %q", got, "alpha")
	}
	n.SearchBackspace()
	if got, _ := n.Match(); got != "beta" {
		t.Errorf("after backspace: Match() = %q; want %q (most recent containing 'a')", got, "beta")
	}
}

func TestNavigator_EmptyQueryNeverMatches(t *testing.T) {
	n := NewNavigator([]string{"a"})
	n.SearchAppend('x')
	n.SearchBackspace()
	if _, ok := n.Match(); ok {
		t.Error("empty query produced a match")
	}
}
