// ABOUTME: Tests for the file-backed history store: round trip, dedup, and cap.

package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "sub", "history"), 100)
	entries := []string{"first", "second", "third"}

	if err := s.Save(entries); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, entries) {
		t.Errorf("Load() = %v; want %v", loaded, entries)
	}
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope"), 100)
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if entries != nil {
		t.Errorf("Load() = %v; want nil", entries)
	}
}

func TestStore_LoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("one\n\n  \ntwo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path, 100)
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(entries, []string{"one", "two"}) {
		t.Errorf("Load() = %v; want [one two]", entries)
	}
}

func TestStore_AddDedupesEarlierEntry(t *testing.T) {
	s := NewStore("", 100)
	entries := []string{"a", "b", "c"}
	entries = s.Add(entries, "a")
	if !reflect.DeepEqual(entries, []string{"b", "c", "a"}) {
		t.Errorf("Add() = %v; want [b c a]", entries)
	}
}

func TestStore_AddIgnoresBlank(t *testing.T) {
	s := NewStore("", 100)
	entries := s.Add([]string{"a"}, "   ")
	if !reflect.DeepEqual(entries, []string{"a"}) {
		t.Errorf("Add() = %v; want [a]", entries)
	}
}

func TestStore_AddTrimsWhitespace(t *testing.T) {
	s := NewStore("", 100)
	entries := s.Add(nil, "  hello  ")
	if !reflect.DeepEqual(entries, []string{"hello"}) {
		t.Errorf("Add() = %v; want [hello]", entries)
	}
}

func TestStore_AddEnforcesLimit(t *testing.T) {
	s := NewStore("", 3)
	var entries []string
	for _, e := range []string{"1", "2", "3", "4"} {
		entries = s.Add(entries, e)
	}
	if !reflect.DeepEqual(entries, []string{"2", "3", "4"}) {
		t.Errorf("Add() = %v; want newest 3 kept", entries)
	}
}
