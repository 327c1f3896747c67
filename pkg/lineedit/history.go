// ABOUTME: Navigator walks caller-owned history entries with draft preservation.
// ABOUTME: Supports older/newer traversal and incremental reverse substring search.

package lineedit

import "strings"

// Navigator browses a caller-supplied list of past submissions, oldest
// first. The entries are read-only to the navigator; the caller may replace
// them wholesale between key events via SetEntries.
//
// pos counts backward from the most recent entry: -1 means "at the live
// draft" (not browsing), 0 is the newest entry, len(entries)-1 the oldest.
type Navigator struct {
	entries []string
	pos     int
	draft   string

	query    string
	matchIdx int // index into entries of the current search match, -1 = none
}

// NewNavigator creates a Navigator over entries.
func NewNavigator(entries []string) *Navigator {
	return &Navigator{
		entries:  entries,
		pos:      -1,
		matchIdx: -1,
	}
}

// SetEntries replaces the entry list and resets navigation to the draft.
func (n *Navigator) SetEntries(entries []string) {
	n.entries = entries
	n.pos = -1
}

// Len returns the number of entries.
func (n *Navigator) Len() int {
	return len(n.entries)
}

// Browsing reports whether the navigator is positioned on a history entry.
func (n *Navigator) Browsing() bool {
	return n.pos >= 0
}

// Older moves one step further into the past and returns the entry to
// display. On the first step it captures draft as the content to restore
// when the user navigates back to the present. Clamped at the oldest entry.
func (n *Navigator) Older(draft string) (string, bool) {
	if len(n.entries) == 0 {
		return "", false
	}
	if n.pos == -1 {
		n.draft = draft
		n.pos = 0
	} else if n.pos < len(n.entries)-1 {
		n.pos++
	} else {
		return "", false
	}
	return n.entries[len(n.entries)-1-n.pos], true
}

// Newer moves one step toward the present. Stepping past the newest entry
// restores the captured draft. No-op when already at the draft.
func (n *Navigator) Newer() (string, bool) {
	if n.pos == -1 {
		return "", false
	}
	n.pos--
	if n.pos == -1 {
		return n.draft, true
	}
	return n.entries[len(n.entries)-1-n.pos], true
}

// Reset returns navigation to the draft position and clears search state.
func (n *Navigator) Reset() {
	n.pos = -1
	n.draft = ""
	n.query = ""
	n.matchIdx = -1
}

// --- Reverse search ---

// Query returns the current search query.
func (n *Navigator) Query() string {
	return n.query
}

// Match returns the entry for the current search match.
func (n *Navigator) Match() (string, bool) {
	if n.matchIdx < 0 || n.matchIdx >= len(n.entries) {
		return "", false
	}
	return n.entries[n.matchIdx], true
}

// SearchAppend extends the query by one rune and recomputes the match from
// the most recent entry. Matching is a case-sensitive substring test.
func (n *Navigator) SearchAppend(r rune) {
	n.query += string(r)
	n.matchIdx = n.searchFrom(len(n.entries) - 1)
}

// SearchBackspace drops the last rune of the query and recomputes the match.
func (n *Navigator) SearchBackspace() {
	runes := []rune(n.query)
	if len(runes) == 0 {
		return
	}
	n.query = string(runes[:len(runes)-1])
	n.matchIdx = n.searchFrom(len(n.entries) - 1)
}

// SearchCycle advances to the next older entry matching the query, wrapping
// to the most recent when the scan passes the oldest entry. The current
// match is kept when no other entry matches.
func (n *Navigator) SearchCycle() {
	if n.query == "" {
		return
	}
	start := n.matchIdx - 1
	if start < 0 {
		start = len(n.entries) - 1
	}
	if idx := n.searchFrom(start); idx >= 0 {
		n.matchIdx = idx
	}
}

// SearchReset clears the query and match without touching navigation.
func (n *Navigator) SearchReset() {
	n.query = ""
	n.matchIdx = -1
}

// searchFrom scans entries from start toward the oldest and returns the
// index of the first entry containing the query, or -1. An empty query
// never matches.
func (n *Navigator) searchFrom(start int) int {
	if n.query == "" {
		return -1
	}
	for i := start; i >= 0; i-- {
		if strings.Contains(n.entries[i], n.query) {
			return i
		}
	}
	return -1
}
