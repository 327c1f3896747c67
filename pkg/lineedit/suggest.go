// ABOUTME: Selector tracks a clamped selection over caller-supplied completion candidates.
// ABOUTME: The engine never filters candidates; ranking and filtering are the caller's job.

package lineedit

// Candidate is a single completion option supplied by the caller. Category
// is an open tag ("command", "file", ...) used only for display.
type Candidate struct {
	Value       string
	Description string
	Category    string
	Icon        string
}

// Selector holds the candidate list and the bounded selection index. An
// empty list means the selector is dormant and keys fall through to plain
// editing behavior.
type Selector struct {
	candidates []Candidate
	selected   int
}

// NewSelector creates a Selector over candidates.
func NewSelector(candidates []Candidate) *Selector {
	return &Selector{candidates: candidates}
}

// SetCandidates replaces the candidate list. The selection is kept when it
// still fits, otherwise reset to the first candidate.
func (s *Selector) SetCandidates(candidates []Candidate) {
	s.candidates = candidates
	if s.selected >= len(candidates) {
		s.selected = 0
	}
}

// Active reports whether the suggestion panel should be shown.
func (s *Selector) Active() bool {
	return len(s.candidates) > 0
}

// Len returns the number of candidates.
func (s *Selector) Len() int {
	return len(s.candidates)
}

// Candidates returns the candidate list as given by the caller.
func (s *Selector) Candidates() []Candidate {
	return s.candidates
}

// SelectedIndex returns the current selection index. Meaningless when the
// selector is dormant.
func (s *Selector) SelectedIndex() int {
	return s.selected
}

// Selected returns the currently selected candidate.
func (s *Selector) Selected() (Candidate, bool) {
	if len(s.candidates) == 0 {
		return Candidate{}, false
	}
	return s.candidates[s.selected], true
}

// MoveUp moves the selection toward the first candidate, clamped at 0.
func (s *Selector) MoveUp() bool {
	if s.selected > 0 {
		s.selected--
		return true
	}
	return false
}

// MoveDown moves the selection toward the last candidate, clamped there.
func (s *Selector) MoveDown() bool {
	if s.selected < len(s.candidates)-1 {
		s.selected++
		return true
	}
	return false
}

// Reset returns the selection to the first candidate.
func (s *Selector) Reset() {
	s.selected = 0
}
