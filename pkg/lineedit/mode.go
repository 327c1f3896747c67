// ABOUTME: Mode enumerates the engine's key interpretation contexts.

package lineedit

// Mode selects how the engine interprets incoming keys.
type Mode int

const (
	// ModeNormal is single-line editing, the initial state.
	ModeNormal Mode = iota
	// ModeMultiline is active while the buffer spans multiple lines pre-submit.
	ModeMultiline
	// ModeSearch is incremental reverse search through history.
	ModeSearch
)

// String returns the human-readable label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeMultiline:
		return "Multiline"
	case ModeSearch:
		return "Search"
	default:
		return "Unknown"
	}
}
