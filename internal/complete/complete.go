// ABOUTME: Caller-side completion source ranking slash commands with fuzzy matching.
// ABOUTME: The engine only selects from what this produces; filtering authority lives here.

package complete

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/linekit/linekit/pkg/lineedit"
)

// Command is one entry of the completion table.
type Command struct {
	Name        string
	Description string
}

// Source produces ranked candidates for the current buffer content.
type Source struct {
	commands []Command
}

// NewSource creates a Source over the given command table.
func NewSource(commands []Command) *Source {
	return &Source{commands: commands}
}

// Candidates returns the ranked candidate list for input. Completions
// trigger only on a leading slash; "/" alone lists every command in table
// order, anything longer is fuzzy-ranked against the command names.
func (s *Source) Candidates(input string) []lineedit.Candidate {
	if !strings.HasPrefix(input, "/") || strings.ContainsRune(input, '\n') {
		return nil
	}

	pattern := strings.TrimPrefix(input, "/")
	if pattern == "" {
		out := make([]lineedit.Candidate, len(s.commands))
		for i, c := range s.commands {
			out[i] = toCandidate(c)
		}
		return out
	}

	names := make([]string, len(s.commands))
	for i, c := range s.commands {
		names[i] = c.Name
	}

	matches := fuzzy.Find(pattern, names)
	out := make([]lineedit.Candidate, len(matches))
	for i, m := range matches {
		out[i] = toCandidate(s.commands[m.Index])
	}
	return out
}

func toCandidate(c Command) lineedit.Candidate {
	return lineedit.Candidate{
		Value:       "/" + c.Name,
		Description: c.Description,
		Category:    "command",
		Icon:        "/",
	}
}
