// ABOUTME: Lipgloss styles for the prompt component, built once and cached.
// ABOUTME: Category colors pick the suggestion icon tint; everything else is neutral.

package prompt

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// styleSet holds the prompt's render styles.
type styleSet struct {
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Selection   lipgloss.Style
	SearchLabel lipgloss.Style
	IconCommand lipgloss.Style
	IconFile    lipgloss.Style
	IconOther   lipgloss.Style
}

var (
	stylesOnce sync.Once
	styles     styleSet
)

// Styles returns the shared style set. Building lipgloss styles involves
// terminal profile detection, so it happens once.
func Styles() styleSet {
	stylesOnce.Do(func() {
		styles = styleSet{
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			Dim:         lipgloss.NewStyle().Faint(true),
			Selection:   lipgloss.NewStyle().Reverse(true),
			SearchLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			IconCommand: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			IconFile:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			IconOther:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		}
	})
	return styles
}

// iconStyle picks the style for a candidate's category tag.
func iconStyle(category string) lipgloss.Style {
	s := Styles()
	switch category {
	case "command":
		return s.IconCommand
	case "file":
		return s.IconFile
	default:
		return s.IconOther
	}
}
