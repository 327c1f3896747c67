// ABOUTME: Model is the Bubble Tea front end for the line-editing engine.
// ABOUTME: Translates tea.KeyMsg to symbolic keys, renders the buffer, panel, and search prompt.

package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/linekit/linekit/pkg/lineedit"
	"github.com/linekit/linekit/pkg/lineedit/key"
)

// CursorMarker is the visible block cursor character.
const CursorMarker = "█"

const maxPanelRows = 8

// SubmitMsg is emitted when the engine completes a line.
type SubmitMsg struct{ Value string }

// CancelMsg is emitted when the user cancels the current line.
type CancelMsg struct{}

// ChangeMsg is emitted after every buffer-content mutation so the host can
// re-filter suggestions against the new value.
type ChangeMsg struct{ Value string }

// Keymap resolves a pressed key to a named engine action. A zero Action
// means "unbound, use the canonical dispatch".
type Keymap interface {
	ActionForKey(k key.Key) lineedit.Action
}

// outbox collects callback firings during a single Update so they can be
// re-emitted as messages. It is a pointer shared across model value copies,
// the standard Bubble Tea pattern for state that must survive copying.
type outbox struct {
	changes []string
	submits []string
	cancels int
}

// Model wraps an Engine as a tea.Model with value semantics. The engine and
// outbox are pointers shared across copies; Bubble Tea's Update loop is
// single-threaded, so no locking is needed.
type Model struct {
	eng    *lineedit.Engine
	ob     *outbox
	keymap Keymap

	prompt      string
	promptWidth int
	placeholder string
	width       int
	focused     bool
}

// New creates a Model around an engine built from opts.
func New(opts lineedit.Options) Model {
	eng := lineedit.New(opts)
	ob := &outbox{}
	eng.OnChange = func(v string) { ob.changes = append(ob.changes, v) }
	eng.OnSubmit = func(v string) { ob.submits = append(ob.submits, v) }
	eng.OnCancel = func() { ob.cancels++ }
	return Model{eng: eng, ob: ob, focused: true}
}

// Engine exposes the underlying engine for hosts that push history or
// suggestion updates between key events.
func (m Model) Engine() *lineedit.Engine {
	return m.eng
}

// Value returns the current buffer content.
func (m Model) Value() string {
	return m.eng.Value()
}

// SetPrompt sets the glyph prefixed to the first line. Returns a new model.
func (m Model) SetPrompt(p string) Model {
	m.prompt = p
	m.promptWidth = uniseg.StringWidth(p)
	return m
}

// SetPlaceholder sets dim hint text shown while the buffer is empty.
func (m Model) SetPlaceholder(p string) Model {
	m.placeholder = p
	return m
}

// SetKeymap installs a keybinding remap layer consulted before the
// canonical dispatch. Returns a new model.
func (m Model) SetKeymap(km Keymap) Model {
	m.keymap = km
	return m
}

// SetFocused sets the focus state. An unfocused prompt ignores keys.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// Init returns nil; the prompt needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update feeds key messages to the engine and re-emits callback firings as
// SubmitMsg, CancelMsg, and ChangeMsg commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.handleKey(msg)
		return m, m.drain()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// handleKey routes one key through the keymap (if any) or the canonical
// dispatch. Multi-rune messages are pastes and insert atomically.
func (m Model) handleKey(msg tea.KeyMsg) {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !msg.Alt {
		m.eng.InsertText(string(msg.Runes))
		return
	}

	k := fromTeaKey(msg)

	// Remaps apply only outside search mode; search owns raw input.
	if m.keymap != nil && m.eng.Mode() != lineedit.ModeSearch {
		if act := m.keymap.ActionForKey(k); act != "" {
			m.eng.Apply(act)
			return
		}
	}
	m.eng.HandleKey(k)
}

// drain converts accumulated callback firings into a batch command.
func (m Model) drain() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.ob.changes {
		cmds = append(cmds, func() tea.Msg { return ChangeMsg{Value: v} })
	}
	for _, v := range m.ob.submits {
		cmds = append(cmds, func() tea.Msg { return SubmitMsg{Value: v} })
	}
	for range m.ob.cancels {
		cmds = append(cmds, func() tea.Msg { return CancelMsg{} })
	}
	m.ob.changes = m.ob.changes[:0]
	m.ob.submits = m.ob.submits[:0]
	m.ob.cancels = 0
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// View renders the edited line(s), the reverse-search prompt, and the
// suggestion panel.
func (m Model) View() string {
	snap := m.eng.Snapshot()
	s := Styles()

	var b strings.Builder

	if snap.Mode == lineedit.ModeSearch {
		b.WriteString(s.SearchLabel.Render(snap.SearchPrompt))
		b.WriteString(snap.DisplayText)
		b.WriteString(CursorMarker)
	} else {
		m.renderBuffer(&b, snap)
	}

	if snap.SuggestionsVisible {
		b.WriteByte('\n')
		m.renderPanel(&b, snap)
	}

	return b.String()
}

// renderBuffer writes the buffer content with the cursor marker inserted,
// prompt glyph on the first line and matching indent on continuations.
func (m Model) renderBuffer(b *strings.Builder, snap lineedit.Snapshot) {
	s := Styles()

	if snap.DisplayText == "" && m.placeholder != "" && m.focused {
		b.WriteString(s.Prompt.Render(m.prompt))
		b.WriteString(CursorMarker)
		b.WriteString(s.Dim.Render(m.placeholder))
		return
	}

	indent := strings.Repeat(" ", m.promptWidth)
	lines := strings.Split(snap.DisplayText, "\n")
	row, col := cursorRowCol(lines, snap.CursorIndex)

	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(indent)
		} else {
			b.WriteString(s.Prompt.Render(m.prompt))
		}
		if m.focused && i == row {
			runes := []rune(line)
			b.WriteString(string(runes[:col]))
			b.WriteString(CursorMarker)
			b.WriteString(string(runes[col:]))
		} else {
			b.WriteString(line)
		}
	}
}

// renderPanel writes the suggestion rows, windowed around the selection.
func (m Model) renderPanel(b *strings.Builder, snap lineedit.Snapshot) {
	s := Styles()
	total := len(snap.Suggestions)

	start, end := 0, total
	if total > maxPanelRows {
		start = snap.SelectedIndex - maxPanelRows/2
		if start < 0 {
			start = 0
		}
		end = start + maxPanelRows
		if end > total {
			end = total
			start = end - maxPanelRows
		}
	}

	for i := start; i < end; i++ {
		c := snap.Suggestions[i]

		icon := c.Icon
		if icon == "" {
			icon = " "
		}
		row := "  " + iconStyle(c.Category).Render(icon) + " " +
			runewidth.FillRight(c.Value, 24)
		if c.Description != "" {
			row += s.Dim.Render(c.Description)
		}
		if m.width > 0 {
			row = runewidth.Truncate(row, m.width, "…")
		}
		if i == snap.SelectedIndex {
			row = s.Selection.Render(row)
		}

		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(row)
	}
}

// cursorRowCol locates the cursor within split lines given its flat rune
// index. Separators count one rune each.
func cursorRowCol(lines []string, idx int) (int, int) {
	for i, line := range lines {
		n := len([]rune(line))
		if idx <= n {
			return i, idx
		}
		idx -= n + 1
	}
	last := len(lines) - 1
	return last, len([]rune(lines[last]))
}

// fromTeaKey maps a Bubble Tea key message onto the engine's symbolic key
// model. Unhandled chords become KeyUnknown, which the engine ignores.
func fromTeaKey(msg tea.KeyMsg) key.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return key.Key{Type: key.KeyUnknown}
		}
		return key.Key{Type: key.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}
	case tea.KeySpace:
		return key.Key{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}
	case tea.KeyEnter:
		// Terminals without an extended keyboard protocol cannot report
		// Shift+Enter; Alt+Enter is the portable soft-newline chord.
		return key.Key{Type: key.KeyEnter, Alt: msg.Alt}
	case tea.KeyTab:
		return key.Key{Type: key.KeyTab}
	case tea.KeyBackspace:
		return key.Key{Type: key.KeyBackspace}
	case tea.KeyDelete:
		return key.Key{Type: key.KeyDelete}
	case tea.KeyUp:
		return key.Key{Type: key.KeyUp}
	case tea.KeyDown:
		return key.Key{Type: key.KeyDown}
	case tea.KeyLeft:
		return key.Key{Type: key.KeyLeft}
	case tea.KeyRight:
		return key.Key{Type: key.KeyRight}
	case tea.KeyHome:
		return key.Key{Type: key.KeyHome}
	case tea.KeyEnd:
		return key.Key{Type: key.KeyEnd}
	case tea.KeyEsc:
		return key.Key{Type: key.KeyEscape}
	case tea.KeyCtrlC:
		return key.Key{Type: key.KeyCtrlC, Ctrl: true}
	case tea.KeyCtrlL:
		return key.Key{Type: key.KeyCtrlL, Ctrl: true}
	case tea.KeyCtrlR:
		return key.Key{Type: key.KeyCtrlR, Ctrl: true}
	default:
		// Remaining ctrl-letter chords map to ctrl-modified runes so the
		// keybinding layer can bind them by name.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			r := 'a' + rune(msg.Type) - rune(tea.KeyCtrlA)
			return key.Key{Type: key.KeyRune, Rune: r, Ctrl: true}
		}
		return key.Key{Type: key.KeyUnknown}
	}
}
