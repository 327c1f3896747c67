// ABOUTME: Engine is the line-editing state machine tying buffer, history, and suggestions together.
// ABOUTME: HandleKey maps (mode, key) to exactly one operation and fires the outbound callbacks.

package lineedit

import (
	"fmt"
	"strings"

	"github.com/linekit/linekit/pkg/lineedit/key"
)

// Options configures a new Engine.
type Options struct {
	// Multiline enables soft newlines (Shift+Enter or Alt+Enter).
	Multiline bool
	// Value seeds the buffer.
	Value string
	// History is the caller-owned list of past submissions, oldest first.
	History []string
	// Suggestions is the caller-owned ranked candidate list.
	Suggestions []Candidate
}

// Engine turns symbolic key events into buffer edits, history traversal,
// suggestion selection, and the three outbound callbacks. It is purely
// reactive and single-threaded: each key is processed to completion before
// the next, and nothing here blocks.
type Engine struct {
	buf  *Buffer
	hist *Navigator
	sel  *Selector

	multiline bool
	searching bool
	saved     string // buffer snapshot restored when reverse search aborts

	// OnChange fires with the new content on every buffer mutation.
	// Cursor-only moves and mode changes do not fire it.
	OnChange func(value string)
	// OnSubmit fires exactly once per completed line.
	OnSubmit func(value string)
	// OnCancel fires on the cancel key. The buffer is left as is.
	OnCancel func()
}

// New creates an Engine from opts.
func New(opts Options) *Engine {
	return &Engine{
		buf:       NewBuffer(opts.Value),
		hist:      NewNavigator(opts.History),
		sel:       NewSelector(opts.Suggestions),
		multiline: opts.Multiline,
	}
}

// Value returns the current buffer content.
func (e *Engine) Value() string {
	return e.buf.String()
}

// Cursor returns the cursor index in runes.
func (e *Engine) Cursor() int {
	return e.buf.Cursor()
}

// Mode returns the engine's current interpretation context.
func (e *Engine) Mode() Mode {
	if e.searching {
		return ModeSearch
	}
	if strings.ContainsRune(e.buf.String(), '\n') {
		return ModeMultiline
	}
	return ModeNormal
}

// SetHistory replaces the history entries. Navigation resets to the draft.
func (e *Engine) SetHistory(entries []string) {
	e.hist.SetEntries(entries)
}

// SetSuggestions replaces the candidate list. Callers typically do this
// between key events as they re-filter against the new buffer content.
func (e *Engine) SetSuggestions(candidates []Candidate) {
	e.sel.SetCandidates(candidates)
}

// HandleKey processes one key event. Unrecognized keys are no-ops; the
// dispatch is total and never fails.
func (e *Engine) HandleKey(k key.Key) {
	if e.searching {
		e.handleSearchKey(k)
		return
	}

	if k.Ctrl && k.Type == key.KeyRune {
		switch k.Rune {
		case 'a':
			e.buf.MoveHome()
		case 'e':
			e.buf.MoveEnd()
		}
		return
	}

	switch k.Type {
	case key.KeyRune:
		if !k.Alt {
			e.InsertText(string(k.Rune))
		}
	case key.KeyEnter:
		if k.Shift || k.Alt {
			e.SoftNewline()
		} else {
			e.Submit()
		}
	case key.KeyTab:
		e.AcceptSuggestion()
	case key.KeyBackspace:
		e.DeleteBackward()
	case key.KeyDelete:
		e.DeleteForward()
	case key.KeyLeft:
		e.buf.MoveLeft()
	case key.KeyRight:
		e.buf.MoveRight()
	case key.KeyHome:
		e.buf.MoveHome()
	case key.KeyEnd:
		e.buf.MoveEnd()
	case key.KeyUp:
		if e.sel.Active() {
			e.sel.MoveUp()
		} else {
			e.HistoryOlder()
		}
	case key.KeyDown:
		if e.sel.Active() {
			e.sel.MoveDown()
		} else {
			e.HistoryNewer()
		}
	case key.KeyCtrlC:
		e.Cancel()
	case key.KeyCtrlL:
		e.ClearLine()
	case key.KeyCtrlR:
		e.StartSearch()
	}
}

// handleSearchKey interprets keys while reverse search is active.
func (e *Engine) handleSearchKey(k key.Key) {
	switch k.Type {
	case key.KeyRune:
		if k.Ctrl || k.Alt {
			return
		}
		e.hist.SearchAppend(k.Rune)
		e.shadowMatch()
	case key.KeyBackspace:
		e.hist.SearchBackspace()
		e.shadowMatch()
	case key.KeyCtrlR:
		e.hist.SearchCycle()
		e.shadowMatch()
	case key.KeyEnter:
		// Accept: keep the match in the buffer and return to editing
		// without submitting.
		e.endSearch(true)
	case key.KeyEscape:
		e.endSearch(false)
	case key.KeyCtrlC:
		e.endSearch(false)
		e.Cancel()
	}
}

// --- Operations ---
// Each of these is one action of the dispatch table; the keybinding layer
// and tests call them directly.

// InsertText splices s at the cursor as a single edit.
func (e *Engine) InsertText(s string) {
	if e.buf.Insert(s) {
		e.notifyChange()
	}
}

// DeleteBackward removes the rune before the cursor.
func (e *Engine) DeleteBackward() {
	if e.buf.DeleteBackward() {
		e.notifyChange()
	}
}

// DeleteForward removes the rune under the cursor.
func (e *Engine) DeleteForward() {
	if e.buf.DeleteForward() {
		e.notifyChange()
	}
}

// MoveLeft moves the cursor one rune left.
func (e *Engine) MoveLeft() { e.buf.MoveLeft() }

// MoveRight moves the cursor one rune right.
func (e *Engine) MoveRight() { e.buf.MoveRight() }

// MoveHome moves the cursor to the start of the current line.
func (e *Engine) MoveHome() { e.buf.MoveHome() }

// MoveEnd moves the cursor to the end of the current line.
func (e *Engine) MoveEnd() { e.buf.MoveEnd() }

// SoftNewline inserts a line separator without ending the interaction.
// With multiline disabled it degrades to a plain submit.
func (e *Engine) SoftNewline() {
	if !e.multiline {
		e.Submit()
		return
	}
	e.InsertText("\n")
}

// Submit completes the line. When the suggestion panel is active the
// selected candidate's value is submitted instead of the raw buffer.
func (e *Engine) Submit() {
	value := e.buf.String()
	if c, ok := e.sel.Selected(); ok {
		value = c.Value
	}
	e.finish(value)
}

// AcceptSuggestion submits the selected candidate's value. No-op when the
// panel is dormant.
func (e *Engine) AcceptSuggestion() {
	c, ok := e.sel.Selected()
	if !ok {
		return
	}
	e.finish(c.Value)
}

// Cancel fires OnCancel and resets mode. The buffer is left untouched;
// callers decide whether to also clear it.
func (e *Engine) Cancel() {
	e.hist.Reset()
	e.searching = false
	if e.OnCancel != nil {
		e.OnCancel()
	}
}

// ClearLine empties the buffer.
func (e *Engine) ClearLine() {
	e.hist.Reset()
	if e.buf.Clear() {
		e.notifyChange()
	}
}

// HistoryOlder recalls the next older history entry into the buffer,
// capturing the in-progress draft on the first step.
func (e *Engine) HistoryOlder() {
	entry, ok := e.hist.Older(e.buf.String())
	if !ok {
		return
	}
	if e.buf.SetValue(entry) {
		e.notifyChange()
	}
}

// HistoryNewer recalls the next newer entry, restoring the draft when
// stepping past the most recent one.
func (e *Engine) HistoryNewer() {
	entry, ok := e.hist.Newer()
	if !ok {
		return
	}
	if e.buf.SetValue(entry) {
		e.notifyChange()
	}
}

// StartSearch enters reverse history search, snapshotting the buffer so an
// abort can restore it.
func (e *Engine) StartSearch() {
	if e.Mode() != ModeNormal {
		return
	}
	e.saved = e.buf.String()
	e.hist.SearchReset()
	e.searching = true
}

// --- Internals ---

// endSearch leaves search mode. On accept the buffer keeps the current
// match; otherwise the pre-search content comes back.
func (e *Engine) endSearch(accept bool) {
	value := e.saved
	if accept {
		if m, ok := e.hist.Match(); ok {
			value = m
		}
	}
	e.searching = false
	e.hist.SearchReset()
	if e.buf.SetValue(value) {
		e.notifyChange()
	}
}

// shadowMatch displays the current search match in the buffer. The draft
// stays recoverable via the pre-search snapshot until the user accepts.
func (e *Engine) shadowMatch() {
	value := e.saved
	if m, ok := e.hist.Match(); ok {
		value = m
	}
	if e.buf.SetValue(value) {
		e.notifyChange()
	}
}

// finish invokes OnSubmit and resets the engine for the next line. The
// post-submit reset is silent: the interaction cycle is over, so no
// OnChange fires for the implicit clear.
func (e *Engine) finish(value string) {
	e.searching = false
	e.hist.Reset()
	e.sel.Reset()
	e.buf.Clear()
	if e.OnSubmit != nil {
		e.OnSubmit(value)
	}
}

func (e *Engine) notifyChange() {
	if e.OnChange != nil {
		e.OnChange(e.buf.String())
	}
}

// Snapshot is the read-only render state handed to a display collaborator.
type Snapshot struct {
	DisplayText        string
	CursorIndex        int
	Mode               Mode
	SuggestionsVisible bool
	Suggestions        []Candidate
	SelectedIndex      int
	SearchPrompt       string // non-empty only in ModeSearch
}

// Snapshot returns the current render state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		DisplayText:        e.buf.String(),
		CursorIndex:        e.buf.Cursor(),
		Mode:               e.Mode(),
		SuggestionsVisible: e.sel.Active(),
		Suggestions:        e.sel.Candidates(),
		SelectedIndex:      e.sel.SelectedIndex(),
	}
	if e.searching {
		s.SearchPrompt = fmt.Sprintf("(reverse-i-search)`%s': ", e.hist.Query())
	}
	return s
}
