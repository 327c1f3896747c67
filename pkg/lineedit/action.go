// ABOUTME: Named engine actions so keybinding layers can remap chords to operations.
// ABOUTME: Apply dispatches an action name to the matching Engine operation.

package lineedit

// Action names one parameterless engine operation. Keybinding files bind
// key chords to these names; character insertion is not an Action because
// it carries a payload.
type Action string

const (
	ActionCursorLeft       Action = "cursorLeft"
	ActionCursorRight      Action = "cursorRight"
	ActionCursorHome       Action = "cursorHome"
	ActionCursorEnd        Action = "cursorEnd"
	ActionDeleteBack       Action = "deleteBack"
	ActionDeleteForward    Action = "deleteForward"
	ActionHistoryPrev      Action = "historyPrev"
	ActionHistoryNext      Action = "historyNext"
	ActionSearchBack       Action = "searchBack"
	ActionAccept           Action = "accept"
	ActionSoftNewline      Action = "softNewline"
	ActionAcceptSuggestion Action = "acceptSuggestion"
	ActionCancel           Action = "cancel"
	ActionClearLine        Action = "clearLine"
)

// Apply runs the operation named by a. Unknown actions report false and do
// nothing, matching the engine's no-op policy for unrecognized input.
func (e *Engine) Apply(a Action) bool {
	switch a {
	case ActionCursorLeft:
		e.MoveLeft()
	case ActionCursorRight:
		e.MoveRight()
	case ActionCursorHome:
		e.MoveHome()
	case ActionCursorEnd:
		e.MoveEnd()
	case ActionDeleteBack:
		e.DeleteBackward()
	case ActionDeleteForward:
		e.DeleteForward()
	case ActionHistoryPrev:
		// Same routing as ArrowUp: a visible suggestion panel owns the key.
		if e.sel.Active() {
			e.sel.MoveUp()
		} else {
			e.HistoryOlder()
		}
	case ActionHistoryNext:
		if e.sel.Active() {
			e.sel.MoveDown()
		} else {
			e.HistoryNewer()
		}
	case ActionSearchBack:
		e.StartSearch()
	case ActionAccept:
		e.Submit()
	case ActionSoftNewline:
		e.SoftNewline()
	case ActionAcceptSuggestion:
		e.AcceptSuggestion()
	case ActionCancel:
		e.Cancel()
	case ActionClearLine:
		e.ClearLine()
	default:
		return false
	}
	return true
}
