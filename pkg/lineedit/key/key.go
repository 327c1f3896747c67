// ABOUTME: Defines the symbolic Key type consumed by the line-editing engine.
// ABOUTME: ParseKey turns raw terminal bytes into Keys; callers may also build Keys directly.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key is a single normalized keyboard event. Character keys carry the rune
// in Rune with Type == KeyRune; everything else is identified by Type alone.
type Key struct {
	Type  KeyType
	Rune  rune // valid only when Type == KeyRune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the symbolic keys the engine understands.
type KeyType int

const (
	KeyRune      KeyType = iota // printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlL                    // Ctrl+L
	KeyCtrlR                    // Ctrl+R
	KeyUnknown                  // anything unrecognized; always a no-op downstream
)

// ctrlBytes maps raw control bytes to their symbolic Keys. Ctrl chords the
// engine binds get their own KeyType; the rest surface as Ctrl+rune so a
// keybinding layer can still match them.
var ctrlBytes = map[byte]Key{
	0x01: {Type: KeyRune, Rune: 'a', Ctrl: true},
	0x02: {Type: KeyRune, Rune: 'b', Ctrl: true},
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x05: {Type: KeyRune, Rune: 'e', Ctrl: true},
	0x06: {Type: KeyRune, Rune: 'f', Ctrl: true},
	0x0b: {Type: KeyRune, Rune: 'k', Ctrl: true},
	0x0c: {Type: KeyCtrlL, Ctrl: true},
	0x0e: {Type: KeyRune, Rune: 'n', Ctrl: true},
	0x10: {Type: KeyRune, Rune: 'p', Ctrl: true},
	0x12: {Type: KeyCtrlR, Ctrl: true},
	0x15: {Type: KeyRune, Rune: 'u', Ctrl: true},
	0x17: {Type: KeyRune, Rune: 'w', Ctrl: true},
}

// ParseKey parses one complete raw terminal input sequence into a Key.
// Incomplete or unrecognized sequences come back as KeyUnknown.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles ASCII printables and control bytes.
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if k, ok := ctrlBytes[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence handles CSI/SS3 sequences, CSI-u modified keys, and
// Alt+letter chords.
func parseEscapeSequence(data string) Key {
	if k, ok := sequences[data]; ok {
		return k
	}

	if k, ok := parseCSIu(data); ok {
		return k
	}

	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}

	// Alt+letter: ESC followed by a single printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// names provides human-readable labels for the non-rune key types.
var names = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlL:     "Ctrl+L",
	KeyCtrlR:     "Ctrl+R",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key.
func (k Key) String() string {
	if k.Type == KeyRune {
		s := string(k.Rune)
		if k.Ctrl {
			s = fmt.Sprintf("Ctrl+%s", s)
		}
		if k.Alt {
			s = fmt.Sprintf("Alt+%s", s)
		}
		return s
	}
	name, ok := names[k.Type]
	if !ok {
		return "Unknown"
	}
	if k.Shift && k.Type != KeyUnknown {
		return "Shift+" + name
	}
	return name
}
