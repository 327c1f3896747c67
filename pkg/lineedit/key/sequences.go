// ABOUTME: Escape sequence tables for CSI and SS3 key encodings.
// ABOUTME: Includes a CSI-u parser so modifier-carrying chords like Shift+Enter decode.

package key

import (
	"strconv"
	"strings"
)

// sequences maps standard CSI and SS3 escape sequences to Keys. These cover
// the common terminal emulator encodings for navigation keys.
var sequences = map[string]Key{
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[3~": {Type: KeyDelete},

	// SS3 variants sent by terminals in application mode.
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

// csiuBase maps CSI-u key codes to their unmodified Keys.
var csiuBase = map[int]Key{
	13:  {Type: KeyEnter},
	9:   {Type: KeyTab},
	27:  {Type: KeyEscape},
	127: {Type: KeyBackspace},
}

// parseCSIu parses a CSI-u sequence of the form ESC [ code ; mod u.
// Terminals implementing the kitty keyboard protocol use this encoding for
// chords legacy sequences cannot express, Shift+Enter in particular.
func parseCSIu(data string) (Key, bool) {
	if !strings.HasPrefix(data, "\x1b[") || !strings.HasSuffix(data, "u") {
		return Key{}, false
	}
	body := data[2 : len(data)-1]

	codeStr, modStr, hasMod := strings.Cut(body, ";")
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return Key{}, false
	}

	mod := 1
	if hasMod {
		if mod, err = strconv.Atoi(modStr); err != nil {
			return Key{}, false
		}
	}

	k, ok := csiuBase[code]
	if !ok {
		if code < 0x20 || code > 0x10ffff {
			return Key{}, false
		}
		k = Key{Type: KeyRune, Rune: rune(code)}
	}

	// Modifier field is 1-based: bit 0 shift, bit 1 alt, bit 2 ctrl.
	mod--
	k.Shift = mod&1 != 0
	k.Alt = mod&2 != 0
	k.Ctrl = mod&4 != 0
	return k, true
}
