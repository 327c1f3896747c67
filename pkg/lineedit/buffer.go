// ABOUTME: Buffer is the rune-level edit buffer with a single cursor index.
// ABOUTME: All operations clamp at the bounds; mutators report whether content changed.

package lineedit

// Buffer holds the in-progress input as a flat rune sequence plus a cursor.
// Soft newlines live in the content as '\n'. The cursor index is always in
// [0, len(content)]; every operation preserves that invariant by clamping
// instead of failing.
type Buffer struct {
	content []rune
	cursor  int
}

// NewBuffer creates a Buffer seeded with initial, cursor at the end.
func NewBuffer(initial string) *Buffer {
	b := &Buffer{}
	b.SetValue(initial)
	return b
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.content)
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Cursor returns the cursor index in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Runes returns a copy of the content.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.content))
	copy(out, b.content)
	return out
}

// Insert splices s at the cursor and advances the cursor past it. The whole
// string goes in as one edit, so pasted text moves the cursor once.
// Reports whether content changed.
func (b *Buffer) Insert(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	next := make([]rune, 0, len(b.content)+len(runes))
	next = append(next, b.content[:b.cursor]...)
	next = append(next, runes...)
	next = append(next, b.content[b.cursor:]...)
	b.content = next
	b.cursor += len(runes)
	return true
}

// DeleteBackward removes the rune before the cursor. No-op at index 0.
func (b *Buffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--
	return true
}

// DeleteForward removes the rune at the cursor. No-op at the end.
func (b *Buffer) DeleteForward() bool {
	if b.cursor >= len(b.content) {
		return false
	}
	b.content = append(b.content[:b.cursor], b.content[b.cursor+1:]...)
	return true
}

// MoveLeft moves the cursor one rune left, clamped at 0.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right, clamped at the end.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.content) {
		b.cursor++
	}
}

// MoveHome moves the cursor to the start of the current line.
func (b *Buffer) MoveHome() {
	for b.cursor > 0 && b.content[b.cursor-1] != '\n' {
		b.cursor--
	}
}

// MoveEnd moves the cursor to the end of the current line.
func (b *Buffer) MoveEnd() {
	for b.cursor < len(b.content) && b.content[b.cursor] != '\n' {
		b.cursor++
	}
}

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() bool {
	if len(b.content) == 0 {
		return false
	}
	b.content = b.content[:0]
	b.cursor = 0
	return true
}

// SetValue replaces the whole content and places the cursor at the end.
// History recall and suggestion substitution go through this single path.
func (b *Buffer) SetValue(s string) bool {
	changed := string(b.content) != s
	b.content = []rune(s)
	b.cursor = len(b.content)
	return changed
}
