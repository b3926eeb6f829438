// Package editor implements the single-line input buffer for the session.
// All operations work on whole runes so multi-byte glyphs are never split,
// and edge operations (deleting at position 0, moving past the end) are
// no-ops rather than errors.
package editor

import (
	"strings"
	"unicode"
)

// Editor is a mutable line buffer with a cursor. The cursor is counted
// in runes and always stays within [0, len(runes)].
type Editor struct {
	runes  []rune
	cursor int
}

// New creates an empty editor.
func New() *Editor {
	return &Editor{}
}

// Line returns the current buffer contents.
func (e *Editor) Line() string {
	return string(e.runes)
}

// Cursor returns the cursor position in runes.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the buffer length in runes.
func (e *Editor) Len() int {
	return len(e.runes)
}

// InsertRune inserts a single rune at the cursor. Control characters
// and line terminators are ignored.
func (e *Editor) InsertRune(r rune) {
	if r == '\n' || r == '\r' || unicode.IsControl(r) {
		return
	}

	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

// InsertText inserts a string at the cursor, filtering out control
// characters and line terminators (pasted text may carry both).
func (e *Editor) InsertText(s string) {
	for _, r := range s {
		e.InsertRune(r)
	}
}

// DeleteBackward removes the rune before the cursor. No-op at position 0.
func (e *Editor) DeleteBackward() {
	if e.cursor == 0 {
		return
	}

	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
}

// DeleteForward removes the rune at the cursor. No-op at the end.
func (e *Editor) DeleteForward() {
	if e.cursor >= len(e.runes) {
		return
	}

	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
}

// MoveLeft moves the cursor one rune left. No-op at position 0.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one rune right. No-op at the end.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.runes) {
		e.cursor++
	}
}

// MoveStart moves the cursor to the beginning of the line.
func (e *Editor) MoveStart() {
	e.cursor = 0
}

// MoveEnd moves the cursor past the last rune.
func (e *Editor) MoveEnd() {
	e.cursor = len(e.runes)
}

// SetLine replaces the buffer contents and places the cursor at the end.
// Used when history recall swaps in a previous command.
func (e *Editor) SetLine(s string) {
	s = sanitize(s)
	e.runes = []rune(s)
	e.cursor = len(e.runes)
}

// Take returns the buffer contents and resets the editor to empty.
// Called on submit.
func (e *Editor) Take() string {
	line := string(e.runes)
	e.runes = e.runes[:0]
	e.cursor = 0
	return line
}

// Clear empties the buffer and resets the cursor.
func (e *Editor) Clear() {
	e.runes = e.runes[:0]
	e.cursor = 0
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
