package transcript

import (
	"sync"
)

// Role tags a transcript line with its origin so the renderer never has
// to re-derive meaning from the text itself.
type Role int

const (
	RoleOutput Role = iota // stdout of an external command or builtin output
	RoleInput              // echoed user input
	RolePrompt             // rendered prompt line
	RoleError              // stderr lines and diagnostics
)

// String returns a short name for the role, used in logs and exports.
func (r Role) String() string {
	switch r {
	case RoleOutput:
		return "output"
	case RoleInput:
		return "input"
	case RolePrompt:
		return "prompt"
	case RoleError:
		return "error"
	default:
		return "unknown"
	}
}

// Line is a single rendered transcript line. Immutable once appended.
type Line struct {
	Text string
	Role Role
}

// Buffer is a thread-safe ring buffer holding the session transcript.
// When the capacity is exceeded the oldest lines are dropped first;
// lines are never reordered.
type Buffer struct {
	mu       sync.RWMutex
	lines    []Line
	capacity int
	size     int
	head     int // write position
}

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 1000

// New creates a transcript buffer with the specified capacity (in lines).
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Buffer{
		lines:    make([]Line, capacity),
		capacity: capacity,
	}
}

// Append adds a line to the transcript, evicting the oldest line when
// the buffer is full.
func (b *Buffer) Append(text string, role Role) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines[b.head] = Line{Text: text, Role: role}
	b.head = (b.head + 1) % b.capacity

	if b.size < b.capacity {
		b.size++
	}
}

// Lines returns a copy of all transcript lines in order, oldest first.
func (b *Buffer) Lines() []Line {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]Line, b.size)
	start := (b.head - b.size + b.capacity) % b.capacity

	for i := 0; i < b.size; i++ {
		result[i] = b.lines[(start+i)%b.capacity]
	}

	return result
}

// LastN returns the last n lines, oldest first. Returns fewer lines if
// the buffer contains fewer than n.
func (b *Buffer) LastN(n int) []Line {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n <= 0 {
		return []Line{}
	}
	if n > b.size {
		n = b.size
	}

	result := make([]Line, n)
	start := (b.head - n + b.capacity) % b.capacity

	for i := 0; i < n; i++ {
		result[i] = b.lines[(start+i)%b.capacity]
	}

	return result
}

// Len returns the current number of lines in the transcript.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Cap returns the maximum number of lines the transcript retains.
func (b *Buffer) Cap() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.capacity
}

// Clear empties the transcript. Used by the clear builtin.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = make([]Line, b.capacity)
	b.size = 0
	b.head = 0
}

// ExportAsText returns the transcript contents as a single string with
// lines separated by newlines.
func (b *Buffer) ExportAsText() string {
	lines := b.Lines()

	if len(lines) == 0 {
		return ""
	}

	totalSize := 0
	for _, line := range lines {
		totalSize += len(line.Text) + 1
	}

	result := make([]byte, 0, totalSize)
	for i, line := range lines {
		result = append(result, line.Text...)
		if i < len(lines)-1 {
			result = append(result, '\n')
		}
	}

	return string(result)
}
