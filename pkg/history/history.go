// Package history keeps the ordered list of submitted commands and the
// recall cursor used for up/down navigation.
package history

// Store holds previously executed commands. Blank commands and a command
// identical to the immediately preceding entry are not recorded. The
// recall cursor is tracked with an explicit browsing flag; there is no
// sentinel index.
type Store struct {
	entries  []string
	limit    int
	cursor   int
	browsing bool
}

// DefaultLimit bounds the number of retained entries when New is given
// a non-positive limit.
const DefaultLimit = 1000

// New creates a history store retaining at most limit entries.
func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// Record appends a command unless it is empty or identical to the last
// recorded entry, and always leaves recall mode.
func (s *Store) Record(cmd string) {
	s.browsing = false

	if cmd == "" {
		return
	}
	if len(s.entries) > 0 && s.entries[len(s.entries)-1] == cmd {
		return
	}

	s.entries = append(s.entries, cmd)
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// RecallPrevious steps backward through history. The first call jumps to
// the most recent entry; at the oldest entry further calls return it
// unchanged. Returns false when history is empty.
func (s *Store) RecallPrevious() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}

	if !s.browsing {
		s.browsing = true
		s.cursor = len(s.entries) - 1
	} else if s.cursor > 0 {
		s.cursor--
	}

	return s.entries[s.cursor], true
}

// RecallNext steps forward through history. Stepping past the newest
// entry exits recall mode and returns an empty string so the caller can
// restore a blank input line. Returns false when not browsing.
func (s *Store) RecallNext() (string, bool) {
	if !s.browsing {
		return "", false
	}

	if s.cursor < len(s.entries)-1 {
		s.cursor++
		return s.entries[s.cursor], true
	}

	s.browsing = false
	return "", true
}

// StopBrowsing leaves recall mode without recording anything. The next
// RecallPrevious starts again from the most recent entry.
func (s *Store) StopBrowsing() {
	s.browsing = false
}

// Browsing reports whether the store is currently in recall mode.
func (s *Store) Browsing() bool {
	return s.browsing
}

// Entries returns a copy of all recorded commands, oldest first.
func (s *Store) Entries() []string {
	result := make([]string, len(s.entries))
	copy(result, s.entries)
	return result
}

// Len returns the number of recorded commands.
func (s *Store) Len() int {
	return len(s.entries)
}
