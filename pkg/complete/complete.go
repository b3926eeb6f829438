// Package complete produces ranked suggestions for the command line being
// typed: command names in the first position, per-command flags after it.
package complete

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 5

// Engine holds the known vocabulary and the transient suggestion state.
// Suggestions are recomputed on every input mutation and never persisted.
type Engine struct {
	commands []string            // command vocabulary, in presentation order
	flags    map[string][]string // per-command flag vocabulary

	suggestions []string
	selected    int
	hasSelected bool
}

// New creates an engine over the given vocabulary. The slice order of
// commands and flags is preserved in the suggestion lists.
func New(commands []string, flags map[string][]string) *Engine {
	return &Engine{
		commands: commands,
		flags:    flags,
	}
}

// Update recomputes the suggestion list for the given input and clears
// the selection. An empty input or an input ending in whitespace yields
// an empty, hidden suggestion set.
func (e *Engine) Update(input string) {
	e.suggestions = nil
	e.selected = 0
	e.hasSelected = false

	token, first, command := currentToken(input)
	if token == "" {
		return
	}

	switch {
	case first:
		e.suggestions = prefixMatches(e.commands, token)
	case strings.HasPrefix(token, "-"):
		e.suggestions = prefixMatches(e.flags[command], token)
	}
}

// prefixMatches returns vocabulary entries with the given prefix,
// excluding exact matches, capped at MaxSuggestions, preserving order.
func prefixMatches(vocab []string, prefix string) []string {
	var out []string
	for _, word := range vocab {
		if word == prefix {
			continue
		}
		if strings.HasPrefix(word, prefix) {
			out = append(out, word)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// currentToken extracts the token being typed: the final
// whitespace-delimited word, or "" if the input ends in whitespace.
// It also reports whether that token is in command position and what
// the command (first token) is.
func currentToken(input string) (token string, first bool, command string) {
	if input == "" {
		return "", false, ""
	}

	token = input
	if i := strings.LastIndexFunc(input, unicode.IsSpace); i >= 0 {
		// The separator may be a multi-byte space rune.
		_, size := utf8.DecodeRuneInString(input[i:])
		if i+size == len(input) {
			return "", false, ""
		}
		token = input[i+size:]
	}

	fields := strings.Fields(input)
	first = len(fields) == 1
	if len(fields) > 0 {
		command = fields[0]
	}
	return token, first, command
}

// Suggestions returns the current suggestion list.
func (e *Engine) Suggestions() []string {
	out := make([]string, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// Selected returns the index of the selected suggestion, if any.
func (e *Engine) Selected() (int, bool) {
	return e.selected, e.hasSelected
}

// Cycle advances the selection circularly through the suggestion list
// and returns the selected text. Returns false when there are no
// suggestions.
func (e *Engine) Cycle() (string, bool) {
	if len(e.suggestions) == 0 {
		return "", false
	}

	if !e.hasSelected {
		e.hasSelected = true
		e.selected = 0
	} else {
		e.selected = (e.selected + 1) % len(e.suggestions)
	}

	return e.suggestions[e.selected], true
}

// Apply replaces the final token of input with the selection, preserving
// all preceding tokens verbatim, and appends a trailing space to invite
// continued typing.
func Apply(input, selection string) string {
	if i := strings.LastIndexFunc(input, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(input[i:])
		return input[:i+size] + selection + " "
	}
	return selection + " "
}

// Dismiss clears the suggestion list and selection. Called when input is
// submitted, history recall occurs, or the user dismisses suggestions.
func (e *Engine) Dismiss() {
	e.suggestions = nil
	e.selected = 0
	e.hasSelected = false
}
