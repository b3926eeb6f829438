package ui

import (
	"strings"

	"termsh/pkg/session"
	"termsh/pkg/transcript"
	"termsh/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// renderTranscript turns a snapshot into styled screen lines. Prompt
// lines are joined with the input that follows them; the trailing prompt
// gets the live input line with the cursor overlay.
func renderTranscript(snap session.Snapshot) string {
	var b strings.Builder

	lines := snap.Lines
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if i > 0 {
			b.WriteByte('\n')
		}

		if line.Role == transcript.RolePrompt {
			b.WriteString(styles.PromptStyle.Render(line.Text))
			b.WriteByte(' ')

			switch {
			case i == len(lines)-1:
				// Live prompt: the line being edited.
				b.WriteString(renderInput(snap.Input, snap.Cursor, snap.Blink))
			case lines[i+1].Role == transcript.RoleInput:
				b.WriteString(styles.InputStyle.Render(lines[i+1].Text))
				i++
			}
			continue
		}

		b.WriteString(styleFor(line.Role).Render(line.Text))
	}

	return b.String()
}

func styleFor(role transcript.Role) lipgloss.Style {
	switch role {
	case transcript.RoleInput:
		return styles.InputStyle
	case transcript.RolePrompt:
		return styles.PromptStyle
	case transcript.RoleError:
		return styles.ErrorStyle
	default:
		return styles.OutputStyle
	}
}

// renderInput renders the editable line with a block cursor at the
// cursor position. When blink is off the cursor cell renders unstyled.
func renderInput(input string, cursor int, blink bool) string {
	runes := []rune(input)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	before := string(runes[:cursor])
	cur := " "
	after := ""
	if cursor < len(runes) {
		cur = string(runes[cursor])
		after = string(runes[cursor+1:])
	}
	if runewidth.StringWidth(cur) == 0 {
		cur = " "
	}

	var b strings.Builder
	b.WriteString(styles.InputStyle.Render(before))
	if blink {
		b.WriteString(styles.CursorStyle.Render(cur))
	} else {
		b.WriteString(styles.InputStyle.Render(cur))
	}
	b.WriteString(styles.InputStyle.Render(after))
	return b.String()
}

// renderSuggestions renders the autocomplete row. Empty when there are
// no suggestions so the row reads as a blank line.
func renderSuggestions(snap session.Snapshot) string {
	if len(snap.Suggestions) == 0 {
		return ""
	}

	parts := make([]string, 0, len(snap.Suggestions))
	for i, s := range snap.Suggestions {
		if snap.HasSelected && i == snap.Selected {
			parts = append(parts, styles.SelectedSuggestionStyle.Render(" "+s+" "))
			continue
		}
		parts = append(parts, styles.SuggestionStyle.Render(" "+s+" "))
	}
	return strings.Join(parts, " ")
}
