package ui

import (
	"strings"
	"testing"

	"termsh/pkg/session"
	"termsh/pkg/transcript"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderTranscript_JoinsPromptAndInput(t *testing.T) {
	snap := session.Snapshot{
		Lines: []transcript.Line{
			{Text: "demo@box:~$", Role: transcript.RolePrompt},
			{Text: "pwd", Role: transcript.RoleInput},
			{Text: "/home/demo", Role: transcript.RoleOutput},
			{Text: "demo@box:~$", Role: transcript.RolePrompt},
		},
	}

	out := ansi.Strip(renderTranscript(snap))
	lines := strings.Split(out, "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 rendered rows, got %d: %q", len(lines), out)
	}
	if lines[0] != "demo@box:~$ pwd" {
		t.Errorf("Row 0 = %q, want prompt joined with input", lines[0])
	}
	if lines[1] != "/home/demo" {
		t.Errorf("Row 1 = %q", lines[1])
	}
}

func TestRenderTranscript_LivePromptShowsInputAndCursor(t *testing.T) {
	snap := session.Snapshot{
		Lines: []transcript.Line{
			{Text: "demo@box:~$", Role: transcript.RolePrompt},
		},
		Input:  "ech",
		Cursor: 3,
		Blink:  true,
	}

	out := ansi.Strip(renderTranscript(snap))
	// Cursor at end renders as a trailing space cell.
	if want := "demo@box:~$ ech "; out != want {
		t.Errorf("renderTranscript() = %q, want %q", out, want)
	}
}

func TestRenderInput_CursorMidLine(t *testing.T) {
	out := ansi.Strip(renderInput("hello", 1, true))
	if out != "hello" {
		t.Errorf("renderInput() = %q, want text preserved", out)
	}
}

func TestRenderInput_CursorClamped(t *testing.T) {
	out := ansi.Strip(renderInput("hi", 99, false))
	if out != "hi " {
		t.Errorf("renderInput() = %q, want %q", out, "hi ")
	}
}

func TestRenderSuggestions_Empty(t *testing.T) {
	if out := renderSuggestions(session.Snapshot{}); out != "" {
		t.Errorf("Expected empty suggestion row, got %q", out)
	}
}

func TestRenderSuggestions_MarksSelection(t *testing.T) {
	snap := session.Snapshot{
		Suggestions: []string{"cd", "clear"},
		Selected:    1,
		HasSelected: true,
	}

	out := ansi.Strip(renderSuggestions(snap))
	if !strings.Contains(out, "cd") || !strings.Contains(out, "clear") {
		t.Errorf("Expected both suggestions rendered, got %q", out)
	}
}
