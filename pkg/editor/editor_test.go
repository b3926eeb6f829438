package editor

import (
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestInsertRune(t *testing.T) {
	e := New()

	e.InsertRune('h')
	e.InsertRune('i')

	if e.Line() != "hi" {
		t.Errorf("Expected %q, got %q", "hi", e.Line())
	}
	if e.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", e.Cursor())
	}
}

func TestInsertRune_MidLine(t *testing.T) {
	e := New()
	e.InsertText("ac")

	e.MoveLeft()
	e.InsertRune('b')

	if e.Line() != "abc" {
		t.Errorf("Expected %q, got %q", "abc", e.Line())
	}
	if e.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", e.Cursor())
	}
}

func TestInsertRune_IgnoresControl(t *testing.T) {
	e := New()

	e.InsertRune('\n')
	e.InsertRune('\r')
	e.InsertRune('\t')
	e.InsertRune(0x07)
	e.InsertRune('a')

	if e.Line() != "a" {
		t.Errorf("Expected %q, got %q", "a", e.Line())
	}
}

func TestInsertText_FiltersLineTerminators(t *testing.T) {
	e := New()

	e.InsertText("echo\nhi\r")

	if e.Line() != "echohi" {
		t.Errorf("Expected %q, got %q", "echohi", e.Line())
	}
}

func TestInsertRune_MultiByte(t *testing.T) {
	e := New()

	e.InsertText("héllo")
	e.MoveStart()
	e.MoveRight()
	e.MoveRight()
	e.DeleteBackward() // removes é

	if e.Line() != "hllo" {
		t.Errorf("Expected %q, got %q", "hllo", e.Line())
	}
	if !utf8.ValidString(e.Line()) {
		t.Error("Buffer contains invalid UTF-8")
	}
}

func TestDeleteBackward_AtStart(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.MoveStart()

	e.DeleteBackward() // no-op

	if e.Line() != "abc" {
		t.Errorf("Expected %q, got %q", "abc", e.Line())
	}
	if e.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", e.Cursor())
	}
}

func TestDeleteForward(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.MoveStart()

	e.DeleteForward()

	if e.Line() != "bc" {
		t.Errorf("Expected %q, got %q", "bc", e.Line())
	}

	e.MoveEnd()
	e.DeleteForward() // no-op at end

	if e.Line() != "bc" {
		t.Errorf("Expected %q, got %q", "bc", e.Line())
	}
}

func TestMove_Edges(t *testing.T) {
	e := New()
	e.InsertText("ab")

	e.MoveRight() // already at end, no-op
	if e.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", e.Cursor())
	}

	e.MoveStart()
	e.MoveLeft() // already at start, no-op
	if e.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", e.Cursor())
	}
}

func TestSetLine(t *testing.T) {
	e := New()
	e.InsertText("old")

	e.SetLine("recalled command")

	if e.Line() != "recalled command" {
		t.Errorf("Expected %q, got %q", "recalled command", e.Line())
	}
	if e.Cursor() != e.Len() {
		t.Errorf("Expected cursor at end (%d), got %d", e.Len(), e.Cursor())
	}
}

func TestTake(t *testing.T) {
	e := New()
	e.InsertText("ls -la")

	line := e.Take()

	if line != "ls -la" {
		t.Errorf("Expected %q, got %q", "ls -la", line)
	}
	if e.Line() != "" || e.Cursor() != 0 {
		t.Errorf("Expected empty editor after Take, got %q cursor %d", e.Line(), e.Cursor())
	}
}

// Random walks of edits must keep the cursor in bounds and the buffer
// valid UTF-8 at every step.
func TestRandomEdits_InvariantsHold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []rune("abc 日本語é-")
	e := New()

	for i := 0; i < 5000; i++ {
		switch rng.Intn(7) {
		case 0, 1, 2:
			e.InsertRune(alphabet[rng.Intn(len(alphabet))])
		case 3:
			e.DeleteBackward()
		case 4:
			e.DeleteForward()
		case 5:
			e.MoveLeft()
		case 6:
			e.MoveRight()
		}

		if e.Cursor() < 0 || e.Cursor() > e.Len() {
			t.Fatalf("Step %d: cursor %d out of bounds [0,%d]", i, e.Cursor(), e.Len())
		}
		if !utf8.ValidString(e.Line()) {
			t.Fatalf("Step %d: buffer is not valid UTF-8: %q", i, e.Line())
		}
	}
}
