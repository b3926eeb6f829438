// Package runner executes external commands for the session, capturing
// their output streams and exit status. Execution happens off the
// session's event loop; the caller feeds the Result back to the engine
// when the child exits.
package runner

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Spec describes one external command invocation.
type Spec struct {
	Name string
	Args []string
	Dir  string // working directory for the child
}

// Result holds everything captured from a finished (or failed to start)
// child process.
type Result struct {
	StdoutLines []string
	StderrLines []string
	ExitCode    int
	StartErr    error // set when the child could not be spawned at all
	Canceled    bool
	Duration    time.Duration
}

// Runner spawns child processes. The zero value is ready to use.
type Runner struct{}

// Run executes the command described by spec, blocking until the child
// exits or ctx is canceled. Cancellation kills the child. Invalid UTF-8
// in either stream is replaced, never fatal.
func (Runner) Run(ctx context.Context, spec Spec) Result {
	start := time.Now()

	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		slog.Debug("command spawn failed", "command", spec.Name, "error", err)
		return Result{StartErr: err, Duration: time.Since(start)}
	}

	err := cmd.Wait()

	res := Result{
		StdoutLines: splitLines(stdout.Bytes()),
		StderrLines: splitLines(stderr.Bytes()),
		Canceled:    ctx.Err() != nil,
		Duration:    time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
	}

	slog.Debug("command finished",
		"command", spec.Name,
		"exit_code", res.ExitCode,
		"duration", res.Duration,
		"canceled", res.Canceled)

	return res
}

// splitLines decodes captured output into lines, replacing invalid UTF-8
// sequences. A trailing newline does not produce an empty final line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	text := strings.ToValidUTF8(string(data), "�")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
