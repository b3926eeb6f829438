package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"termsh/pkg/runner"
	"termsh/pkg/transcript"
)

// submit processes the current input line. Side effects are strictly
// ordered: the input line is recorded to the transcript, history is
// updated, builtin or external effects apply, and finally a fresh prompt
// is appended (deferred until completion for external commands).
func (e *Engine) submit() *PendingCommand {
	line := e.editor.Take()
	e.stopCycling()
	e.completer.Dismiss()

	e.transcript.Append(line, transcript.RoleInput)

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		e.appendPrompt()
		return nil
	}

	e.history.Record(trimmed)

	fields := strings.Fields(trimmed)
	name, args := fields[0], fields[1:]

	slog.Debug("command submitted", "command", name, "args", len(args))

	switch name {
	case "clear":
		e.transcript.Clear()
	case "exit":
		e.done = true
		return nil
	case "cd":
		e.changeDir(args)
	case "pwd":
		e.transcript.Append(e.ctx.Dir, transcript.RoleOutput)
	case "history":
		for i, entry := range e.history.Entries() {
			e.transcript.Append(fmt.Sprintf("%d  %s", i+1, entry), transcript.RoleOutput)
		}
	default:
		return e.startExternal(name, args)
	}

	e.appendPrompt()
	return nil
}

// changeDir implements the cd builtin. The target defaults to the home
// directory, is resolved against the current directory when relative,
// and is committed only if it exists and is a directory. On failure one
// diagnostic line is appended and state is left unchanged.
func (e *Engine) changeDir(args []string) {
	target := e.ctx.Home
	if len(args) > 0 {
		target = e.ctx.ExpandHome(args[0])
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(e.ctx.Dir, target)
	}
	target = filepath.Clean(target)

	info, err := os.Stat(target)
	switch {
	case err != nil:
		reason := "no such file or directory"
		if !errors.Is(err, os.ErrNotExist) {
			reason = err.Error()
		}
		e.transcript.Append(fmt.Sprintf("cd: %s: %s", target, reason), transcript.RoleError)
		slog.Debug("cd rejected", "target", target, "error", err)
	case !info.IsDir():
		e.transcript.Append(fmt.Sprintf("cd: %s: not a directory", target), transcript.RoleError)
	default:
		e.ctx.Dir = target
		slog.Debug("directory changed", "dir", target)
	}
}

// startExternal transitions the engine to the running state and returns
// the command for the front-end to execute off the event loop.
func (e *Engine) startExternal(name string, args []string) *PendingCommand {
	var ctx context.Context
	if e.timeout > 0 {
		ctx, e.cancel = context.WithTimeout(context.Background(), e.timeout)
	} else {
		ctx, e.cancel = context.WithCancel(context.Background())
	}

	e.running = true

	return &PendingCommand{
		Name: name,
		Args: args,
		Dir:  e.ctx.Dir,
		ctx:  ctx,
	}
}

// FinishExternal applies a finished command's buffered output atomically:
// stdout lines, stderr lines tagged as errors, then at most one
// diagnostic, then the prompt.
func (e *Engine) FinishExternal(name string, res runner.Result) {
	if !e.running {
		return
	}
	e.running = false
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	if res.StartErr != nil {
		e.transcript.Append(fmt.Sprintf("%s: %s", name, spawnReason(res.StartErr)), transcript.RoleError)
		e.appendPrompt()
		return
	}

	for _, line := range res.StdoutLines {
		e.transcript.Append(line, transcript.RoleOutput)
	}
	for _, line := range res.StderrLines {
		if line != "" {
			e.transcript.Append(line, transcript.RoleError)
		}
	}

	switch {
	case res.Canceled:
		e.transcript.Append(interruptMarker, transcript.RoleOutput)
	case res.ExitCode != 0:
		e.transcript.Append(fmt.Sprintf("%s: exit status %d", name, res.ExitCode), transcript.RoleError)
	}

	e.appendPrompt()
}

// spawnReason maps a start error to the short diagnostic users expect.
func spawnReason(err error) string {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return "command not found"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}
