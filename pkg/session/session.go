// Package session implements the interactive session engine: it owns the
// transcript, the input line, command history, and autocomplete state,
// and advances them in response to discrete input events. The rendering
// layer never mutates the engine directly; it feeds events in and reads
// an immutable snapshot back out.
package session

import (
	"context"
	"time"

	"termsh/pkg/complete"
	"termsh/pkg/editor"
	"termsh/pkg/history"
	"termsh/pkg/transcript"
)

// Action is a structural key event routed to the engine.
type Action int

const (
	ActionSubmit Action = iota
	ActionBackspace
	ActionDelete
	ActionCursorLeft
	ActionCursorRight
	ActionCursorStart
	ActionCursorEnd
	ActionHistoryPrev
	ActionHistoryNext
	ActionCompleteCycle
	ActionCompleteDismiss
	ActionInterrupt
	ActionClearScreen
	ActionQuit
)

// interruptMarker is the literal line appended when the user interrupts.
const interruptMarker = "^C"

// blinkInterval is how often the cursor visibility flag toggles.
const blinkInterval = 500 * time.Millisecond

// Options configures a new engine.
type Options struct {
	ScrollbackLines int
	HistoryLimit    int
	Commands        []string
	Flags           map[string][]string
	CommandTimeout  time.Duration // zero means no timeout

	// Context overrides the environment-derived session context when
	// non-zero. Used by tests and embedders.
	Context Context
}

// Engine is the session state machine. It is single-threaded: each event
// is processed to completion before the next is accepted, so no locking
// happens at this level.
type Engine struct {
	transcript *transcript.Buffer
	editor     *editor.Editor
	history    *history.Store
	completer  *complete.Engine
	ctx        Context

	timeout time.Duration

	// completionBase is the input as it was when Tab cycling started, so
	// repeated cycles keep replacing the same token.
	completionBase string
	cycling        bool

	running bool
	cancel  context.CancelFunc

	done bool

	blinkVisible bool
	blinkElapsed time.Duration
}

// PendingCommand is an external command the engine has classified but
// not executed. The front-end runs it off the event loop and feeds the
// result back through FinishExternal.
type PendingCommand struct {
	Name string
	Args []string
	Dir  string

	ctx context.Context
}

// Context returns the context governing the command's lifetime. It is
// canceled when the user interrupts.
func (p *PendingCommand) Context() context.Context {
	return p.ctx
}

// New creates an engine with an initial prompt already in the transcript.
func New(opts Options) *Engine {
	commands := opts.Commands
	if commands == nil {
		commands = complete.DefaultCommands()
	}
	flags := opts.Flags
	if flags == nil {
		flags = complete.DefaultFlags()
	}

	ctx := opts.Context
	if ctx == (Context{}) {
		ctx = NewContext()
	}

	e := &Engine{
		transcript:   transcript.New(opts.ScrollbackLines),
		editor:       editor.New(),
		history:      history.New(opts.HistoryLimit),
		completer:    complete.New(commands, flags),
		ctx:          ctx,
		timeout:      opts.CommandTimeout,
		blinkVisible: true,
	}

	e.appendPrompt()
	return e
}

// InsertText inserts typed or pasted text at the cursor and recomputes
// suggestions. Ignored while an external command is running.
func (e *Engine) InsertText(s string) {
	if e.running || e.done {
		return
	}

	e.editor.InsertText(s)
	e.stopCycling()
	e.completer.Update(e.editor.Line())
	e.blinkReset()
}

// Apply routes a structural key action. The returned PendingCommand is
// non-nil only when a submission classified as an external command; the
// caller must execute it and call FinishExternal with the result.
func (e *Engine) Apply(action Action) *PendingCommand {
	if e.done {
		return nil
	}

	if e.running {
		// Only interrupt and quit are accepted while a command runs.
		switch action {
		case ActionInterrupt:
			if e.cancel != nil {
				e.cancel()
			}
		case ActionQuit:
			e.done = true
		}
		return nil
	}

	switch action {
	case ActionSubmit:
		return e.submit()

	case ActionBackspace:
		e.editor.DeleteBackward()
		e.stopCycling()
		e.completer.Update(e.editor.Line())

	case ActionDelete:
		e.editor.DeleteForward()
		e.stopCycling()
		e.completer.Update(e.editor.Line())

	case ActionCursorLeft:
		e.editor.MoveLeft()

	case ActionCursorRight:
		e.editor.MoveRight()

	case ActionCursorStart:
		e.editor.MoveStart()

	case ActionCursorEnd:
		e.editor.MoveEnd()

	case ActionHistoryPrev:
		if line, ok := e.history.RecallPrevious(); ok {
			e.editor.SetLine(line)
			e.stopCycling()
			e.completer.Dismiss()
		}

	case ActionHistoryNext:
		if line, ok := e.history.RecallNext(); ok {
			e.editor.SetLine(line)
			e.stopCycling()
			e.completer.Dismiss()
		}

	case ActionCompleteCycle:
		e.cycleCompletion()

	case ActionCompleteDismiss:
		e.stopCycling()
		e.completer.Dismiss()

	case ActionInterrupt:
		e.interrupt()

	case ActionClearScreen:
		e.transcript.Clear()
		e.appendPrompt()

	case ActionQuit:
		e.done = true
	}

	e.blinkReset()
	return nil
}

// Tick advances the cursor blink clock.
func (e *Engine) Tick(elapsed time.Duration) {
	e.blinkElapsed += elapsed
	for e.blinkElapsed >= blinkInterval {
		e.blinkElapsed -= blinkInterval
		e.blinkVisible = !e.blinkVisible
	}
}

// cycleCompletion advances the suggestion selection and applies it to
// the input, keeping the pre-cycling input as the base so repeated Tabs
// replace the same token.
func (e *Engine) cycleCompletion() {
	if !e.cycling {
		e.completionBase = e.editor.Line()
	}

	sel, ok := e.completer.Cycle()
	if !ok {
		return
	}

	e.cycling = true
	e.editor.SetLine(complete.Apply(e.completionBase, sel))
}

func (e *Engine) stopCycling() {
	e.cycling = false
	e.completionBase = ""
}

// interrupt handles Ctrl+C while idle: the input line is discarded, a
// literal marker is appended, and the prompt is re-emitted. History is
// untouched.
func (e *Engine) interrupt() {
	e.editor.Clear()
	e.stopCycling()
	e.completer.Dismiss()
	e.history.StopBrowsing()
	e.transcript.Append(interruptMarker, transcript.RoleOutput)
	e.appendPrompt()
}

func (e *Engine) appendPrompt() {
	e.transcript.Append(e.ctx.Prompt(), transcript.RolePrompt)
}

func (e *Engine) blinkReset() {
	e.blinkVisible = true
	e.blinkElapsed = 0
}

// Running reports whether an external command is in flight.
func (e *Engine) Running() bool {
	return e.running
}

// Done reports whether the session has ended (exit builtin or quit).
func (e *Engine) Done() bool {
	return e.done
}

// Dir returns the session's current working directory.
func (e *Engine) Dir() string {
	return e.ctx.Dir
}

// Transcript exposes the transcript buffer for export.
func (e *Engine) Transcript() *transcript.Buffer {
	return e.transcript
}

// Snapshot is the read-only view the rendering layer consumes.
type Snapshot struct {
	Lines       []transcript.Line
	Input       string
	Cursor      int
	Blink       bool
	Suggestions []string
	Selected    int
	HasSelected bool
	Running     bool
	Done        bool
	Dir         string
	DisplayDir  string
}

// Snapshot returns a copy of everything the renderer needs. Mutating the
// returned value has no effect on the engine.
func (e *Engine) Snapshot() Snapshot {
	selected, hasSelected := e.completer.Selected()
	return Snapshot{
		Lines:       e.transcript.Lines(),
		Input:       e.editor.Line(),
		Cursor:      e.editor.Cursor(),
		Blink:       e.blinkVisible,
		Suggestions: e.completer.Suggestions(),
		Selected:    selected,
		HasSelected: hasSelected,
		Running:     e.running,
		Done:        e.done,
		Dir:         e.ctx.Dir,
		DisplayDir:  e.ctx.DisplayDir(),
	}
}
