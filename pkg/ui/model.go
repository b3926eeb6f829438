// Package ui is the Bubble Tea front-end for the session engine. It
// translates key presses into engine actions, runs external commands off
// the event loop, and renders transcript snapshots into a scrollable
// viewport with a suggestion row and status bar underneath.
package ui

import (
	"log/slog"
	"time"

	"termsh/pkg/runner"
	"termsh/pkg/session"
	"termsh/pkg/ui/statusbar"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// tickInterval drives the cursor blink clock.
const tickInterval = 250 * time.Millisecond

// branchInterval is how often the git branch segment refreshes.
const branchInterval = time.Second

// chromeRows is the number of rows below the viewport (suggestions + status bar).
const chromeRows = 2

// Model is the Bubble Tea application state.
type Model struct {
	engine *session.Engine
	run    *runner.Runner

	viewport  viewport.Model
	statusBar *statusbar.StatusBar

	width  int
	height int
	ready  bool

	// lastLineCount detects transcript growth between syncs so the
	// viewport only autoscrolls on new content.
	lastLineCount int
}

// commandDoneMsg delivers the result of an external command back to the
// event loop.
type commandDoneMsg struct {
	name   string
	result runner.Result
}

type blinkTickMsg time.Time

type branchTickMsg time.Time

// NewModel creates the front-end for an engine.
func NewModel(engine *session.Engine) Model {
	m := Model{
		engine:    engine,
		run:       &runner.Runner{},
		viewport:  viewport.New(),
		statusBar: statusbar.New(),
	}
	m.sync()
	return m
}

// Init starts the blink and branch tickers (Bubble Tea lifecycle method).
func (m Model) Init() tea.Cmd {
	return tea.Batch(blinkTick(), branchTick())
}

func blinkTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return blinkTickMsg(t)
	})
}

func branchTick() tea.Cmd {
	return tea.Tick(branchInterval, func(t time.Time) tea.Msg {
		return branchTickMsg(t)
	})
}

// Update handles messages (Bubble Tea lifecycle method).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(max(msg.Height-chromeRows, 0))
		m.statusBar.SetWidth(msg.Width)
		m.sync()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case commandDoneMsg:
		m.engine.FinishExternal(msg.name, msg.result)
		m.sync()
		return m, nil

	case blinkTickMsg:
		m.engine.Tick(tickInterval)
		m.sync()
		return m, blinkTick()

	case branchTickMsg:
		m.statusBar.SetBranch(statusbar.CurrentBranch(m.engine.Dir()))
		return m, branchTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+d":
		m.engine.Apply(session.ActionQuit)
		return m, tea.Quit

	case "ctrl+c":
		m.engine.Apply(session.ActionInterrupt)

	case "ctrl+l":
		m.engine.Apply(session.ActionClearScreen)

	case "enter":
		if pending := m.engine.Apply(session.ActionSubmit); pending != nil {
			cmd = m.execute(pending)
		}
		if m.engine.Done() {
			m.sync()
			return m, tea.Quit
		}

	case "backspace":
		m.engine.Apply(session.ActionBackspace)

	case "delete":
		m.engine.Apply(session.ActionDelete)

	case "left":
		m.engine.Apply(session.ActionCursorLeft)

	case "right":
		m.engine.Apply(session.ActionCursorRight)

	case "home", "ctrl+a":
		m.engine.Apply(session.ActionCursorStart)

	case "end", "ctrl+e":
		m.engine.Apply(session.ActionCursorEnd)

	case "up":
		m.engine.Apply(session.ActionHistoryPrev)

	case "down":
		m.engine.Apply(session.ActionHistoryNext)

	case "tab":
		m.engine.Apply(session.ActionCompleteCycle)

	case "esc":
		m.engine.Apply(session.ActionCompleteDismiss)

	case "pgup":
		m.viewport.PageUp()
		return m, nil

	case "pgdown":
		m.viewport.PageDown()
		return m, nil

	default:
		if text := msg.Key().Text; text != "" {
			m.engine.InsertText(text)
		}
	}

	m.sync()
	return m, cmd
}

// execute runs an external command off the event loop and delivers the
// result as a message.
func (m Model) execute(pending *session.PendingCommand) tea.Cmd {
	spec := runner.Spec{
		Name: pending.Name,
		Args: pending.Args,
		Dir:  pending.Dir,
	}
	ctx := pending.Context()
	run := m.run

	return func() tea.Msg {
		slog.Debug("executing command", "name", spec.Name, "args", spec.Args)
		return commandDoneMsg{name: spec.Name, result: run.Run(ctx, spec)}
	}
}

// sync refreshes the viewport and status bar from the engine snapshot.
// The viewport autoscrolls only when it was already at the bottom or
// the transcript changed, so manual scrollback survives blink ticks.
func (m *Model) sync() {
	snap := m.engine.Snapshot()

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(renderTranscript(snap))
	if atBottom || len(snap.Lines) != m.lastLineCount {
		m.viewport.GotoBottom()
	}
	m.lastLineCount = len(snap.Lines)

	m.statusBar.SetDirectory(snap.DisplayDir)
	m.statusBar.SetRunning(snap.Running)
}

// View renders the screen (Bubble Tea lifecycle method).
func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView("")
		v.AltScreen = true
		return v
	}

	snap := m.engine.Snapshot()
	v := tea.NewView(m.viewport.View() + "\n" + renderSuggestions(snap) + "\n" + m.statusBar.Render())
	v.AltScreen = true
	return v
}
