// Package statusbar renders the one-line bar at the bottom of the
// termsh window: current directory on the left, git branch and a hint
// on the right.
package statusbar

import (
	"fmt"
	"strings"

	"termsh/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar holds the state rendered into the bottom bar.
type StatusBar struct {
	directory string
	branch    string
	running   bool
	width     int
}

// New creates a status bar with a default width.
func New() *StatusBar {
	return &StatusBar{width: 80}
}

// SetDirectory updates the displayed directory.
func (s *StatusBar) SetDirectory(dir string) {
	s.directory = dir
}

// SetBranch updates the displayed git branch ("" hides the segment).
func (s *StatusBar) SetBranch(branch string) {
	s.branch = branch
}

// SetRunning toggles the busy indicator.
func (s *StatusBar) SetRunning(running bool) {
	s.running = running
}

// SetWidth updates the render width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// Render returns the styled status bar line.
func (s *StatusBar) Render() string {
	const minGap = 2

	right := "ctrl+d exit"
	if s.running {
		right = "running… ctrl+c cancel"
	}
	if s.branch != "" {
		right = fmt.Sprintf("⎇ %s | %s", s.branch, right)
	}
	rightWidth := ansi.StringWidth(right)

	innerWidth := s.width - 2 // bar style pads one cell each side
	if innerWidth < 0 {
		innerWidth = 0
	}

	var content string
	if rightWidth >= innerWidth {
		content = ansi.Truncate(right, innerWidth, "")
	} else {
		leftAvail := innerWidth - rightWidth - minGap
		left := ""
		if leftAvail > 0 {
			left = truncatePath(s.directory, leftAvail)
		}

		gap := innerWidth - ansi.StringWidth(left) - rightWidth
		if gap < 0 {
			gap = 0
		}
		content = left + strings.Repeat(" ", gap) + right
	}

	if w := ansi.StringWidth(content); w < innerWidth {
		content += strings.Repeat(" ", innerWidth-w)
	}

	return styles.StatusBarStyle.Render(content)
}
