package statusbar

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncatePath shortens a directory path to maxWidth display cells,
// keeping the leading segment and as many trailing segments as fit,
// eliding the middle: /home/user/a/b/c -> /home/../b/c.
func truncatePath(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(path) <= maxWidth {
		return path
	}

	prefix := ""
	rest := path
	switch {
	case strings.HasPrefix(path, "~"):
		prefix = "~"
		rest = strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")
	case strings.HasPrefix(path, "/"):
		prefix = "/"
		rest = strings.TrimPrefix(path, "/")
	}

	segments := strings.Split(rest, "/")
	if len(segments) < 2 {
		return ansi.Truncate(path, maxWidth, "..")
	}

	head := prefix
	if prefix == "/" {
		head = "/" + segments[0]
		segments = segments[1:]
	}

	// Try keeping up to three trailing segments.
	maxTail := 3
	if len(segments) < maxTail {
		maxTail = len(segments)
	}
	for n := maxTail; n >= 1; n-- {
		tail := strings.Join(segments[len(segments)-n:], "/")
		candidate := head + "/../" + tail
		if ansi.StringWidth(candidate) <= maxWidth {
			return candidate
		}
	}

	// Even one segment does not fit; truncate the last one.
	tail := segments[len(segments)-1]
	lead := head + "/../"
	avail := maxWidth - ansi.StringWidth(lead)
	if avail <= 0 {
		return ansi.Truncate(head, maxWidth, "..")
	}
	return lead + ansi.Truncate(tail, avail, "..")
}
