package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Context holds the per-session identity and working-directory state.
// Only the cd builtin mutates Dir; everything else reads.
type Context struct {
	Dir  string
	User string
	Host string
	Home string
}

// NewContext reads identity and directories from the environment once at
// session start. A missing value falls back to a fixed default rather
// than failing startup.
func NewContext() Context {
	user := os.Getenv("USER")
	if user == "" {
		user = "user"
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "/"
	}

	dir, err := os.Getwd()
	if err != nil || dir == "" {
		dir = home
	}

	slog.Debug("session context initialized", "user", user, "host", host, "dir", dir)

	return Context{Dir: dir, User: user, Host: host, Home: home}
}

// Prompt renders the prompt line for the current state, with the home
// directory abbreviated to ~.
func (c Context) Prompt() string {
	return c.User + "@" + c.Host + ":" + c.DisplayDir() + "$"
}

// DisplayDir returns Dir with the home prefix replaced by ~.
func (c Context) DisplayDir() string {
	if c.Home != "" && c.Home != "/" {
		if c.Dir == c.Home {
			return "~"
		}
		if strings.HasPrefix(c.Dir, c.Home+string(filepath.Separator)) {
			return "~" + c.Dir[len(c.Home):]
		}
	}
	return c.Dir
}

// ExpandHome resolves a leading ~ in path against the session home.
func (c Context) ExpandHome(path string) string {
	if path == "~" {
		return c.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(c.Home, path[2:])
	}
	return path
}
