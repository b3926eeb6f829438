package main

import (
	"fmt"

	"termsh/pkg/version"
)

// versionString returns the formatted output of the --version flag.
func versionString() string {
	return fmt.Sprintf("termsh version %s\n  commit: %s\n  built: %s\n  go: %s\n  platform: %s",
		version.Version, version.Commit, version.Date, version.GoVersion, version.Platform())
}
