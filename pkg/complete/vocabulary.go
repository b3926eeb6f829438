package complete

// DefaultCommands is the seed command vocabulary: the builtins followed
// by common external commands, in presentation order.
func DefaultCommands() []string {
	return []string{
		"cd",
		"clear",
		"exit",
		"history",
		"pwd",
		"cat",
		"cp",
		"echo",
		"git",
		"grep",
		"ls",
		"mkdir",
		"mv",
		"rm",
		"touch",
	}
}

// DefaultFlags is the seed per-command flag vocabulary.
func DefaultFlags() map[string][]string {
	return map[string][]string{
		"ls":   {"-l", "-a", "-la", "-lh"},
		"grep": {"-i", "-n", "-r", "-v", "--color"},
		"rm":   {"-r", "-f", "-rf"},
		"cp":   {"-r", "-p"},
		"git":  {"--version", "--help"},
	}
}

// MergeVocabulary extends a command list and flag map with user-provided
// additions, keeping the base order and skipping duplicates.
func MergeVocabulary(commands []string, flags map[string][]string, extraCommands []string, extraFlags map[string][]string) ([]string, map[string][]string) {
	seen := make(map[string]bool, len(commands))
	merged := make([]string, 0, len(commands)+len(extraCommands))
	for _, c := range commands {
		if !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}
	for _, c := range extraCommands {
		if c != "" && !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}

	mergedFlags := make(map[string][]string, len(flags)+len(extraFlags))
	for cmd, fs := range flags {
		mergedFlags[cmd] = append([]string(nil), fs...)
	}
	for cmd, fs := range extraFlags {
		existing := mergedFlags[cmd]
		have := make(map[string]bool, len(existing))
		for _, f := range existing {
			have[f] = true
		}
		for _, f := range fs {
			if f != "" && !have[f] {
				have[f] = true
				existing = append(existing, f)
			}
		}
		mergedFlags[cmd] = existing
	}

	return merged, mergedFlags
}
