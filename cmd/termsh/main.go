package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"termsh/pkg/complete"
	"termsh/pkg/config"
	"termsh/pkg/logging"
	"termsh/pkg/session"
	"termsh/pkg/ui"
	"termsh/pkg/version"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	configPath := flag.String("config", config.GetConfigPath(), "path to the configuration file")
	flag.Parse()

	if *showVersion {
		fmt.Println(versionString())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	// A logging failure is not fatal: Init falls back to a discard
	// handler and the session works without a log file.
	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "termsh must be run in a terminal")
		os.Exit(1)
	}

	commands, flags := complete.MergeVocabulary(
		complete.DefaultCommands(),
		complete.DefaultFlags(),
		cfg.Completions.Commands,
		cfg.Completions.Flags,
	)

	engine := session.New(session.Options{
		ScrollbackLines: cfg.ScrollbackLines,
		HistoryLimit:    cfg.HistoryLimit,
		Commands:        commands,
		Flags:           flags,
		CommandTimeout:  time.Duration(cfg.CommandTimeoutSeconds) * time.Second,
	})

	slog.Info("termsh started", "version", version.Summary(), "config_path", *configPath)

	p := tea.NewProgram(ui.NewModel(engine))
	if _, err := p.Run(); err != nil {
		slog.Error("program terminated with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	slog.Info("termsh exited")
}
