package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/logging"
	"github.com/vovakirdan/nuwa-jump/internal/registry"
	"github.com/vovakirdan/nuwa-jump/internal/storage"
)

// modeAliases lets users type the mode instead of the registry ID.
var modeAliases = map[string]string{
	"":        "skyjump",
	"story":   "skyjump",
	"endless": "skyjump_endless",
}

// resolveGameID turns a mode argument into a registered game ID.
func resolveGameID(args []string) (string, error) {
	name := ""
	if len(args) > 0 {
		name = strings.ToLower(args[0])
	}
	if id, ok := modeAliases[name]; ok {
		name = id
	}
	if !registry.Exists(name) {
		return "", fmt.Errorf("unknown mode %q (run 'nuwa list')", name)
	}
	return name, nil
}

// terminalConfig sizes the runtime config to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fileLogger logs to --log-file, falling back to a silent logger when
// the file cannot be opened. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	logger, closer, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { closer.Close() }
}

// stderrLogger logs to stderr for commands that keep the terminal.
func stderrLogger() *log.Logger {
	return logging.New(os.Stderr, flagLogLevel)
}

// setupGames points every mode at the tuning file and logger.
func setupGames(logger *log.Logger) {
	skyjump.SetConfigPath(flagConfig)
	skyjump.SetLogger(logger)
}

// openStore opens the run history. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history unavailable", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// startWatcher watches the tuning file when --watch is set. It returns
// nil when watching is off or there is no file to watch.
func startWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := config.Locate(flagConfig)
	if path == "" {
		logger.Warn("--watch ignored: no tuning file found, using built-in defaults")
		return nil
	}
	w, err := config.Watch(path)
	if err != nil {
		logger.Warn("cannot watch tuning file", "path", path, "err", err)
		return nil
	}
	logger.Info("watching tuning file", "path", w.Path())
	return w
}
