package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/director-arcade/internal/config"
	"github.com/vovakirdan/director-arcade/internal/core"
	"github.com/vovakirdan/director-arcade/internal/director"
	"github.com/vovakirdan/director-arcade/internal/registry"
	"github.com/vovakirdan/director-arcade/internal/storage"
)

// Flags shared by the commands that start a game.
var (
	flagConfig     string
	flagDifficulty string
	flagSet        []string
)

// newLogger builds the logger for interactive commands. The terminal UI
// owns stdout, so logs only go to --log-file; without one they are
// discarded. The returned closer is never nil.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseOverrides turns repeated --set key=value flags into a map, checking
// the keys against the director's config enumeration.
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	known := make(map[director.ConfigKey]bool)
	for _, k := range director.ConfigKeys() {
		known[k] = true
	}

	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("--set %q: want key=value", p)
		}
		if !known[director.ConfigKey(k)] {
			return nil, fmt.Errorf("--set %q: %w", p, director.ErrUnknownKey)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}

func checkDifficulty(name string) error {
	if _, ok := config.ParsePreset(name); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return nil
}

func checkGame(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", id)
	}
	return nil
}

// terminalRuntime sizes the runtime config from the attached terminal.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
