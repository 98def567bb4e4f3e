package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/netwalk/internal/config"
	"github.com/vovakirdan/netwalk/internal/core"
	"github.com/vovakirdan/netwalk/internal/games/netwalk"
	"github.com/vovakirdan/netwalk/internal/logging"
	"github.com/vovakirdan/netwalk/internal/platform/tui"
	"github.com/vovakirdan/netwalk/internal/storage"
)

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the config handed to games.
func runtimeConfig(cfg config.NetwalkConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = terminalSize()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.BoardW = cfg.Board.Width
	rc.BoardH = cfg.Board.Height
	return rc
}

// openStore opens the scores database. Play continues without storage when
// it cannot be opened.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// tuiLogger keeps log lines off the alternate screen: without a log file
// the interactive commands log nowhere.
func tuiLogger(cfg config.NetwalkConfig) *log.Logger {
	if cfg.Log.File == "" {
		return logging.Discard()
	}
	return logger
}

// sizeOptions lists the configured presets for the free-play picker.
func sizeOptions(cfg config.NetwalkConfig) []tui.SizeOption {
	names := cfg.PresetNames()
	opts := make([]tui.SizeOption, 0, len(names)+1)
	for _, name := range names {
		size := cfg.Presets[name]
		opts = append(opts, tui.SizeOption{Name: name, Width: size.Width, Height: size.Height})
	}
	opts = append(opts, tui.SizeOption{Name: "config", Width: cfg.Board.Width, Height: cfg.Board.Height})
	return opts
}

// campaignLevels converts the configured campaign. An empty list keeps the
// built-in one.
func campaignLevels(cfg config.NetwalkConfig) []netwalk.Level {
	if len(cfg.Campaign) == 0 {
		return nil
	}
	levels := make([]netwalk.Level, len(cfg.Campaign))
	for i, c := range cfg.Campaign {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		levels[i] = netwalk.Level{ID: i + 1, Name: name, Width: c.Width, Height: c.Height}
	}
	return levels
}

// playerName identifies the local player in score records.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
