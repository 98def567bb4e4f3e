// netwalk is a terminal pipe-rotation puzzle: turn the tiles until every
// terminal is connected to the server.
//
// Usage:
//
//	netwalk play             - Play the campaign or a free board
//	netwalk menu             - Start menu to pick a mode interactively
//	netwalk generate         - Print a board without playing it
//	netwalk list             - List game modes and size presets
//	netwalk scores           - Show high scores and fastest solves
//	netwalk serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.netwalk/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
//	--log-file <path>    - Write logs to a rotated file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/netwalk/internal/config"
	"github.com/vovakirdan/netwalk/internal/games/netwalk"
	"github.com/vovakirdan/netwalk/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var (
	appConfig config.NetwalkConfig
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		//nolint:errcheck // Best-effort flush on exit
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "netwalk",
	Short: "NetWalk - connect every terminal to the server",
	Long: `NetWalk is a pipe-rotation puzzle for the terminal. Every board is a
network of pipes grown from a server; the pipes have been turned at
random and your job is to turn them back until every terminal is
powered.

Available commands:
  play      - Play the campaign or a free board
  menu      - Interactive mode picker
  generate  - Print a board as text, JSON or YAML
  list      - Show game modes and size presets
  scores    - View high scores and fastest solves
  serve     - Start SSH server for remote play

Examples:
  netwalk play
  netwalk play --free --difficulty hard
  netwalk generate --width 5 --height 5 --format json
  netwalk serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.netwalk/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and builds the logger for every command.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadNetwalk(flagConfig)
	if err != nil {
		return err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	l, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logCloser = closer
	netwalk.SetLevels(campaignLevels(cfg))

	logger.Debug("configuration loaded", "config", flagConfig, "levels", len(cfg.Campaign))
	return nil
}
