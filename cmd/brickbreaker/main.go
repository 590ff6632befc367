// brickbreaker is a brick breaker game for the terminal.
//
// Usage:
//
//	brickbreaker             - Play (same as "play")
//	brickbreaker play        - Play
//	brickbreaker scores      - Show or browse high scores
//	brickbreaker levels      - List the levels
//	brickbreaker config      - Print the effective configuration
//	brickbreaker serve       - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.brickbreaker/scores.db)
//	--name-file <path>    - Set player name file (default: ~/.brickbreaker/playername.txt)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--levels <dir>        - Play the YAML level pack in dir
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/levels"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagNameFile   string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagAssets     string
	flagLogLevel   string
	flagLogFile    string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal brick breaker: steer the paddle, keep the
ball in play and clear all three levels.

Available commands:
  play     - Play the game (default)
  scores   - View high scores
  levels   - List the levels
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  brickbreaker
  brickbreaker --difficulty hard
  brickbreaker scores --limit 5
  brickbreaker serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.brickbreaker/scores.db", "Path to scores database")
	pf.StringVar(&flagNameFile, "name-file", "~/.brickbreaker/playername.txt", "Path to the saved player name")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound and music")
	pf.StringVar(&flagAssets, "assets", "", "Directory with wav/brick_hit.wav, wav/win_sound.wav, wav/background_music.wav")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of YAML level files replacing the built-in levels")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from the log flags. The returned
// function releases the log file, if any.
func newLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if flagLogFile != "" {
		path, err := storage.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- user supplied log path
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeLog, nil
}

// loadConfig resolves the game config and applies --difficulty.
func loadConfig() (config.Config, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadLevels returns the level catalog: the pack from --levels, or the
// built-in levels.
func loadLevels() ([]game.Level, error) {
	if flagLevelsDir == "" {
		return game.BuiltinLevels(), nil
	}
	dir, err := storage.ExpandHome(flagLevelsDir)
	if err != nil {
		return nil, err
	}
	return levels.LoadDir(dir)
}

// runtimeConfig returns the simulation settings for the current terminal.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}
