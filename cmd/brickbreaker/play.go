package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/audio"
	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

// musicVolume matches the quiet background level of the built-in track.
const musicVolume = 0.6

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Brick Breaker",
	Long: `Start the game at the main menu.

Controls:
  Type       - Enter your name (main menu)
  Enter      - Start / retry
  Left/Right - Move the paddle
  P          - Pause
  Esc        - Quit (menu, win and game over screens)
  Q          - Quit (win and game over screens)
  Ctrl+C     - Quit at any time

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - 3 lives (default)
  hard   - 2 lives, narrow paddle, fast ball

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --seed 42 --mute
  brickbreaker play --assets ./assets --log-file /tmp/bb.log
  brickbreaker play --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger("brickbreaker")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	runtime, err := runtimeConfig()
	if err != nil {
		return err
	}
	catalog, err := loadLevels()
	if err != nil {
		return err
	}

	// The score table is required; there is no play without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	names, err := storage.NewNameFile(flagNameFile)
	if err != nil {
		return err
	}
	records := storage.NewRecords(store, names, logger)

	sound := newSound(logger)
	defer sound.close()

	g, err := game.New(cfg, records, game.WithLevels(catalog), game.WithSound(sound.sink))
	if err != nil {
		return err
	}
	g.Reset(runtime)

	logger.Info("starting game",
		"difficulty", flagDifficulty,
		"seed", runtime.Seed,
		"levels", len(catalog),
		"fps", runtime.TickRate,
		"high_score", g.Session().HighScore,
	)

	model := tui.NewModel(g, runtime, cfg.Controls.HoldTicks, logger)
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// soundSetup is the sound sink for a local game and its cleanup.
type soundSetup struct {
	sink  game.Sound
	close func()
}

// newSound opens the speaker unless muted. A speaker that cannot be opened
// leaves the game silent.
func newSound(logger *log.Logger) soundSetup {
	if flagMute {
		return soundSetup{sink: audio.Nop{}, close: func() {}}
	}

	mgr := audio.NewManager(audio.Options{
		AssetsDir:   flagAssets,
		MusicVolume: musicVolume,
		Logger:      logger,
	})
	if err := mgr.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return soundSetup{sink: audio.Nop{}, close: func() {}}
	}
	mgr.StartMusic()
	return soundSetup{sink: mgr, close: mgr.Close}
}
