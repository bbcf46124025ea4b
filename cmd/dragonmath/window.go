package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-math/internal/audio"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window at the playfield's native size.

Controls are the same as in the terminal; closing the window quits.

Examples:
  dragonmath window
  dragonmath window --lang hu --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	text := loadLocale()
	logger := newLogger(os.Stderr)

	b := openBoard()
	defer b.Close()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, running silent", "error", err)
	}
	defer sound.Cleanup()

	game := dragonmath.New(cfg, sound, b)
	pf := cfg.Playfield
	logger.Info("game started", "lang", text.Code, "store", flagStore, "muted", sound.Muted())

	if err := window.Run(game, text, logger, runtimeConfig(cfg, pf.Width, pf.Height)); err != nil {
		logger.Error("window stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("game finished", "score", game.State().Score)
}
