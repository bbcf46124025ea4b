package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-math/internal/audio"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The terminal needs mouse support.

Controls:
  Click      - Select a dragon, press buttons
  0-9, -     - Type the answer
  Backspace  - Delete the last character
  Enter      - Submit the answer / start / save name
  Tab        - Mute or unmute
  Ctrl+S     - Save a text screenshot
  Esc/Ctrl+C - Quit

Examples:
  dragonmath play
  dragonmath play --lang hu --store sqlite
  dragonmath play --seed 42 --fps 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	text := loadLocale()

	logOut := io.Writer(io.Discard)
	if f, err := openLogFile(); err != nil {
		newLogger(os.Stderr).Warn("logging disabled", "error", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	b := openBoard()
	defer b.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, running silent", "error", err)
	}
	defer sound.Cleanup()

	game := dragonmath.New(cfg, sound, b)
	logger.Info("game started", "lang", text.Code, "store", flagStore, "muted", sound.Muted())

	if err := tui.Run(game, text, logger, runtimeConfig(cfg, width, height)); err != nil {
		logger.Error("game stopped", "error", err)
		fail("running game: %v", err)
	}
	logger.Info("game finished", "score", game.State().Score)
}
