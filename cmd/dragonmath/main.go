// dragonmath is an arithmetic adventure: a knight crosses three stages
// by answering questions about the dragons in the way.
//
// Usage:
//
//	dragonmath [play]       - Play in the terminal (default)
//	dragonmath window       - Play in a desktop window
//	dragonmath scores       - Show the leaderboard
//	dragonmath serve        - Host games over SSH
//	dragonmath locales      - List available languages
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: from config, 33)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load game config from a YAML file
//	--lang <code>           - Interface language (default: en)
//	--store <text|sqlite>   - Leaderboard backend (default: text)
//	--ledger <path>         - Text leaderboard path
//	--db <path>             - SQLite leaderboard path
//	--log <path>            - Log file for the terminal game
//	--mute                  - Start with sound muted
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLang       string
	flagStore      string
	flagLedgerPath string
	flagDBPath     string
	flagLogPath    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragonmath",
	Short: "Dragon Math - answer questions, defeat dragons",
	Long: `Dragon Math is an arithmetic game. Select a dragon with the mouse,
type the answer to the question and press Enter. Correct answers move
the knight forward and blow up the dragon; wrong ones push the knight
back and summon another dragon. Cross three stages to win.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  locales  - List interface languages

Examples:
  dragonmath
  dragonmath --lang hu
  dragonmath window --mute
  dragonmath scores --limit 10
  dragonmath serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLang, "lang", "en", "Interface language code")
	pf.StringVar(&flagStore, "store", storeText, "Leaderboard backend: text or sqlite")
	pf.StringVar(&flagLedgerPath, "ledger", "~/.dragonmath/scoreboard.txt", "Path to the text leaderboard")
	pf.StringVar(&flagDBPath, "db", "~/.dragonmath/scores.db", "Path to the SQLite leaderboard")
	pf.StringVar(&flagLogPath, "log", "~/.dragonmath/dragonmath.log", "Log file for the terminal game")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(localesCmd)
}
