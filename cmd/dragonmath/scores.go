package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-math/internal/leaderboard"
	"github.com/vovakirdan/dragon-math/internal/platform/tui"
)

var (
	flagLimit       int
	flagJSON        bool
	flagInteractive bool
	flagImport      string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the ranked leaderboard from the selected store.

Ties keep the order in which they were recorded.

Examples:
  dragonmath scores
  dragonmath scores --limit 10
  dragonmath scores --json > scores.json
  dragonmath scores --store sqlite --interactive
  dragonmath scores --import scores.json
  dragonmath scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 5, "Number of entries to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the ranking as JSON")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the leaderboard in a table")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Append records from a JSON export before showing")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every record before importing or showing")
}

func runScores(_ *cobra.Command, _ []string) {
	text := loadLocale()
	logger := newLogger(os.Stderr)

	b := openBoard()
	defer b.Close()

	if flagClear {
		if err := b.Clear(); err != nil {
			b.Close()
			fail("clearing leaderboard: %v", err)
		}
		logger.Info("cleared leaderboard", "store", flagStore)
	}

	if flagImport != "" {
		n, err := importScores(b, flagImport)
		if err != nil {
			b.Close()
			fail("importing %s: %v", flagImport, err)
		}
		logger.Info("imported scores", "path", flagImport, "count", n)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var stats tui.StatsSource
		if b.db != nil {
			stats = b
		}
		if err := tui.RunScoreboard(b, stats, text, width, height); err != nil {
			b.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	ranking := b.Top(flagLimit)
	if ranking.Err != nil && !errors.Is(ranking.Err, fs.ErrNotExist) {
		logger.Warn("cannot read leaderboard", "error", ranking.Err)
	}

	if flagJSON {
		data, err := leaderboard.ExportJSON(ranking)
		if err != nil {
			b.Close()
			fail("encoding scores: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Println(text.Title)
	fmt.Println()

	if ranking.NoScores {
		fmt.Println(text.NoScores)
		return
	}
	for i, r := range ranking.Entries {
		fmt.Println("  " + text.Place(i+1, r.Name, r.Score))
	}

	if b.db != nil {
		if st, err := b.Stats(); err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", st.Count, st.HighScore, st.AvgScore)
		}
	}
}

// importScores appends the records of a JSON export to the board.
// Records with invalid names are skipped by the decoder.
func importScores(b board, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	records, err := leaderboard.ImportJSON(data)
	if err != nil {
		return 0, err
	}

	var errs []error
	n := 0
	for _, r := range records {
		if err := b.Commit(r.Name, r.Score); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, err))
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}
