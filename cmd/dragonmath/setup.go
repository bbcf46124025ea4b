package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/leaderboard"
	"github.com/vovakirdan/dragon-math/internal/locale"
	"github.com/vovakirdan/dragon-math/internal/storage"
)

// Leaderboard backends accepted by --store.
const (
	storeText   = "text"
	storeSQLite = "sqlite"
)

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game config and applies command line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagMute {
		cfg.Audio.Muted = true
	}
	return cfg
}

// loadLocale resolves --lang.
func loadLocale() locale.Table {
	t, err := locale.Get(flagLang)
	if err != nil {
		fail("%v\nRun 'dragonmath locales' to see available languages.", err)
	}
	return t
}

// runtimeConfig builds the runtime config for a host surface.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     seed,
	}
}

// board is an opened leaderboard backend.
type board struct {
	*leaderboard.Manager
	ledger *storage.Ledger // set for the text backend
	db     *storage.SQLite // set for the sqlite backend
}

// Stats reports aggregate statistics when the backend keeps them.
func (b board) Stats() (storage.Stats, error) {
	if b.db == nil {
		return storage.Stats{}, leaderboard.ErrNoStore
	}
	return b.db.Stats()
}

// Clear deletes every record from the backend.
func (b board) Clear() error {
	switch {
	case b.db != nil:
		return b.db.Clear()
	case b.ledger != nil:
		return b.ledger.Clear()
	}
	return leaderboard.ErrNoStore
}

// Close releases the backend.
func (b board) Close() {
	if b.db != nil {
		//nolint:errcheck // Best-effort close on exit
		b.db.Close()
	}
}

// openBoard opens the backend selected by --store.
func openBoard() board {
	switch flagStore {
	case storeText:
		ledger, err := storage.OpenLedger(flagLedgerPath)
		if err != nil {
			fail("cannot open leaderboard: %v", err)
		}
		return board{Manager: leaderboard.NewManager(ledger), ledger: ledger}
	case storeSQLite:
		db, err := storage.OpenSQLite(flagDBPath)
		if err != nil {
			fail("cannot open leaderboard: %v", err)
		}
		return board{Manager: leaderboard.NewManager(db), db: db}
	default:
		fail("unknown store %q (expected %s or %s)", flagStore, storeText, storeSQLite)
	}
	return board{}
}

// newLogger creates the application logger.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragonmath",
	})
}

// openLogFile opens the --log file for appending. The terminal game logs
// there because stdout belongs to the UI.
func openLogFile() (*os.File, error) {
	path, err := storage.ExpandPath(flagLogPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
