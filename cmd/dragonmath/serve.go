package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-math/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dragon math SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own silent game. All players record to the
same leaderboard, selected with --store.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dragonmath/host_key

Examples:
  dragonmath serve                           # Listen on :23234 with auto-generated key
  dragonmath serve --ssh :2222               # Listen on port 2222
  dragonmath serve --host-key ./my_host_key  # Use specific host key
  dragonmath serve --store sqlite            # Share a SQLite leaderboard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout.Minutes()), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	text := loadLocale()
	logger := newLogger(os.Stderr)

	b := openBoard()
	defer b.Close()

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(sshCfg, cfg, b, text, logger)
	if err != nil {
		b.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting dragon math SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		b.Close()
		fail("server: %v", err)
	}
}
