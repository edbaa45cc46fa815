package main

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/meta"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/platform/tui"
	"github.com/vovakirdan/game-maker/internal/rng"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game maker SSH server",
	Long: `Start an SSH server that lets users connect and play or edit games.

Each SSH connection gets its own session, starting at the configured
editor game or at the game named with --game. Every session shares the
server's library and database.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.gamemaker/host_key

Examples:
  gamemaker serve                           # Listen on :23235
  gamemaker serve --ssh :2222               # Listen on port 2222
  gamemaker serve --game clicker            # Every session plays a demo
  gamemaker serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "", "Demo or library game every session starts at (default: the editor)")
}

func runServe(cmd *cobra.Command, _ []string) {
	store := openStore()
	lib, err := openLibrary(store)
	exitIf(err, store)

	sc := tui.DefaultSSHServerConfig()
	sc.Address = firstSet(flagSSHAddr, cfg.SSH.Address, sc.Address)
	sc.HostKeyPath = firstSet(flagHostKey, cfg.SSH.HostKeyPath)
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = flagIdleTimeout
	} else if cfg.SSH.IdleTimeout > 0 {
		sc.IdleTimeout = cfg.SSH.IdleTimeout
	}
	sc.Options = baseOptions(seed(), store)

	start := firstSet(flagServeGame, nav.Link{Collection: cfg.Library.Collection, Game: cfg.Library.Game}.String())

	factory := func(user string, session uuid.UUID) (*meta.Metagame, error) {
		s := seed()
		outer, link, err := loadGame(start, lib, rng.New(s))
		if err != nil {
			return nil, err
		}
		sub, err := blankGame(rng.New(s))
		if err != nil {
			return nil, err
		}
		edited := nav.Link{Collection: cfg.Library.Collection, Game: newGameName}
		m := newMetagame(outer, sub, link, edited, rng.New(s), lib, store)
		m.SetLogger(logger.With("user", user, "session", session.String()))
		return m, nil
	}

	server, err := tui.NewSSHServer(sc, factory, logger.WithPrefix("gamemaker-ssh"))
	exitIf(err, store)

	fmt.Printf("Starting game maker SSH server on %s\n", sc.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(sc.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeStore(store)
		fail("server: %v", err)
	}
	closeStore(store)
}

// firstSet returns the first non-empty value.
func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
