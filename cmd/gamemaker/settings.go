package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/config"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/library"
	"github.com/vovakirdan/game-maker/internal/meta"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/platform/tui"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
	"github.com/vovakirdan/game-maker/internal/storage"
)

// newGameName is the name a blank edited game is saved under.
const newGameName = "New Game"

var (
	cfg    config.EngineConfig
	logger *log.Logger
)

// loadSettings reads .env, the engine config, environment overrides and
// finally the command line flags, in that order.
func loadSettings(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	loaded, err := config.LoadEngine(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&loaded, os.Getenv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		loaded.Engine.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		loaded.Engine.Seed = flagSeed
	}
	if flags.Changed("db") {
		loaded.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = flagLogLevel
	}

	loaded.Library.Root = config.ExpandHome(loaded.Library.Root)
	loaded.Storage.DBPath = config.ExpandHome(loaded.Storage.DBPath)
	loaded.SSH.HostKeyPath = config.ExpandHome(loaded.SSH.HostKeyPath)
	cfg = loaded

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamemaker",
	})
	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logger.SetLevel(level)
	}
	return nil
}

// seed returns the configured seed, or one taken from the clock.
func seed() uint64 {
	if cfg.Engine.Seed != 0 {
		return cfg.Engine.Seed
	}
	return uint64(time.Now().UnixNano())
}

// openStore opens the database, or returns nil with a warning when it
// cannot be opened. Playing works without it.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// openLibrary returns the configured library. The SQLite backend needs
// store and reads its asset files from the same root as the files backend.
func openLibrary(store *storage.Store) (library.Library, error) {
	files, err := library.NewFiles(cfg.Library.Root)
	if err != nil {
		return nil, err
	}
	switch cfg.Library.Backend {
	case config.BackendSQLite:
		if store == nil {
			return nil, errors.New("the sqlite library needs a database")
		}
		return library.NewSQLite(store, files), nil
	case config.BackendFiles, "":
		return files, nil
	default:
		return nil, fmt.Errorf("unknown library backend %q", cfg.Library.Backend)
	}
}

// parseLink reads "collection/game", or a bare game name in the configured
// collection.
func parseLink(arg string) nav.Link {
	if c, g, ok := strings.Cut(arg, "/"); ok {
		return nav.Link{Collection: c, Game: g}
	}
	return nav.Link{Collection: cfg.Library.Collection, Game: arg}
}

// blankGame is an empty small game, edited when no game was named.
func blankGame(r *rng.SeededRng) (*game.Game, error) {
	return game.FromCartridge(cartridge.New(rules.Small, "", ""), r)
}

// newMetagame wires a metagame to the library, the journal and the logger.
func newMetagame(outer, sub *game.Game, start, edited nav.Link, r *rng.SeededRng, lib library.Library, store *storage.Store) *meta.Metagame {
	e := env.New(r)
	e.PlaybackRate = cfg.Engine.PlaybackRate
	m := meta.New(outer, sub, start, edited, e, lib)
	m.SetLogger(logger)
	if store != nil && cfg.Storage.Journal {
		m.Journal = meta.NewJournal(store)
	}
	return m
}

// baseOptions builds host options at the configured scale.
func baseOptions(s uint64, store *storage.Store) tui.Options {
	return tui.Options{
		TickRate:     cfg.Engine.TickRate,
		ScaleX:       cfg.Display.ScaleX,
		ScaleY:       cfg.Display.ScaleY,
		Seed:         s,
		MaxFrameTime: cfg.MaxFrameDuration(),
		Store:        store,
		Log:          logger,
	}
}

// hostOptions builds options for this terminal. The scale grows when the
// terminal is too small to show size at the configured scale.
func hostOptions(size core.Size, s uint64, store *storage.Store) tui.Options {
	opts := baseOptions(s, store)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.ScaleX, opts.ScaleY = tui.FitScale(size, w, h, opts.ScaleX, opts.ScaleY)
	}
	return opts
}
