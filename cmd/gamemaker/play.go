package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/library"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/platform/tui"
	"github.com/vovakirdan/game-maker/internal/registry"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/storage"
)

// demoCollection is the collection name demos are linked and scored under.
const demoCollection = "Demos"

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a demo or a library game",
	Long: `Start playing a built-in demo or a game from the library.

A game is named by its demo id, by "collection/game", or by its name in
the configured collection.

Controls:
  Mouse       - Click, drag and hover, as the game's rules ask
  Enter/Esc   - Ok and Cancel shortcuts
  Ctrl+S      - Screenshot
  F1          - Help
  Ctrl+C      - Quit

Examples:
  gamemaker play clicker
  gamemaker play Examples/Frog
  gamemaker play Frog --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	store := openStore()
	lib, err := openLibrary(store)
	exitIf(err, store)

	s := seed()
	outer, link, err := loadGame(args[0], lib, rng.New(s))
	exitIf(err, store)

	sub, err := blankGame(rng.New(s))
	exitIf(err, store)
	edited := nav.Link{Collection: link.Collection, Game: newGameName}

	runSession(outer, sub, link, edited, s, lib, store)
}

// loadGame builds a demo, or loads a game from the library.
func loadGame(arg string, lib library.Library, r *rng.SeededRng) (*game.Game, nav.Link, error) {
	link, demo := playLink(arg)
	if demo {
		c, err := registry.Create(arg)
		if err != nil {
			return nil, link, err
		}
		g, err := game.FromCartridge(c, r)
		return g, link, err
	}

	c, err := lib.Load(link)
	if err != nil {
		return nil, link, err
	}
	g, err := game.FromCartridge(c, r)
	return g, link, err
}

// playLink returns the link a game is played and scored under, and whether
// it is a demo.
func playLink(arg string) (nav.Link, bool) {
	if registry.Exists(arg) {
		return nav.Link{Collection: demoCollection, Game: arg}, true
	}
	return parseLink(arg), false
}

// runSession hosts a metagame in this terminal until the user quits, then
// closes the store.
func runSession(outer, sub *game.Game, start, edited nav.Link, s uint64, lib library.Library, store *storage.Store) {
	m := newMetagame(outer, sub, start, edited, rng.New(s), lib, store)
	if m.Journal != nil {
		logger.Debug("editing session", "session", m.Journal.SessionID)
	}

	runErr := tui.Run(m, hostOptions(tui.OuterSize(outer), s, store))

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// exitIf reports err and exits when it is not nil.
func exitIf(err error, store *storage.Store) {
	if err == nil {
		return
	}
	closeStore(store)
	fail("%v", err)
}
