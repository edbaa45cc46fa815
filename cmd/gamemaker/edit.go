package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/rng"
)

var editCmd = &cobra.Command{
	Use:   "edit [game]",
	Short: "Open the editor",
	Long: `Open the editor game from the library and edit a game with it.

The editor is the game named by library.collection and library.game in
the engine config. With no game named, a blank small game is edited and
saved as "New Game".

Controls:
  Mouse          - Select, move and draw, as the editor's rules ask
  Middle button  - Toggle move mode
  Ctrl+Z/Ctrl+Y  - Undo and redo
  F2             - Show the undo history
  Ctrl+C         - Quit

Examples:
  gamemaker edit
  gamemaker edit Frog
  gamemaker edit Examples/Frog`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) {
	store := openStore()
	lib, err := openLibrary(store)
	exitIf(err, store)

	s := seed()
	start := nav.Link{Collection: cfg.Library.Collection, Game: cfg.Library.Game}
	c, err := lib.Load(start)
	if err != nil {
		exitIf(fmt.Errorf("cannot load the editor %s: %w", start, err), store)
	}
	outer, err := game.FromCartridge(c, rng.New(s))
	exitIf(err, store)

	edited := nav.Link{Collection: cfg.Library.Collection, Game: newGameName}
	var sub *game.Game
	if len(args) == 1 {
		edited = parseLink(args[0])
		sc, loadErr := lib.Load(edited)
		exitIf(loadErr, store)
		sub, err = game.FromCartridge(sc, rng.New(s))
	} else {
		sub, err = blankGame(rng.New(s))
	}
	exitIf(err, store)

	runSession(outer, sub, start, edited, s, lib, store)
}
