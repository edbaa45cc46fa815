package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/library"
)

var importCmd = &cobra.Command{
	Use:   "import [collection]",
	Short: "Copy cartridge files into the database",
	Long: `Copy every cartridge of a collection from the library directory into
the SQLite database, so the sqlite backend can serve them. Games already in
the database are overwritten.

Examples:
  gamemaker import
  gamemaker import Examples --db ./gamemaker.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <game> [file]",
	Short: "Write a library game as JSON",
	Long: `Write the cartridge of a library game to a file, or to standard output
when no file is given.

Examples:
  gamemaker export Frog > frog.json
  gamemaker export Examples/Frog ./frog.json`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runExport,
}

func runImport(cmd *cobra.Command, args []string) {
	collection := cfg.Library.Collection
	if len(args) == 1 {
		collection = args[0]
	}

	store := openStore()
	if store == nil {
		fail("import needs the database at %s", cfg.Storage.DBPath)
	}
	files, err := library.NewFiles(cfg.Library.Root)
	exitIf(err, store)

	n, err := library.NewSQLite(store, files).Import(files, collection)
	exitIf(err, store)
	closeStore(store)

	fmt.Printf("Imported %d games from %s into %s\n", n, collection, cfg.Storage.DBPath)
}

func runExport(cmd *cobra.Command, args []string) {
	store := openStore()
	lib, err := openLibrary(store)
	exitIf(err, store)

	link := parseLink(args[0])
	c, err := lib.Load(link)
	if errors.Is(err, library.ErrNotFound) {
		exitIf(fmt.Errorf("no game %s in the library", link), store)
	}
	exitIf(err, store)
	closeStore(store)

	data, err := c.Encode()
	if err != nil {
		fail("%v", err)
	}

	if len(args) == 1 {
		os.Stdout.Write(data)
		fmt.Println()
		return
	}
	if err := os.WriteFile(args[1], data, 0o644); err != nil {
		fail("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", link, args[1])
}
