package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/registry"
)

var flagListCollection string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List demos and library games",
	Long:  `Shows the built-in demos and the games of a library collection.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListCollection, "collection", "", "Collection to list (default from config)")
}

func runList(cmd *cobra.Command, args []string) {
	demos := registry.List()

	fmt.Println("Demos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range demos {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range demos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
	fmt.Println()

	collection := flagListCollection
	if collection == "" {
		collection = cfg.Library.Collection
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	lib, err := openLibrary(store)
	if err != nil {
		logger.Warn("could not open library", "error", err)
		return
	}
	names, err := lib.Games(collection)
	if err != nil {
		logger.Warn("could not list games", "collection", collection, "error", err)
		return
	}

	fmt.Printf("Games in %s:\n", collection)
	fmt.Println()
	if len(names) == 0 {
		fmt.Println("  No games yet.")
	}
	for _, name := range names {
		fmt.Printf("  %s/%s\n", collection, name)
	}

	fmt.Println()
	fmt.Println("Run 'gamemaker play <id>' to play a game.")
}
