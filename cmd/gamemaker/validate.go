package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/rng"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check cartridge files",
	Long: `Parse each cartridge file, check its members and rule slots, and
decode its assets. Exits with status 1 if any file fails.

Examples:
  gamemaker validate ./frog.json
  gamemaker validate ~/.gamemaker/collections/Examples/*.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		members, err := validateFile(path)
		if err != nil {
			failed++
			fmt.Printf("  FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("  ok    %s (%d members)\n", path, members)
	}

	if failed > 0 {
		fail("%d of %d files failed", failed, len(args))
	}
}

// validateFile checks one cartridge and returns its member count.
func validateFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	c, err := cartridge.Parse(data)
	if err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if _, err := game.FromCartridge(c, rng.New(0)); err != nil {
		return 0, err
	}
	return len(c.Members), nil
}
