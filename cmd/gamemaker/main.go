// gamemaker plays and edits small rule-driven games in the terminal.
//
// Usage:
//
//	gamemaker list                    - List demos and library games
//	gamemaker play <game>             - Play a demo or a library game
//	gamemaker edit [game]             - Open the editor, optionally on a game
//	gamemaker run <file>              - Tick a cartridge headless and print its members
//	gamemaker validate <file>...      - Check cartridge files
//	gamemaker import [collection]     - Copy cartridge files into the database
//	gamemaker export <game> [file]    - Write a library game as JSON
//	gamemaker history [session]       - Show editing sessions
//	gamemaker plays <game>            - Show play results for a game
//	gamemaker serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Engine config YAML
//	--fps <rate>      - Set tick rate (default from config: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.gamemaker/gamemaker.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/game-maker/internal/demos"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamemaker",
	Short: "Game Maker - make and play tiny games in your terminal",
	Long: `Game Maker plays small games built from members and their rules,
and hosts the editor that makes them.

Available commands:
  list      - Show demos and library games
  play      - Play a demo or a library game
  edit      - Open the editor
  run       - Tick a cartridge without a terminal
  validate  - Check cartridge files
  import    - Copy cartridge files into the database
  export    - Write a library game as JSON
  history   - Show editing sessions
  plays     - Show play results
  serve     - Start SSH server for remote play

Examples:
  gamemaker list
  gamemaker play bounce
  gamemaker play Examples/Frog
  gamemaker edit Frog
  gamemaker run ./frog.json --frames 300 --seed 7
  gamemaker serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadSettings(cmd)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(playsCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error the way every command reports them and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
