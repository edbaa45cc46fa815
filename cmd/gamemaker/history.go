package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/game-maker/internal/platform/tui"
	"github.com/vovakirdan/game-maker/internal/storage"
)

var flagClearPlays bool

var historyCmd = &cobra.Command{
	Use:   "history [session]",
	Short: "Show editing sessions",
	Long: `With no session, list the most recent editing sessions in the journal.
With a session id, browse every undo, redo and recorded step of it.

Examples:
  gamemaker history
  gamemaker history 0b8f6a4e-6d1e-4d5c-9c2b-3f7c1e2a9d10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

var playsCmd = &cobra.Command{
	Use:   "plays <game>",
	Short: "Show play results for a game",
	Long: `Display the last 10 play results for a game and its totals.

Examples:
  gamemaker plays clicker
  gamemaker plays Examples/Frog
  gamemaker plays Frog --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runPlays,
}

func init() {
	playsCmd.Flags().BoolVar(&flagClearPlays, "clear", false, "Delete the game's play results")
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

func runHistory(cmd *cobra.Command, args []string) {
	store := mustOpenStore()

	if len(args) == 0 {
		listSessions(store)
		closeStore(store)
		return
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		exitIf(fmt.Errorf("invalid session id %q: %w", args[0], err), store)
	}
	entries, err := store.Journal(id)
	exitIf(err, store)
	closeStore(store)

	if len(entries) == 0 {
		fmt.Println("No steps recorded for this session.")
		return
	}

	height := 20
	if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		height = max(h-6, 5)
	}
	if err := tui.RunJournal("Session "+id.String(), entries, height); err != nil {
		fail("%v", err)
	}
}

func listSessions(store *storage.Store) {
	sessions, err := store.Sessions(20)
	exitIf(err, store)

	fmt.Println("Editing sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-36s  %-20s  %-5s  %s\n", "Session", "Game", "Steps", "Started")
	fmt.Printf("  %-36s  %-20s  %-5s  %s\n", "-------", "----", "-----", "-------")

	for _, s := range sessions {
		dateStr := s.StartedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-36s  %-20s  %-5d  %s\n", s.SessionID, s.Game, s.Steps, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'gamemaker history <session>' to browse a session.")
}

func runPlays(cmd *cobra.Command, args []string) {
	link, _ := playLink(args[0])

	store := mustOpenStore()
	defer store.Close()

	if flagClearPlays {
		if err := store.ClearPlays(link.Collection, link.Game); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared play results for %s\n", link)
		return
	}

	plays, err := store.RecentPlays(link.Collection, link.Game, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving plays: %v\n", err)
		return
	}

	fmt.Printf("Plays - %s\n", link)
	fmt.Println()

	if len(plays) == 0 {
		fmt.Println("No plays recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'gamemaker play %s' to play it.\n", args[0])
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-8s  %-20s  %s\n", "Status", "Frames", "Seed", "Date")
	fmt.Printf("  %-10s  %-8s  %-20s  %s\n", "------", "------", "----", "----")

	for _, p := range plays {
		dateStr := p.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10s  %-8d  %-20d  %s\n", p.Status, p.Frames, p.Seed, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(link.Collection, link.Game); err == nil {
		fmt.Printf("Played %d times: %d won, %d lost, %.0f frames on average\n",
			stats.Plays, stats.Wins, stats.Losses, stats.AvgFrames)
	}
}
