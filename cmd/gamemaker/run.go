package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/engine"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/rng"
)

var (
	flagFrames int
	flagEvery  int
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Tick a cartridge without a terminal",
	Long: `Load a cartridge file and play it headless for a number of frames,
then print every member's state. No mouse or keys are pressed.

The same file, frame count and seed always print the same state.

Examples:
  gamemaker run ./frog.json
  gamemaker run ./frog.json --frames 600 --seed 7
  gamemaker run ./frog.json --frames 600 --every 60`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 300, "Number of frames to play")
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Also print the state every N frames (0 = only at the end)")
}

func runRun(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fail("%v", err)
	}
	c, err := cartridge.Parse(data)
	if err != nil {
		fail("%v", err)
	}

	s := seed()
	g, err := game.FromCartridge(c, rng.New(s))
	if err != nil {
		fail("%v", err)
	}

	frames, quit := playHeadless(g, env.New(rng.New(s)), flagFrames, func(g *game.Game) {
		if flagEvery > 0 && g.FrameNumber%flagEvery == 0 {
			printState(os.Stdout, g)
		}
	})
	if quit {
		fmt.Printf("Quit after %d frames\n", frames)
	}
	printState(os.Stdout, g)
}

// playHeadless ticks g up to frames times with no input. after runs after
// every frame. It stops early when a rule asks to quit.
func playHeadless(g *game.Game, e *env.Environment, frames int, after func(*game.Game)) (int, bool) {
	for i := range frames {
		res := engine.Tick(g, engine.Frame{Env: e, Log: logger})
		after(g)
		for _, a := range res.Actions {
			if a.Kind == engine.ActionQuit {
				return i + 1, true
			}
		}
	}
	return frames, false
}

// printState writes the frame, win status and a table of members.
func printState(w io.Writer, g *game.Game) {
	fmt.Fprintf(w, "Frame %d  %s\n", g.FrameNumber, g.WinStatus)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Name\tX\tY\tSwitch\tSprite\tText")
	for _, m := range g.Members {
		fmt.Fprintf(tw, "  %s\t%.1f\t%.1f\t%s\t%s\t%s\n",
			m.Name, m.Position.X(), m.Position.Y(), m.Switch, m.Sprite, m.Text.Contents)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
