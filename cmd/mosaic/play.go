package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mosaic/internal/config"
	"github.com/vovakirdan/tui-mosaic/internal/core"
	"github.com/vovakirdan/tui-mosaic/internal/platform/tui"
	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

var (
	flagConfig string
	flagReveal string
	flagReplay bool
)

var playCmd = &cobra.Command{
	Use:   "play [day]",
	Short: "Play a day's puzzle",
	Long: `Start the puzzle for the given day (YYYY-MM-DD). Without an
argument the latest puzzle up to today is chosen.

Controls:
  Mouse click - Select a tile, click a neighbor to swap
  R           - Restart with a fresh board
  Esc/B       - Leave the puzzle
  Q/Ctrl+C    - Quit

Reveal options:
  quick  - The picture shows after only a few matches
  normal - Default pacing
  full   - Every cell must be matched

Examples:
  mosaic play
  mosaic play 2026-02-14
  mosaic play --reveal quick
  mosaic play --replay 2026-01-01
  mosaic play --config ./my-engine.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	playCmd.Flags().StringVar(&flagReveal, "reveal", "", "Reveal preset: quick, normal, full")
	playCmd.Flags().BoolVar(&flagReplay, "replay", false, "Play again even if the day is already solved")
}

func runPlay(cmd *cobra.Command, args []string) {
	cal, err := puzzles.Load(flagCalendar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading calendar: %v\n", err)
		os.Exit(1)
	}

	var pz *puzzles.Puzzle
	if len(args) == 1 {
		p, ok := cal.ByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no puzzle for day %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'mosaic list' to see the calendar.")
			os.Exit(1)
		}
		pz = p
	} else {
		p, ok := cal.Latest(time.Now().Format("2006-01-02"))
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: the calendar is empty")
			os.Exit(1)
		}
		pz = p
	}

	engCfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading engine config: %v\n", err)
		os.Exit(1)
	}
	if flagReveal != "" {
		config.ApplyRevealPreset(&engCfg, config.RevealPreset(flagReveal))
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open progress storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}

	// A solved day opens in its finished state unless --replay is given
	preSolved := false
	if store != nil && !flagReplay {
		preSolved, _ = store.IsSolved(pz.ID)
	}

	runErr := tui.Run(pz, store, engCfg, cfg, preSolved)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
